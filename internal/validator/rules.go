package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var birthdatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("birthdate", validBirthdate)
}

// validBirthdate accepts dd/mm/yyyy strings that parse to a real
// calendar date, are not in the future, and have year >= 1900.
func validBirthdate(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" || !birthdatePattern.MatchString(s) {
		return false
	}

	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])

	if year < 1900 {
		return false
	}

	// time.Date normalizes overflow (31/02 becomes 02/03 or 03/03), so a
	// round-trip mismatch means the calendar date did not exist.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return false
	}

	return !date.After(time.Now())
}
