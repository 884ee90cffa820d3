package validator

// fieldLabels maps wire field names to the Dutch labels the UI shows.
var fieldLabels = map[string]string{
	"first_name":              "Voornaam",
	"last_name":               "Achternaam",
	"date_of_birth":           "Geboortedatum",
	"phone":                   "Telefoonnummer",
	"sex":                     "Geslacht",
	"nationality":             "Nationaliteit",
	"marital_status":          "Burgerlijke staat",
	"profession":              "Beroep",
	"employer":                "Werkgever",
	"employment_status":       "Dienstverband",
	"monthly_income":          "Maandinkomen",
	"preferred_city":          "Voorkeursstad",
	"preferred_property_type": "Woningtype",
	"max_budget":              "Maximaal budget",
	"bio":                     "Bio",
	"motivation":              "Motivatie",
}

// FieldLabel resolves the localized label for a field, falling back to
// the raw field name for anything unknown.
func FieldLabel(fieldName string) string {
	if label, ok := fieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
