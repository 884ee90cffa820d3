package validator

// Stepper tracks the wizard's only piece of navigation state: the
// current step. Validation always runs against the live form snapshot,
// never a cached pass/fail, so earlier steps re-block forward jumps
// when shared state has been edited out from under them.
type Stepper struct {
	validator *Validator
	total     int
	current   int
}

func NewStepper(v *Validator) *Stepper {
	return &Stepper{
		validator: v,
		total:     TotalSteps,
	}
}

func (s *Stepper) Current() int {
	return s.current
}

func (s *Stepper) IsFirstStep() bool {
	return s.current == 0
}

func (s *Stepper) IsLastStep() bool {
	return s.current == s.total-1
}

// ValidateCurrentStep validates the active step against the snapshot.
func (s *Stepper) ValidateCurrentStep(data *ProfileFormData) []FieldError {
	return s.validator.ValidateStep(s.current, data)
}

// NextStep advances when the active step validates. Returns false and
// stays put otherwise.
func (s *Stepper) NextStep(data *ProfileFormData) bool {
	if errs := s.validator.ValidateStep(s.current, data); len(errs) > 0 {
		return false
	}
	if s.current < s.total-1 {
		s.current++
	}
	return true
}

// PrevStep moves backwards without validation.
func (s *Stepper) PrevStep() {
	if s.current > 0 {
		s.current--
	}
}

// CanNavigateToStep reports whether target is reachable: backwards is
// always allowed, forwards requires every earlier step to validate
// against the current snapshot.
func (s *Stepper) CanNavigateToStep(target int, data *ProfileFormData) bool {
	if target <= s.current {
		return true
	}
	for step := 0; step < target; step++ {
		if errs := s.validator.ValidateStep(step, data); len(errs) > 0 {
			return false
		}
	}
	return true
}

// GoTo jumps to target when allowed.
func (s *Stepper) GoTo(target int, data *ProfileFormData) bool {
	if target < 0 || target >= s.total {
		return false
	}
	if !s.CanNavigateToStep(target, data) {
		return false
	}
	s.current = target
	return true
}
