package metrics

import "fmt"

// MissingFieldError reports that a required numeric or enum field was absent
// from the profile. This is the programming/data error class: callers are
// expected to validate profile completeness before invoking the pipeline.
// Domain validation outcomes (unrealistic goals, missing goal fields) are
// never errors — they come back as GoalValidationResult values.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// missingField is a shorthand constructor used by the calculators.
func missingField(name string) error {
	return &MissingFieldError{Field: name}
}
