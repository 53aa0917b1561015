package registry

// Shared field conventions used across the record parsers.

// otherFallback implements the registry's "Other" convention: a controlled
// value of "Other"/"other" is replaced by the paired free-text field when
// present, or the literal "Other" when not.
func otherFallback(v Values, field, otherField string) *string {
	val := v.String(field)
	if val == nil {
		return nil
	}
	if *val == "Other" || *val == "other" {
		if other := v.String(otherField); other != nil && *other != "" {
			return other
		}
		literal := "Other"
		return &literal
	}
	return val
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string { return &s }

// nullableKey turns an optional string into a condition value that matches
// SQL NULL when absent.
func nullableKey(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
