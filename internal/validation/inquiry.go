package validation

import (
	"fmt"
	"strings"
)

const (
	maxNameLength    = 120
	maxPhoneLength   = 40
	maxContentLength = 4000
)

// ValidateRequiredName checks a required display name such as a person's full
// name or an academy name. label appears in the error message.
func ValidateRequiredName(label, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fmt.Errorf("%s is required", label)
	}
	if len(trimmed) > maxNameLength {
		return fmt.Errorf("%s must not exceed %d characters", label, maxNameLength)
	}
	return nil
}

// ValidatePhone checks a required phone number. Formats vary by country, so
// only presence and length are enforced.
func ValidatePhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return fmt.Errorf("phone is required")
	}
	if len(trimmed) > maxPhoneLength {
		return fmt.Errorf("phone must not exceed %d characters", maxPhoneLength)
	}
	return nil
}

// ValidateInquiryContent checks the optional free-form message on an inquiry.
func ValidateInquiryContent(content string) error {
	if len(content) > maxContentLength {
		return fmt.Errorf("content must not exceed %d characters", maxContentLength)
	}
	return nil
}
