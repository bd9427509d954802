package validation

import (
	"strings"
	"testing"
)

func TestValidateRequiredName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "plain name", value: "Seoul Coding Academy", ok: true},
		{name: "unicode name", value: "서울코딩학원", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "whitespace only", value: "   ", ok: false},
		{name: "maximum length", value: strings.Repeat("a", 120), ok: true},
		{name: "too long", value: strings.Repeat("a", 121), ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequiredName("academy_name", tc.value)
			if tc.ok && err != nil {
				t.Fatalf("expected valid name, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid name, got nil error")
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{name: "dashed", phone: "010-1234-5678", ok: true},
		{name: "international", phone: "+82 10 1234 5678", ok: true},
		{name: "empty", phone: "", ok: false},
		{name: "whitespace only", phone: "  ", ok: false},
		{name: "too long", phone: strings.Repeat("1", 41), ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePhone(tc.phone)
			if tc.ok && err != nil {
				t.Fatalf("expected valid phone, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid phone, got nil error")
			}
		})
	}
}

func TestValidateInquiryContent(t *testing.T) {
	t.Parallel()

	if err := ValidateInquiryContent(""); err != nil {
		t.Fatalf("empty content must be allowed: %v", err)
	}
	if err := ValidateInquiryContent(strings.Repeat("x", 4000)); err != nil {
		t.Fatalf("content at limit must be allowed: %v", err)
	}
	if err := ValidateInquiryContent(strings.Repeat("x", 4001)); err == nil {
		t.Fatalf("content over limit must be rejected")
	}
}
