package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Ugandan mobile-money prefixes (MTN and Airtel ranges)
var phonePrefixes = []string{"70", "74", "75", "76", "77", "78"}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// NormalizePhone validates a Ugandan mobile number and returns it in
// international format without the plus sign (e.g. 0700000000 ->
// 256700000000). Accepts local (07...), international (2567...) and
// plus-prefixed forms.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	if !digitsOnly.MatchString(stripped) {
		return "", fmt.Errorf("phone number contains non-digit characters")
	}

	// Remove country code or leading zero
	if strings.HasPrefix(stripped, "256") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if len(stripped) != 9 {
		return "", fmt.Errorf("phone number must have 9 digits after the prefix")
	}

	valid := false
	for _, prefix := range phonePrefixes {
		if strings.HasPrefix(stripped, prefix) {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("not a recognized mobile-money prefix")
	}

	return "256" + stripped, nil
}

// emailPattern is a basic address check, not a full RFC validation
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the address matches a basic pattern
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
