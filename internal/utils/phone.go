package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Mobile prefixes assigned to the major Nigerian carriers. Numbers outside
// these ranges are rejected at registration.
var nigerianPrefixes = []string{
	"701", "702", "703", "704", "705", "706", "708", "709",
	"802", "803", "804", "805", "806", "807", "808", "809",
	"810", "811", "812", "813", "814", "815", "816", "817", "818",
	"901", "902", "903", "904", "905", "906", "907", "908", "909",
	"911", "912", "913", "915", "916",
}

var phonePattern = regexp.MustCompile(
	fmt.Sprintf(`^(%s)\d{7}$`, strings.Join(nigerianPrefixes, "|")),
)

// ValidatePhoneNumber validates a Nigerian mobile number and returns it
// normalized to the +234 international format.
func ValidatePhoneNumber(phone string) (bool, string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Strip country code or trunk prefix
	if strings.HasPrefix(stripped, "234") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !phonePattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid Nigerian mobile number")
	}

	return true, "+234" + stripped, nil
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// SanitizeString removes control characters and collapses whitespace,
// used on free-text fields such as booking notes.
func SanitizeString(s string) string {
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
