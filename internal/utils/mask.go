package utils

import "strings"

// MaskEmail hides the local part of an address except its first character,
// e.g. "john.doe@example.com" becomes "j*******@example.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}

// MaskPhone hides all but the last four digits of a phone number, keeping any
// non-digit formatting characters in place.
func MaskPhone(phone string) string {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return phone
	}
	toMask := digits - 4
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' && toMask > 0 {
			b.WriteRune('*')
			toMask--
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
