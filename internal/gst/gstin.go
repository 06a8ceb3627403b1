package gst

import (
	"fmt"
	"strings"
)

// GSTIN is a normalized 15-character GST registration identifier.
//
// Layout: 2-digit state code, 10-character PAN (5 letters, 4 digits,
// 1 letter), entity code, a literal 'Z' and a trailing check character.
type GSTIN string

// ParseGSTIN normalizes (strips spaces, upper-cases) and validates a raw
// GSTIN. The returned GSTIN is always the normalized form.
func ParseGSTIN(raw string) (GSTIN, error) {
	value := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if value == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidGSTIN)
	}
	if len(value) != 15 {
		return "", fmt.Errorf("%w: must be 15 characters, got %d", ErrInvalidGSTIN, len(value))
	}

	if _, err := ParseStateCode(value[:2]); err != nil {
		return "", fmt.Errorf("%w: unknown state code %q", ErrInvalidGSTIN, value[:2])
	}

	pan := value[2:12]
	if !isAlpha(pan[:5]) || !isDigits(pan[5:9]) || !isAlpha(pan[9:10]) {
		return "", fmt.Errorf("%w: malformed PAN segment %q", ErrInvalidGSTIN, pan)
	}

	if !isAlnum(value[12:13]) {
		return "", fmt.Errorf("%w: invalid entity code %q", ErrInvalidGSTIN, value[12:13])
	}
	if value[13] != 'Z' {
		return "", fmt.Errorf("%w: character 14 must be 'Z'", ErrInvalidGSTIN)
	}
	if !isAlnum(value[14:15]) {
		return "", fmt.Errorf("%w: invalid check character %q", ErrInvalidGSTIN, value[14:15])
	}

	return GSTIN(value), nil
}

// StateCode extracts the jurisdiction code without re-validating the rest
// of the identifier.
func (g GSTIN) StateCode() StateCode {
	if len(g) < 2 {
		return ""
	}
	return StateCode(g[:2])
}

// String implements fmt.Stringer.
func (g GSTIN) String() string { return string(g) }

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return len(s) > 0
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && (s[i] < 'A' || s[i] > 'Z') {
			return false
		}
	}
	return len(s) > 0
}
