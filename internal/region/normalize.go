package region

import "strings"

// Normalize reduces a PSN region token to its bare digits. Accepts the
// forms sellers actually write: "1", "R1", "r2", "Region 3". Returns an
// empty string when the value is blank or carries no digit code.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	trimmed = strings.TrimPrefix(strings.ToUpper(trimmed), "REGION")
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimPrefix(trimmed, "R")

	if trimmed == "" || !isDigits(trimmed) {
		return ""
	}
	return trimmed
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
