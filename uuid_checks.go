package validate

import (
	"strings"

	"github.com/google/uuid"
)

// NilUUID reports the zero UUID.
func NilUUID(id uuid.UUID) bool {
	return id == uuid.Nil
}

// NotUUID reports strings that do not parse as a standard UUID. Length and
// hyphen positions are checked first so obviously malformed input skips the
// parser.
func NotUUID(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}

	if len(s) != 36 {
		return true
	}

	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return true
	}

	_, err := uuid.Parse(s)
	return err != nil
}
