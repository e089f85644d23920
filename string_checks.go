package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

// Blank reports a string that is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LongerThan reports strings longer than max bytes.
func LongerThan(max int) func(string) bool {
	return func(s string) bool { return len(s) > max }
}

// ShorterThan reports strings shorter than min bytes.
func ShorterThan(min int) func(string) bool {
	return func(s string) bool { return len(s) < min }
}

// NotMatching reports strings not matched by re.
func NotMatching(re *regexp.Regexp) func(string) bool {
	return func(s string) bool { return !re.MatchString(s) }
}

// NotEmail reports strings that are not a usable email address. The RFC 5322
// parser runs first, then the stricter domain shape expected in typical web
// use.
func NotEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return true
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return true
	}

	// Domain must contain at least one dot and no empty labels
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return true
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return true
		}
	}

	return false
}
