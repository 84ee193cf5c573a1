// Package extract converts free-form candidate text into typed field values.
// Every function is total: malformed or empty input reports absence instead of
// failing, so callers can always fall back to re-prompting.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Phone candidates, tried in order: international, domestic, bare digits.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10,}`),
	}
	phoneNoise = regexp.MustCompile(`[^\d+\-().\s]`)
	nonDigits  = regexp.MustCompile(`\D`)

	numberPattern     = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	dangerousChars    = regexp.MustCompile(`[<>"']`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	zeroYearsKeywords = []string{"fresh", "graduate", "entry", "new", "beginner"}
)

// Email scans text for an email address. The match is validated structurally
// (single @, local part <= 64 chars, dotted domain <= 253 chars) and returned
// lower-cased.
func Email(text string) (string, bool) {
	match := emailPattern.FindString(text)
	if match == "" {
		return "", false
	}
	if !validEmail(match) {
		return "", false
	}
	return strings.ToLower(match), true
}

func validEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(email, "@")
	if local == "" || len(local) > 64 {
		return false
	}
	if domain == "" || len(domain) > 253 {
		return false
	}
	return strings.Contains(domain, ".")
}

// Phone scans text for a phone number and normalizes it. Ten-digit numbers
// become (XXX) XXX-XXXX, eleven digits with a leading 1 become
// +1 (XXX) XXX-XXXX, anything else keeps the matched form. Numbers whose
// normalized digit count falls outside [10, 15] are rejected.
func Phone(text string) (string, bool) {
	cleaned := phoneNoise.ReplaceAllString(text, "")
	for _, pattern := range phonePatterns {
		match := pattern.FindString(cleaned)
		if match == "" {
			continue
		}
		normalized := normalizePhone(match)
		if validPhone(normalized) {
			return normalized, true
		}
	}
	return "", false
}

func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && digits[0] == '1':
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	default:
		return phone
	}
}

func validPhone(phone string) bool {
	if phone == "" {
		return false
	}
	n := len(nonDigits.ReplaceAllString(phone, ""))
	return n >= 10 && n <= 15
}

// Experience extracts years of professional experience. The first numeral in
// the text wins when it lies in [0, 50]. Without a usable numeral, career
// keywords map to 0 ("fresh", "graduate", ...) or 0.5 ("intern").
func Experience(text string) (float64, bool) {
	if match := numberPattern.FindString(text); match != "" {
		years, err := strconv.ParseFloat(match, 64)
		if err == nil && years >= 0 && years <= 50 {
			return years, true
		}
	}
	lower := strings.ToLower(text)
	for _, keyword := range zeroYearsKeywords {
		if strings.Contains(lower, keyword) {
			return 0, true
		}
	}
	if strings.Contains(lower, "intern") {
		return 0.5, true
	}
	return 0, false
}

// Sanitize strips markup-sensitive characters, collapses whitespace runs and
// caps the length at 1000 characters. It is idempotent and safe on any input.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	sanitized := dangerousChars.ReplaceAllString(text, "")
	sanitized = strings.TrimSpace(whitespaceRuns.ReplaceAllString(sanitized, " "))
	if runes := []rune(sanitized); len(runes) > 1000 {
		sanitized = strings.TrimSpace(string(runes[:1000]))
	}
	return sanitized
}
