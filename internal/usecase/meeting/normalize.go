package meeting

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SplitEmails parses a comma separated address list into lower-cased,
// de-duplicated addresses in first-seen order
func SplitEmails(raw string) []string {
	return MergeEmails(strings.Split(raw, ","))
}

// MergeEmails normalizes and de-duplicates addresses keeping first-seen order
func MergeEmails(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, e := range list {
			email := strings.ToLower(strings.TrimSpace(e))
			if email == "" {
				continue
			}
			if _, dup := seen[email]; dup {
				continue
			}
			seen[email] = struct{}{}
			out = append(out, email)
		}
	}
	return out
}

// InvalidEmails returns every address that does not look like local@domain.tld
func InvalidEmails(emails []string) []string {
	var invalid []string
	for _, e := range emails {
		if !emailPattern.MatchString(e) {
			invalid = append(invalid, e)
		}
	}
	return invalid
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
