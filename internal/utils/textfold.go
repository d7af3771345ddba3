package utils

import "regexp"

// ReplaceAllFold replaces every case-insensitive occurrence of old in s with
// replacement. Used by rename propagation to rewrite historical notes; it is
// a plain substring match, so an old name that appears inside unrelated text
// gets rewritten too.
func ReplaceAllFold(s, old, replacement string) string {
	if old == "" {
		return s
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(old))
	return re.ReplaceAllLiteralString(s, replacement)
}
