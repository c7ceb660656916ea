package validation

import (
	"regexp"
	"strings"
)

var (
	angleBrackets   = regexp.MustCompile(`[<>]`)
	javascriptURI   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerish = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeText strips markup-significant characters from free text that may be
// echoed back into HTML or filenames. Defensive, not semantic: apply before
// rendering, never instead of validation.
func SanitizeText(s string) string {
	s = angleBrackets.ReplaceAllString(s, "")
	s = javascriptURI.ReplaceAllString(s, "")
	s = eventHandlerish.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
