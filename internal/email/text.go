package email

import "strings"

var whitespaceReplacer = strings.NewReplacer("\n", " ", "\t", " ")

// CleanText replaces newlines and tabs with spaces and collapses runs of
// spaces into one. Leading and trailing spaces are kept.
func CleanText(s string) string {
	text := whitespaceReplacer.Replace(s)
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}
	return text
}

// CheckEmptyFields reports whether subject and body are blank.
func CheckEmptyFields(subject, body string) (bool, bool) {
	isSubjectEmpty := strings.TrimSpace(subject) == ""
	isBodyEmpty := strings.TrimSpace(body) == ""
	return isSubjectEmpty, isBodyEmpty
}
