package utils

import "strings"

const AnonymousAuthor = "Anon"

// NormalizeAuthor trims the author and falls back to AnonymousAuthor when
// nothing is left.
func NormalizeAuthor(author string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	return AnonymousAuthor
}
