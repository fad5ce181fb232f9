package helpers

import "regexp"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeFilename replaces everything outside [a-zA-Z0-9] with underscores
// so a document title can be used in a Content-Disposition header.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
