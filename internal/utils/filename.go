package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	controlChars         = regexp.MustCompile(`[\r\n\t]`)
	multipleSpaces       = regexp.MustCompile(`\s+`)
)

// MaxFilenameLength leaves room for an extension within the usual 255 byte limit.
const MaxFilenameLength = 200

// SanitizeFilename turns a book title into a safe markdown file name.
// Markdown link syntax characters are dropped or softened so the name can
// be used inside [[wiki links]] and [text](path) links.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = controlChars.ReplaceAllString(filename, " ")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	filename = strings.ReplaceAll(filename, "#", "")
	filename = strings.ReplaceAll(filename, "[", "(")
	filename = strings.ReplaceAll(filename, "]", ")")

	if len(filename) > MaxFilenameLength {
		filename = truncateUTF8(filename, MaxFilenameLength)
	}

	if filename == "" {
		filename = "Untitled"
	}

	return filename
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return strings.TrimSpace(s[:cut])
}
