package fsutil

import (
	"strings"
	"unicode/utf8"
)

const (
	maxFilenameRunes = 255
	// FallbackFilename replaces names that sanitize to nothing.
	FallbackFilename = "unnamed_file"
)

var unsafeFilenameChars = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", `"`, "_", "/", "_",
	`\`, "_", "|", "_", "?", "_", "*", "_",
)

// SafeFilename replaces path and shell metacharacters with underscores, drops
// C0/C1 control characters, trims surrounding dots and spaces and caps the
// result at 255 characters.
func SafeFilename(name string) string {
	if name == "" {
		return FallbackFilename
	}

	name = unsafeFilenameChars.Replace(name)
	name = strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(name, ". ")

	if utf8.RuneCountInString(name) > maxFilenameRunes {
		name = strings.TrimRight(string([]rune(name)[:maxFilenameRunes]), ". ")
	}
	if name == "" {
		return FallbackFilename
	}
	return name
}

func isControl(r rune) bool {
	return r <= 0x1f || (r >= 0x7f && r <= 0x9f)
}
