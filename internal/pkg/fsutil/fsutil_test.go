package fsutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{-1, "0 B"},
		{0, "0.0 B"},
		{10, "10.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{52428800, "50.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.in), "size %d", tt.in)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "unnamed_file"},
		{"plain", "report", "report"},
		{"metacharacters", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"unicode kept", "résumé<report>", "résumé_report_"},
		{"control chars dropped", "na\x00me\x1f\u0085", "name"},
		{"trim dots and spaces", " ..hidden file.. ", "hidden file"},
		{"only dots", "...", "unnamed_file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeFilename(tt.in))
		})
	}
}

func TestSafeFilenameInvariants(t *testing.T) {
	inputs := []string{
		strings.Repeat("é", 400),
		strings.Repeat("a?", 200) + ".",
		" <>:\"/\\|?* ",
		". leading",
	}
	for _, in := range inputs {
		out := SafeFilename(in)
		assert.LessOrEqual(t, utf8.RuneCountInString(out), 255)
		assert.NotContains(t, out, "<")
		assert.False(t, strings.ContainsAny(out, `<>:"/\|?*`), out)
		assert.False(t, strings.HasPrefix(out, ".") || strings.HasPrefix(out, " "), out)
		assert.False(t, strings.HasSuffix(out, ".") || strings.HasSuffix(out, " "), out)
	}
}

func TestSafeFilenameTruncationDoesNotLeaveTrailingDot(t *testing.T) {
	in := strings.Repeat("a", 254) + ".b"
	out := SafeFilename(in)
	assert.Equal(t, strings.Repeat("a", 254), out)
}
