package insights

import (
	"regexp"
	"strings"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bareDomainPattern   = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,}`)

	absoluteLinkPrefixes = []string{"http://", "https://", "ftp://", "mailto:", "#", "/"}
)

// FixMarkdownURLs prefixes https:// to link targets that look like a bare
// domain, e.g. [docs](example.com/a) becomes [docs](https://example.com/a).
func FixMarkdownURLs(content string) string {
	if content == "" {
		return content
	}
	return markdownLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := markdownLinkPattern.FindStringSubmatch(match)
		label, target := groups[1], groups[2]

		if hasAnyPrefix(target, absoluteLinkPrefixes) {
			return match
		}
		if !bareDomainPattern.MatchString(target) {
			return match
		}
		return "[" + label + "](https://" + target + ")"
	})
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
