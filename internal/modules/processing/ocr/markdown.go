package ocr

import "strings"

const (
	pageSeparator = "\n\n"
	dataURIPrefix = "data:image/png;base64,"
)

// ReplaceImages rewrites ![id](id) references to inline PNG data URIs.
// Images without an id or payload are skipped.
func ReplaceImages(markdown string, images []Image) string {
	if markdown == "" {
		return ""
	}
	for _, img := range images {
		if img.ID == "" || img.ImageBase64 == "" {
			continue
		}
		markdown = strings.ReplaceAll(markdown,
			"!["+img.ID+"]("+img.ID+")",
			"!["+img.ID+"]("+dataURIPrefix+img.ImageBase64+")",
		)
	}
	return markdown
}

// CombineMarkdown joins the pages in order with images inlined.
func CombineMarkdown(pages []Page) string {
	blocks := make([]string, 0, len(pages))
	for _, page := range pages {
		blocks = append(blocks, ReplaceImages(page.Markdown, page.Images))
	}
	return strings.Join(blocks, pageSeparator)
}
