package export

import (
	"strings"

	"slidegen/internal/domain"
)

// Format serializes slide content to the plain-text clipboard layout:
// a "Title:" line, the title, a blank line, a "Bullet Points:" line, then one
// "- " prefixed line per bullet in original order. The output is a pure
// function of the content.
func Format(content *domain.SlideContent) string {
	var b strings.Builder
	b.WriteString("Title:\n")
	b.WriteString(content.Title)
	b.WriteString("\n\nBullet Points:\n")
	for i, point := range content.BulletPoints {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(point)
	}
	return b.String()
}
