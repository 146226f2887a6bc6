package domain

import "time"

// SlideContent is the parsed result of a content request: a slide title and
// an ordered list of bullet points. Created only on a successful request and
// replaced wholesale; never partially mutated.
type SlideContent struct {
	Title        string   `json:"title"`
	BulletPoints []string `json:"bulletPoints"`
}

// Generation is one recorded content request, successful or not.
type Generation struct {
	ID           int64
	Title        string
	BulletPoints []string
	Model        string
	MimeType     string
	StorageKey   string
	Status       string
	Error        string
	CreatedAt    time.Time
}
