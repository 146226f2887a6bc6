package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"slidegen/internal/domain"
)

// ParseSlideJSON parses the model's text output into SlideContent. Models
// sometimes wrap JSON in markdown code fences even when asked not to, so
// fences are stripped before decoding. Both fields are required: a response
// missing title or bulletPoints is malformed even if it is valid JSON.
func ParseSlideJSON(text string) (*domain.SlideContent, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw struct {
		Title        *string   `json:"title"`
		BulletPoints *[]string `json:"bulletPoints"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse slide content JSON: %w", err)
	}

	if raw.Title == nil {
		return nil, fmt.Errorf("slide content missing required field %q", "title")
	}
	if raw.BulletPoints == nil {
		return nil, fmt.Errorf("slide content missing required field %q", "bulletPoints")
	}

	return &domain.SlideContent{
		Title:        *raw.Title,
		BulletPoints: *raw.BulletPoints,
	}, nil
}
