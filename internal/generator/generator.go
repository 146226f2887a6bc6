package generator

import (
	"context"
	"io"

	"slidegen/internal/domain"
)

// SlidePrompt is the shared instruction used by all generator adapters. The
// wording fixes the role, the shape of the output, and the tone.
const SlidePrompt = `You are a presentation content generator. Analyze this image
and produce content for a single presentation slide: a concise title and 3-5
bullet points summarizing the image's main theme. Use a professional,
informative tone. Respond with a JSON object containing exactly two fields:
"title" (string) and "bulletPoints" (array of strings).`

// ContentGenerator produces slide content from an image.
type ContentGenerator interface {
	Generate(ctx context.Context, r io.Reader, mimeType string) (*domain.SlideContent, error)
}
