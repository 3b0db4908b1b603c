// Package resumemd turns resume page images into a markdown document via
// OpenAI Vision. The output follows the section layout the rest of the
// system expects, in particular a "## Skills" section.
package resumemd

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// Converter renders resume images to markdown using OpenAI Vision
type Converter struct {
	client *openai.Client
}

// NewConverter creates a new resume-to-markdown converter
func NewConverter(apiKey string) *Converter {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Converter{
		client: &client,
	}
}

const systemPrompt = `You are a professional resume transcriber. Convert the resume image(s) into clean markdown and return ONLY the markdown.`

const userPrompt = `Transcribe this resume into markdown with the following layout:

# [Full Name]

[contact line: email, phone, location]

## Summary
...

## Skills
[comma-separated list of skills]

## Experience
...

## Education
...

## Certifications
... (only if present)

IMPORTANT:
- Transcribe ALL visible text accurately
- Omit sections that are not present in the resume, but always include
  "## Skills" when any skills are listed anywhere
- Use "## " for every section heading
- Return ONLY the markdown, no code fences, no commentary`

// ConvertPages transcribes one or more resume page images (JPEG) into a
// single markdown document
func (c *Converter) ConvertPages(ctx context.Context, pages [][]byte) (string, error) {
	if len(pages) == 0 {
		return "", errors.New("no pages provided")
	}

	contentParts := []openai.ChatCompletionContentPartUnionParam{
		{
			OfText: &openai.ChatCompletionContentPartTextParam{
				Type: constant.Text("text"),
				Text: userPrompt,
			},
		},
	}

	for i, pageData := range pages {
		dataURL := fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(pageData))
		contentParts = append(contentParts, openai.ChatCompletionContentPartUnionParam{
			OfImageURL: &openai.ChatCompletionContentPartImageParam{
				Type: constant.ImageURL("image_url"),
				ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
					URL:    dataURL,
					Detail: "high", // better OCR on dense resumes
				},
			},
		})

		if i < len(pages)-1 {
			contentParts = append(contentParts, openai.ChatCompletionContentPartUnionParam{
				OfText: &openai.ChatCompletionContentPartTextParam{
					Type: constant.Text("text"),
					Text: fmt.Sprintf("--- Page %d ends, Page %d begins ---", i+1, i+2),
				},
			})
		}
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: contentParts,
				},
			},
		},
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       "gpt-4o",
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		return "", fmt.Errorf("openai vision api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return stripFence(completion.Choices[0].Message.Content), nil
}

// stripFence removes a wrapping markdown code fence if the model added one
// despite instructions
func stripFence(markdown string) string {
	trimmed := strings.TrimSpace(markdown)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```markdown")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
