package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ContentTypeText tags a text content block
const ContentTypeText = "text"

// ContentBlock is one typed unit of a tool result
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is what a handler returns to the caller
type Result struct {
	Content []ContentBlock `json:"content"`
}

// TextResult wraps msg as a single text block
func TextResult(msg string) Result {
	return Result{
		Content: []ContentBlock{
			{Type: ContentTypeText, Text: msg},
		},
	}
}

// JSONResult serializes v as indented JSON inside a single text block.
func JSONResult(v any) (Result, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return Result{}, fmt.Errorf("encode result: %w", err)
	}

	return TextResult(strings.TrimSuffix(buf.String(), "\n")), nil
}
