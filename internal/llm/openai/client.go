package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/internal/llm"
)

// ExtractStructured implements llm.StructuredExtractor over chat/completions.
// The response is fence-stripped, parsed, and validated against the
// document-type schema before it is returned.
func (c *Client) ExtractStructured(ctx context.Context, docType constants.DocumentType, text string) (json.RawMessage, error) {
	rid := uuid.New().String()
	start := time.Now()

	if len(text) > c.cfg.MaxTextLen {
		text = text[:c.cfg.MaxTextLen]
	}

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"doc_type", string(docType),
		"text_len", len(text),
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "user", "content": llm.BuildInstruction(docType) + "\n" + text},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices", "req_id", rid)
		return nil, fmt.Errorf("no choices in openai response")
	}

	content := llm.StripCodeFences(cc.Choices[0].Message.Content)

	var probe any
	if err := json.Unmarshal([]byte(content), &probe); err != nil {
		c.logger.Error("llm.extract.parse_failed", "req_id", rid, "error", err)
		return nil, fmt.Errorf("parse structured json: %w", err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildSchema(docType), []byte(content)); err != nil {
		c.logger.Error("llm.extract.schema_validation_failed", "req_id", rid, "error", err)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"doc_type", string(docType),
		"json_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return json.RawMessage(content), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(b io.ReadCloser) {
		if cerr := b.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
