package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentform/docextract/constants"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestExtractStructuredStripsFencesAndValidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(chatResponse("```json\n{\"full_name\":\"Jane Doe\",\"skills\":[\"go\"]}\n```"))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	out, err := c.ExtractStructured(context.Background(), constants.DocumentTypeCV, "resume text")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if doc["full_name"] != "Jane Doe" {
		t.Fatalf("unexpected document: %v", doc)
	}
}

func TestExtractStructuredRejectsNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("I could not parse this document, sorry."))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	if _, err := c.ExtractStructured(context.Background(), constants.DocumentTypeCV, "resume text"); err == nil {
		t.Fatalf("prose response must be an error")
	}
}

func TestExtractStructuredRejectsSchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"skills":"not an array"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	if _, err := c.ExtractStructured(context.Background(), constants.DocumentTypeCV, "resume text"); err == nil {
		t.Fatalf("schema violation must be an error")
	}
}

func TestExtractStructuredBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	if _, err := c.ExtractStructured(context.Background(), constants.DocumentTypeCV, "resume text"); err == nil {
		t.Fatalf("backend error must surface as an error for the pipeline to swallow")
	}
}
