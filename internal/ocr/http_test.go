package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talentform/docextract/constants"
)

func TestHTTPClientDetect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/text-detection/detect" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["store_key"] != "uploads/scan.png" {
			t.Fatalf("unexpected store_key %q", body["store_key"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"lines": []map[string]any{
				{"text": "Hello", "confidence": 99.1},
				{"text": "World", "confidence": 98.3},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	lines, err := c.Detect(context.Background(), "uploads/scan.png")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if len(lines) != 2 || lines[0].Text != "Hello" || lines[1].Confidence != 98.3 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestHTTPClientSubmitAndPoll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/text-detection/jobs":
			_ = json.NewEncoder(w).Encode(map[string]string{"job_id": "job-42"})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/text-detection/jobs/job-42":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "SUCCEEDED",
				"lines":  []map[string]any{{"text": "Done", "confidence": 95}},
			})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL}, nil)
	jobID, err := c.Submit(context.Background(), "uploads/resume.pdf")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if jobID != "job-42" {
		t.Fatalf("unexpected job id %q", jobID)
	}

	state, err := c.Poll(context.Background(), jobID)
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if state.Status != constants.OCRJobSucceeded || len(state.Lines) != 1 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestHTTPClientSubmitEmptyJobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL}, nil)
	if _, err := c.Submit(context.Background(), "uploads/resume.pdf"); err == nil {
		t.Fatalf("expected an error for an empty job id")
	}
}

func TestHTTPClientNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(Config{BaseURL: srv.URL}, nil)
	if _, err := c.Poll(context.Background(), "job-1"); err == nil {
		t.Fatalf("expected an error on a non-2xx response")
	}
}
