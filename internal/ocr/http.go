package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentform/docextract/constants"
)

// Config for the HTTP OCR backend client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // per-request http timeout
}

// HTTPClient implements Client against a Textract-shaped HTTP backend:
// a sync detect endpoint plus submit/status endpoints for async jobs.
type HTTPClient struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewHTTPClient(cfg Config, logger *slog.Logger) *HTTPClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *HTTPClient) Detect(ctx context.Context, storeKey string) ([]Line, error) {
	var out struct {
		Lines []Line `json:"lines"`
	}
	err := c.call(ctx, http.MethodPost, "/v1/text-detection/detect",
		map[string]string{"store_key": storeKey}, &out)
	if err != nil {
		return nil, fmt.Errorf("ocr detect: %w", err)
	}
	return out.Lines, nil
}

func (c *HTTPClient) Submit(ctx context.Context, storeKey string) (string, error) {
	var out struct {
		JobID string `json:"job_id"`
	}
	err := c.call(ctx, http.MethodPost, "/v1/text-detection/jobs",
		map[string]string{"store_key": storeKey}, &out)
	if err != nil {
		return "", fmt.Errorf("ocr submit: %w", err)
	}
	if out.JobID == "" {
		return "", fmt.Errorf("ocr submit: backend returned empty job id")
	}
	return out.JobID, nil
}

func (c *HTTPClient) Poll(ctx context.Context, jobID string) (*JobState, error) {
	var out struct {
		Status        string `json:"status"`
		StatusMessage string `json:"status_message"`
		Lines         []Line `json:"lines"`
	}
	path := "/v1/text-detection/jobs/" + url.PathEscape(jobID)
	if err := c.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("ocr poll: %w", err)
	}
	return &JobState{
		JobID:         jobID,
		Status:        constants.OCRJobStatus(out.Status),
		StatusMessage: out.StatusMessage,
		Lines:         out.Lines,
	}, nil
}

// call sends one JSON request and decodes the 2xx response body into out.
func (c *HTTPClient) call(ctx context.Context, method, path string, body any, out any) error {
	reqID := uuid.New().String()
	start := time.Now()

	var reader io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		reader = bytes.NewReader(bs)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ocr.http.send_error", "req_id", reqID, "path", path, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return err
	}
	defer func(b io.ReadCloser) {
		if cerr := b.Close(); cerr != nil {
			c.logger.Warn("ocr.http.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Debug("ocr.http.response",
		"req_id", reqID,
		"path", path,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("non-2xx status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
