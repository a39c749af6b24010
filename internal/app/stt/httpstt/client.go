// Package httpstt talks to an asynchronous speech-to-text service over HTTP:
// one multipart media upload yields a job handle, and job status is read back
// until the transcript is ready.
package httpstt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lecturescribe/internal/app/stt"
)

// Config holds the connection settings for the speech service. The bearer
// token is the static credential supplied at process configuration time.
type Config struct {
	BaseURL     string        `yaml:"base_url"`
	BearerToken string        `yaml:"bearer_token"`
	Timeout     time.Duration `yaml:"timeout"`
	Language    string        `yaml:"language"`
}

// Client implements stt.Provider against the HTTP job API.
type Client struct {
	config Config
	client *http.Client
}

func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// apiError is the service's structured non-2xx body.
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("speech service: status=%d: %s", e.Status, e.Message)
}

type submitResponse struct {
	JobID string `json:"jobId"`
}

type statusResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
	Text   string `json:"text,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Submit uploads the audio file as multipart form data and returns the job
// handle assigned by the service.
func (c *Client) Submit(ctx context.Context, audioPath string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open staged audio: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("media", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy audio into form: %w", err)
	}
	if c.config.Language != "" {
		writer.WriteField("language", c.config.Language)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	var resp submitResponse
	if err := c.do(ctx, http.MethodPost, "/v1/media", writer.FormDataContentType(), body, &resp); err != nil {
		return "", err
	}
	if resp.JobID == "" {
		return "", fmt.Errorf("speech service accepted upload but returned no job id")
	}
	return resp.JobID, nil
}

// GetStatus queries the state of a submitted job.
func (c *Client) GetStatus(ctx context.Context, jobID string) (stt.JobStatus, error) {
	var resp statusResponse
	if err := c.do(ctx, http.MethodGet, "/v1/jobs/"+jobID, "", nil, &resp); err != nil {
		return stt.JobStatus{}, err
	}

	switch resp.Status {
	case "completed", "finished":
		return stt.JobStatus{State: stt.StateCompleted, Text: resp.Text}, nil
	case "failed":
		return stt.JobStatus{State: stt.StateFailed, Reason: resp.Error}, nil
	case "pending", "accepted", "running":
		return stt.JobStatus{State: stt.StatePending}, nil
	default:
		return stt.JobStatus{}, fmt.Errorf("speech service returned unknown status %q for job %s", resp.Status, jobID)
	}
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, v interface{}) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.BearerToken)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("speech service request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read speech service response: %w", err)
	}

	if res.StatusCode >= 400 {
		svcErr := &apiError{Status: res.StatusCode}
		if err := json.Unmarshal(resBody, svcErr); err != nil || svcErr.Message == "" {
			svcErr.Message = strings.TrimSpace(string(resBody))
		}
		svcErr.Status = res.StatusCode
		return svcErr
	}

	if v != nil {
		if err := json.Unmarshal(resBody, v); err != nil {
			return fmt.Errorf("decode speech service response: %w", err)
		}
	}
	return nil
}
