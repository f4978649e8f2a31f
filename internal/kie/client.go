// Package kie is the transport layer for the Kie.ai generation API: job
// submission, per-family status polls, and the mapping of heterogeneous
// remote status payloads onto the canonical task states.
package kie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"kiegw/internal/domain"
	"kiegw/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("kie: api key is required")

// RemoteError carries a non-success envelope code returned by the API.
type RemoteError struct {
	Code int
	Msg  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("kie: remote error %d: %s", e.Code, e.Msg)
}

// Envelope is the uniform response wrapper every Kie.ai endpoint returns.
type Envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Options configures the Kie.ai client.
type Options struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the Kie.ai generation API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.kie.ai/api/v1"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

type submitData struct {
	TaskID string `json:"taskId"`
}

// Submit sends a resolved job to its submission path and returns the remote
// task id acknowledged by the API.
func (c *Client) Submit(ctx context.Context, job *Job) (string, error) {
	if job == nil {
		return "", errors.New("kie: job is required")
	}
	body, err := json.Marshal(job.Body)
	if err != nil {
		return "", fmt.Errorf("kie: encode request: %w", err)
	}
	env, err := c.do(ctx, http.MethodPost, job.Path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	var data submitData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("kie: decode task id: %w", err)
	}
	if data.TaskID == "" {
		return "", errors.New("kie: response missing task id")
	}
	c.logger.Debug().
		Str("api_type", string(job.APIType)).
		Str("mode", job.Mode).
		Str("path", job.Path).
		Str("task_id", data.TaskID).
		Msg("kie: task submitted")
	return data.TaskID, nil
}

// TaskStatus polls the record-info endpoint for the task's family and parses
// the payload into a canonical observation. An unrecognized api_type probes
// every family endpoint in a fixed order and takes the first hit.
func (c *Client) TaskStatus(ctx context.Context, apiType domain.APIType, taskID string) (*StatusResult, error) {
	if taskID == "" {
		return nil, errors.New("kie: task id is required")
	}
	q := url.Values{"taskId": {taskID}}

	path, known := statusPath(apiType)
	if known {
		env, err := c.do(ctx, http.MethodGet, path+"?"+q.Encode(), nil)
		if err != nil {
			return nil, err
		}
		return parseStatus(apiType, env.Data)
	}

	var lastErr error
	for _, candidate := range fallbackStatusPaths {
		env, err := c.do(ctx, http.MethodGet, candidate+"?"+q.Encode(), nil)
		if err != nil {
			lastErr = err
			continue
		}
		return parseStatus(apiType, env.Data)
	}
	if lastErr == nil {
		lastErr = errors.New("kie: no status endpoint recognized the task")
	}
	return nil, lastErr
}

// Veo1080pData is the payload of a successful HD retrieval.
type Veo1080pData struct {
	ResultURL string `json:"resultUrl"`
}

// Veo1080p fetches the 1080P rendition URL for a completed Veo3 task. The
// index selects one of multiple rendered videos; nil means the default.
func (c *Client) Veo1080p(ctx context.Context, taskID string, index *int) (*Veo1080pData, error) {
	if taskID == "" {
		return nil, errors.New("kie: task id is required")
	}
	q := url.Values{"taskId": {taskID}}
	if index != nil {
		q.Set("index", strconv.Itoa(*index))
	}
	env, err := c.do(ctx, http.MethodGet, "/veo/get-1080p-video?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var data Veo1080pData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("kie: decode 1080p response: %w", err)
	}
	return &data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("kie: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kie: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("kie: read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		var env Envelope
		if err := json.Unmarshal(raw, &env); err == nil && env.Msg != "" {
			return nil, &RemoteError{Code: env.Code, Msg: env.Msg}
		}
		return nil, fmt.Errorf("kie: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("kie: decode response: %w", err)
	}
	if env.Code != 200 {
		return nil, &RemoteError{Code: env.Code, Msg: env.Msg}
	}
	return &env, nil
}
