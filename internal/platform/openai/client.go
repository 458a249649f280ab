package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/degreeplan-backend/internal/platform/envutil"
	"github.com/yungbote/degreeplan-backend/internal/platform/httpx"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
	"github.com/yungbote/degreeplan-backend/internal/platform/promptstyle"
)

var (
	// ErrRefused is returned when the model declines to answer.
	ErrRefused = errors.New("model refused")
	// ErrEmptyOutput is returned when a response carries no output_text.
	ErrEmptyOutput = errors.New("no output_text found in response")
)

// GenerateOptions tunes a single structured-output call. Zero values fall back
// to the client defaults.
type GenerateOptions struct {
	Temperature     *float64
	MaxOutputTokens int
}

// Client is the subset of the OpenAI Responses API used by the planner.
type Client interface {
	// GenerateJSON requests a strict json_schema structured output and decodes it.
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any, opts GenerateOptions) (map[string]any, error)
}

// Config is resolved from OPENAI_* env vars by ConfigFromEnv.
type Config struct {
	APIKey          string
	BaseURL         string
	Model           string
	Timeout         time.Duration
	MaxRetries      int
	Temperature     *float64
	MaxOutputTokens int
	// Models that reject the temperature parameter. Entries ending in "*" match by prefix.
	NoTempModels []string
}

func ConfigFromEnv() (Config, error) {
	cfg := Config{
		APIKey:          envutil.String("OPENAI_API_KEY", ""),
		BaseURL:         strings.TrimRight(envutil.String("OPENAI_BASE_URL", "https://api.openai.com"), "/"),
		Model:           envutil.String("OPENAI_MODEL", "gpt-4.1-mini"),
		Timeout:         envutil.Seconds("OPENAI_TIMEOUT_SECONDS", 180*time.Second),
		MaxRetries:      envutil.Int("OPENAI_MAX_RETRIES", 0),
		MaxOutputTokens: envutil.Int("OPENAI_MAX_OUTPUT_TOKENS", 8000),
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("missing OPENAI_API_KEY")
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	switch raw := strings.ToLower(envutil.String("OPENAI_TEMPERATURE", "")); raw {
	case "off", "none", "nil", "false":
	default:
		temp := envutil.Float("OPENAI_TEMPERATURE", 0.2)
		cfg.Temperature = &temp
	}
	for _, part := range strings.Split(envutil.String("OPENAI_NO_TEMPERATURE_MODELS", ""), ",") {
		if s := strings.ToLower(strings.TrimSpace(part)); s != "" {
			cfg.NoTempModels = append(cfg.NoTempModels, s)
		}
	}
	return cfg, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing api key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 180 * time.Second
	}
	return &client{
		log:        log.With("service", "OpenAIClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

func (e *httpError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// DecodeError means the model answered but its text is not a JSON object.
type DecodeError struct {
	Text string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse model JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedOutput marks the error as a content problem rather than a transport one.
func (e *DecodeError) MalformedOutput() bool { return true }

type responsesRequest struct {
	Model string `json:"model"`

	Input []inputMessage `json:"input"`

	Text struct {
		Format map[string]any `json:"format,omitempty"`
	} `json:"text,omitempty"`

	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"`
}

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesResponse struct {
	Status string `json:"status"`
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type    string `json:"type"`
			Text    string `json:"text,omitempty"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
	Refusal           string `json:"refusal,omitempty"`
	IncompleteDetails *struct {
		Reason string `json:"reason"`
	} `json:"incomplete_details,omitempty"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage,omitempty"`
}

func (r responsesResponse) outputText() (text string, refusal string) {
	var out strings.Builder
	for _, item := range r.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, c := range item.Content {
			switch c.Type {
			case "output_text":
				out.WriteString(c.Text)
			case "refusal":
				refusal = c.Refusal
			}
		}
	}
	if refusal == "" {
		refusal = r.Refusal
	}
	return out.String(), refusal
}

func (c *client) GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any, opts GenerateOptions) (map[string]any, error) {
	if schemaName == "" {
		return nil, errors.New("schemaName required")
	}
	if schema == nil {
		return nil, errors.New("schema required")
	}

	req := responsesRequest{
		Model: c.cfg.Model,
		Input: []inputMessage{
			{Role: "system", Content: promptstyle.ApplySystem(system, "json")},
			{Role: "user", Content: user},
		},
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}
	if opts.MaxOutputTokens > 0 {
		req.MaxOutputTokens = opts.MaxOutputTokens
	}
	req.Temperature = c.cfg.Temperature
	if opts.Temperature != nil {
		req.Temperature = opts.Temperature
	}
	if c.modelIsNoTemp(req.Model) {
		req.Temperature = nil
	}
	req.Text.Format = map[string]any{
		"type":   "json_schema",
		"name":   schemaName,
		"schema": schema,
		"strict": true,
	}

	var resp responsesResponse
	if err := c.do(ctx, "/v1/responses", &req, &resp); err != nil {
		return nil, err
	}
	c.log.Debug("openai response",
		"model", req.Model,
		"schema", schemaName,
		"status", resp.Status,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)

	text, refusal := resp.outputText()
	if refusal != "" {
		return nil, fmt.Errorf("%w: %s", ErrRefused, refusal)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyOutput
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		if resp.IncompleteDetails != nil && resp.IncompleteDetails.Reason != "" {
			err = fmt.Errorf("%w (incomplete: %s)", err, resp.IncompleteDetails.Reason)
		}
		return nil, &DecodeError{Text: text, Err: err}
	}
	return obj, nil
}

func (c *client) modelIsNoTemp(model string) bool {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, rule := range c.cfg.NoTempModels {
		if strings.HasSuffix(rule, "*") {
			if strings.HasPrefix(m, strings.TrimSuffix(rule, "*")) {
				return true
			}
			continue
		}
		if m == rule {
			return true
		}
	}
	return false
}

func (c *client) doOnce(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

// do retries only transport-level failures, and only when MaxRetries > 0.
func (c *client) do(ctx context.Context, path string, body any, out any) error {
	backoff := 1 * time.Second
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		resp, raw, err := c.doOnce(ctx, path, body)
		if err == nil {
			if uErr := json.Unmarshal(raw, out); uErr != nil {
				return fmt.Errorf("openai decode error: %w", uErr)
			}
			return nil
		}
		if attempt >= c.cfg.MaxRetries || !httpx.IsRetryableError(err) {
			return err
		}
		sleepFor := httpx.JitterSleep(httpx.RetryAfterDuration(resp, backoff, 10*time.Second))
		c.log.Warn("OpenAI request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)
		if err := httpx.Sleep(ctx, sleepFor); err != nil {
			return err
		}
		backoff *= 2
	}
}
