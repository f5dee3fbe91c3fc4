package timer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StatusFetcher reads the authoritative timer state.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*StatusResponse, error)
}

// Commander is the full set of operations the client issues against the
// timer server. It is implemented by *Client and faked in tests.
type Commander interface {
	StatusFetcher
	Start(ctx context.Context) error
	Resume(ctx context.Context) error
	Pause(ctx context.Context) error
	Reset(ctx context.Context) error
	SwitchMode(ctx context.Context, mode Mode) error
	UploadBackground(ctx context.Context, path string) (UploadResponse, error)
	RemoveBackground(ctx context.Context) error
}

// Ensure Client implements Commander at compile time.
var _ Commander = (*Client)(nil)

// Client talks to the Pomodoro timer HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServer    = "127.0.0.1:5000"
	defaultUserAgent = "tomate/0.1"

	// MaxUploadBytes matches the server's request size limit.
	MaxUploadBytes = 20 << 20
)

// ErrUnsupportedImage is returned before any request is made when the
// selected background is not an image type the server accepts.
var ErrUnsupportedImage = errors.New("unsupported background image type")

var allowedImageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// AllowedImageTypes returns the extensions accepted by UploadBackground.
func AllowedImageTypes() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif"}
}

// StatusError reports an HTTP error status from the server.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// NewClient builds a Client for the given host:port or URL. A zero timeout
// leaves requests unbounded.
func NewClient(server string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(server)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalised server URL.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchStatus retrieves the current timer snapshot.
func (c *Client) FetchStatus(ctx context.Context) (*StatusResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/status", nil, "", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Start starts or resumes the timer with GET /start.
func (c *Client) Start(ctx context.Context) error {
	return c.command(ctx, http.MethodGet, "/start")
}

// Resume issues POST /start, used after switching back to a focus session.
func (c *Client) Resume(ctx context.Context) error {
	return c.command(ctx, http.MethodPost, "/start")
}

// Pause stops the countdown.
func (c *Client) Pause(ctx context.Context) error {
	return c.command(ctx, http.MethodGet, "/pause")
}

// Reset returns the server to a fresh focus session.
func (c *Client) Reset(ctx context.Context) error {
	return c.command(ctx, http.MethodGet, "/reset")
}

// SwitchMode posts to the mode-specific switch endpoint.
func (c *Client) SwitchMode(ctx context.Context, mode Mode) error {
	var path string
	switch mode {
	case ModePomodoro:
		path = "/switch_to_pomodoro"
	case ModeShortBreak:
		path = "/switch_to_short_break"
	case ModeLongBreak:
		path = "/switch_to_long_break"
	default:
		return fmt.Errorf("switch mode: unknown mode %q", mode)
	}
	return c.command(ctx, http.MethodPost, path)
}

// RemoveBackground clears the uploaded background on the server.
func (c *Client) RemoveBackground(ctx context.Context) error {
	return c.command(ctx, http.MethodPost, "/remove_background")
}

// UploadBackground submits the file at path as the multipart field
// "background".
func (c *Client) UploadBackground(ctx context.Context, path string) (UploadResponse, error) {
	if c == nil {
		return UploadResponse{}, fmt.Errorf("client is nil")
	}
	body, contentType, err := encodeUpload(path)
	if err != nil {
		return UploadResponse{}, err
	}
	var payload UploadResponse
	if err := c.do(ctx, http.MethodPost, "/upload", body, contentType, &payload); err != nil {
		return UploadResponse{}, err
	}
	return payload, nil
}

func (c *Client) command(ctx context.Context, method, path string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, method, path, nil, "", nil)
}

func encodeUpload(path string) (io.Reader, string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, "", fmt.Errorf("upload: no file selected")
	}
	if _, ok := allowedImageExts[strings.ToLower(filepath.Ext(trimmed))]; !ok {
		return nil, "", fmt.Errorf("upload %s: %w", filepath.Base(trimmed), ErrUnsupportedImage)
	}
	file, err := os.Open(trimmed)
	if err != nil {
		return nil, "", fmt.Errorf("open background: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("stat background: %w", err)
	}
	if info.Size() > MaxUploadBytes {
		return nil, "", fmt.Errorf("upload %s: file is %d bytes, limit is %d", filepath.Base(trimmed), info.Size(), MaxUploadBytes)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("background", filepath.Base(trimmed))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copy background: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Path: rel.String(), Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts {"error": "..."} from a failed response when present.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}

func parseBaseURL(server string) (*url.URL, error) {
	trimmed := strings.TrimSpace(server)
	if trimmed == "" {
		trimmed = defaultServer
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server %q: %w", server, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
