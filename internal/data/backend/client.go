package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the POS backend's REST surface. Every call derives a
// deadline from the caller's context, so an abandoned page load cancels
// its in-flight fetch instead of racing a newer one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout: timeout,
		log:     log.With(zap.String("client", "backend")),
	}
}

// Upload carries a product image through to the backend untouched.
type Upload struct {
	Filename string
	Content  io.Reader
}

// do performs the request and reads the full body while the derived
// deadline is still armed; canceling the request context aborts an
// unfinished body read, so the read must not outlive this frame.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// getJSON fetches path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("GET %s failed with status: %d", path, status)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getList fetches path expecting a JSON array. A body that is not an
// array (or not JSON at all) yields an empty list, not an error; the
// views must keep rendering through a transient malformed response.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("GET %s failed with status: %d", path, status)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		c.log.Warn("Expected an array but received something else",
			zap.String("path", path),
			zap.Int("bytes", len(trimmed)))
		return nil
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		c.log.Warn("Failed to decode list, treating as empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return nil
}

// postJSON sends body as JSON and optionally decodes the reply.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	status, data, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("POST %s failed with status: %d", path, status)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// post sends a bodyless action request (complete-order, cancel-order).
func (c *Client) post(ctx context.Context, path string) error {
	status, _, err := c.do(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("POST %s failed with status: %d", path, status)
	}
	return nil
}

func (c *Client) deleteReq(ctx context.Context, path string) error {
	status, _, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return fmt.Errorf("DELETE %s failed with status: %d", path, status)
	}
	return nil
}

// postMultipart sends name/price fields plus an optional image file,
// matching the backend's create-product and update-product forms.
func (c *Client) postMultipart(ctx context.Context, method, path string, fields map[string]string, image *Upload) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return fmt.Errorf("copy image: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	status, _, err := c.do(ctx, method, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("%s %s failed with status: %d", method, path, status)
	}
	return nil
}
