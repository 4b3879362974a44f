package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/demobank/bankcli/internal/client/models"
	"github.com/demobank/bankcli/internal/client/tokenstore"
	"github.com/demobank/bankcli/internal/logging"
)

// Header names used on every outbound request.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
)

const refreshPath = "/auth/token/refresh/"

// Client is the single point of outbound HTTP. It attaches the stored
// bearer token to every request, tags requests with an X-Request-ID, and
// maps failures to the uniform error surface of this package.
//
// On a 401 the client exchanges the stored refresh token once and replays
// the request; if the exchange fails the 401 surfaces as ErrUnauthorized.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokenstore.Store
	log     logging.Logger
}

// New creates a Client for the API rooted at baseURL (e.g.
// "http://localhost:8000/api"). If httpClient is nil, http.DefaultClient
// is used.
func New(baseURL string, tokens tokenstore.Store, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

// send performs a single HTTP round trip. It does not retry.
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string, withAuth bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if withAuth {
		pair, err := c.tokens.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load tokens: %w", err)
		}
		if pair != nil {
			req.Header.Set(AuthorizationHeader, "Bearer "+pair.Access)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp, nil
}

// refreshTokens exchanges the stored refresh token for a fresh access token
// and persists the result. Returns false when no refresh token is stored or
// the exchange is rejected.
func (c *Client) refreshTokens(ctx context.Context) bool {
	pair, err := c.tokens.Load(ctx)
	if err != nil || pair == nil {
		return false
	}

	payload, err := json.Marshal(map[string]string{"refresh": pair.Refresh})
	if err != nil {
		return false
	}

	resp, err := c.send(ctx, http.MethodPost, refreshPath, payload, "application/json", false)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug(ctx, "token refresh rejected", "status", resp.StatusCode)
		return false
	}

	var refreshed models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&refreshed); err != nil {
		return false
	}
	if refreshed.Access == "" {
		return false
	}
	if refreshed.Refresh == "" {
		// rotation disabled server-side, keep the old refresh token
		refreshed.Refresh = pair.Refresh
	}

	if err := c.tokens.Save(ctx, refreshed); err != nil {
		c.log.Error(ctx, "failed to persist refreshed tokens", "error", err)
		return false
	}
	return true
}

// request performs method path with the given body, transparently refreshing
// tokens on a 401, and returns the raw response body.
func (c *Client) request(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, http.Header, error) {
	resp, err := c.send(ctx, method, path, body, contentType, true)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if !c.refreshTokens(ctx) {
			return nil, nil, ErrUnauthorized
		}

		c.log.Debug(ctx, "tokens refreshed, replaying request", "method", method, "path", path)
		resp, err = c.send(ctx, method, path, body, contentType, true)
		if err != nil {
			return nil, nil, err
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, nil, ErrUnauthorized
	case resp.StatusCode >= 400:
		return nil, nil, &RemoteError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	return data, resp.Header, nil
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	contentType := ""

	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		contentType = "application/json"
	}

	data, _, err := c.request(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Get fetches path and decodes the JSON response into out (skipped when out
// is nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.jsonRequest(ctx, http.MethodGet, path, nil, out)
}

// GetRaw fetches path and returns the raw response body, for endpoints whose
// shape must be normalized before decoding.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	data, _, err := c.request(ctx, http.MethodGet, path, nil, "")
	return data, err
}

// Post sends in as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.jsonRequest(ctx, http.MethodPost, path, in, out)
}

// Patch sends in as JSON and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.jsonRequest(ctx, http.MethodPatch, path, in, out)
}

// Delete issues a DELETE and decodes the response into out when non-nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.jsonRequest(ctx, http.MethodDelete, path, nil, out)
}

// Upload sends content as a multipart file under fieldName and decodes the
// JSON response into out. The whole file travels in one request; a failed
// upload must be retried in full.
func (c *Client) Upload(ctx context.Context, path, fieldName, fileName string, content []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	data, _, err := c.request(ctx, http.MethodPost, path, buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Download fetches a binary document and returns its bytes together with the
// filename suggested by the Content-Disposition header, if any.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	data, header, err := c.request(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, "", err
	}

	filename := ""
	if cd := header.Get("Content-Disposition"); cd != "" {
		if i := strings.Index(cd, `filename="`); i >= 0 {
			rest := cd[i+len(`filename="`):]
			if j := strings.Index(rest, `"`); j >= 0 {
				filename = rest[:j]
			}
		}
	}
	return data, filename, nil
}
