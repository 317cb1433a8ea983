// Package github is the storage collaborator for reports: a thin
// client for the GitHub REST v3 endpoints the report store needs
// (recursive tree listing, blob reads, contents reads and writes).
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Config identifies the repository the reports live in.
type Config struct {
	APIURL string
	Token  string
	Owner  string
	Repo   string
	Branch string
}

// Client calls the GitHub REST API with retry/backoff. Retry policy
// lives here; the report parsing layer stays pure.
type Client struct {
	cfg    Config
	http   *retryablehttp.Client
	logger *slog.Logger
}

// TreeEntry is one blob from a recursive tree listing.
type TreeEntry struct {
	Path string
	SHA  string
}

// FileContent is the decoded content of one file plus the sha needed
// for a follow-up write.
type FileContent struct {
	Content string
	SHA     string
}

// NewClient creates a GitHub client. Empty APIURL falls back to the
// public endpoint; branch defaults to main.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil // request logging happens via slog in do()

	return &Client{cfg: cfg, http: rc, logger: logger}
}

// ListMarkdownFiles lists every ".md" blob under pathPrefix on the
// configured branch, using a single recursive tree call.
func (c *Client) ListMarkdownFiles(ctx context.Context, pathPrefix string) ([]TreeEntry, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.cfg.APIURL, c.cfg.Owner, c.cfg.Repo, c.cfg.Branch)

	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("list tree: %w", err)
	}
	if status != http.StatusOK {
		return nil, apiError("list tree", status, body)
	}

	prefix := strings.TrimSuffix(pathPrefix, "/")
	var entries []TreeEntry
	for _, item := range gjson.GetBytes(body, "tree").Array() {
		if item.Get("type").String() != "blob" {
			continue
		}
		path := item.Get("path").String()
		if !strings.HasSuffix(path, ".md") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(path, prefix+"/") {
			continue
		}
		entries = append(entries, TreeEntry{
			Path: path,
			SHA:  item.Get("sha").String(),
		})
	}
	return entries, nil
}

// GetBlobContent fetches a blob by sha and decodes its base64 payload.
func (c *Client) GetBlobContent(ctx context.Context, sha string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/git/blobs/%s",
		c.cfg.APIURL, c.cfg.Owner, c.cfg.Repo, sha)

	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("get blob %s: %w", sha, err)
	}
	if status != http.StatusOK {
		return "", apiError("get blob", status, body)
	}

	return decodeContent(gjson.GetBytes(body, "content").String())
}

// GetFileContent fetches a file through the contents endpoint. A
// missing file returns (nil, nil): not-found is a signal for the
// caller, not an error at this layer.
func (c *Client) GetFileContent(ctx context.Context, path string) (*FileContent, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		c.cfg.APIURL, c.cfg.Owner, c.cfg.Repo, path, c.cfg.Branch)

	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get contents %s: %w", path, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, apiError("get contents", status, body)
	}

	content, err := decodeContent(gjson.GetBytes(body, "content").String())
	if err != nil {
		return nil, fmt.Errorf("decode contents %s: %w", path, err)
	}
	return &FileContent{
		Content: content,
		SHA:     gjson.GetBytes(body, "sha").String(),
	}, nil
}

// PutFileContent creates or updates a file. previousSHA must be the
// current blob sha for updates and empty for creates.
func (c *Client) PutFileContent(ctx context.Context, path, content, message, previousSHA string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.cfg.APIURL, c.cfg.Owner, c.cfg.Repo, path)

	payload := map[string]string{
		"message": message,
		"content": base64.StdEncoding.EncodeToString([]byte(content)),
		"branch":  c.cfg.Branch,
	}
	if previousSHA != "" {
		payload["sha"] = previousSHA
	}

	body, status, err := c.do(ctx, http.MethodPut, url, payload)
	if err != nil {
		return fmt.Errorf("put contents %s: %w", path, err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return apiError("put contents", status, body)
	}
	return nil
}

// DeleteFile removes a file; sha must be the current blob sha.
func (c *Client) DeleteFile(ctx context.Context, path, message, sha string) error {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.cfg.APIURL, c.cfg.Owner, c.cfg.Repo, path)

	payload := map[string]string{
		"message": message,
		"sha":     sha,
		"branch":  c.cfg.Branch,
	}

	body, status, err := c.do(ctx, http.MethodDelete, url, payload)
	if err != nil {
		return fmt.Errorf("delete contents %s: %w", path, err)
	}
	if status != http.StatusOK {
		return apiError("delete contents", status, body)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("encode payload: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("github api call", "method", method, "url", url, "status", resp.StatusCode)
	}
	return body, resp.StatusCode, nil
}

// decodeContent decodes the base64 content field GitHub returns. The
// API inserts newlines every 60 characters, which must be stripped.
func decodeContent(encoded string) (string, error) {
	clean := strings.ReplaceAll(encoded, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("decode base64 content: %w", err)
	}
	return string(decoded), nil
}

func apiError(op string, status int, body []byte) error {
	msg := gjson.GetBytes(body, "message").String()
	if msg == "" {
		msg = "unexpected response"
	}
	return fmt.Errorf("%s: github api %d: %s", op, status, msg)
}
