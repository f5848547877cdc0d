package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	resumesTable  = "resumes"
	resumesBucket = "resumes"
	maxErrorBody  = 512

	// MaxResumeSize caps resume files in both directions: uploads and downloads.
	MaxResumeSize = 10 << 20
)

// Client talks to the Supabase REST and storage APIs with the service role key.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient constructs a Client. baseURL is the project URL, e.g. https://xyz.supabase.co.
func NewClient(baseURL, serviceKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("SUPABASE_URL is required")
	}
	if strings.TrimSpace(serviceKey) == "" {
		return nil, errors.New("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// GetResumeMetadata fetches the resume row owned by userID.
func (c *Client) GetResumeMetadata(ctx context.Context, resumeID, userID string) (ResumeMetadata, error) {
	q := url.Values{}
	q.Set("select", "file_path,file_name,file_size_bytes,upload_date")
	q.Set("id", "eq."+resumeID)
	q.Set("user_id", "eq."+userID)
	endpoint := c.baseURL + "/rest/v1/" + resumesTable + "?" + q.Encode()

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ResumeMetadata{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ResumeMetadata{}, fmt.Errorf("supabase metadata request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ResumeMetadata{}, fmt.Errorf("supabase metadata read: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ResumeMetadata{}, fmt.Errorf("supabase metadata status %d: %s", resp.StatusCode, snippet(body))
	}

	var rows []ResumeMetadata
	if err := json.Unmarshal(body, &rows); err != nil {
		return ResumeMetadata{}, fmt.Errorf("%w: %v", ErrMetadataParse, err)
	}
	if len(rows) == 0 {
		return ResumeMetadata{}, ErrResumeNotFound
	}
	return rows[0], nil
}

// Download returns the bytes of a file in the resumes bucket.
func (c *Client) Download(ctx context.Context, filePath string) ([]byte, error) {
	endpoint := c.baseURL + "/storage/v1/object/authenticated/" + resumesBucket + "/" + escapePath(filePath)

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResumeSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrDownloadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrDownloadFailed, resp.StatusCode, snippet(body))
	}
	if len(body) > MaxResumeSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrDownloadFailed, MaxResumeSize)
	}
	return body, nil
}

// MarkAnalyzed sets is_analyzed on the resume row.
func (c *Client) MarkAnalyzed(ctx context.Context, resumeID string) error {
	q := url.Values{}
	q.Set("id", "eq."+resumeID)
	endpoint := c.baseURL + "/rest/v1/" + resumesTable + "?" + q.Encode()

	payload, err := json.Marshal(map[string]bool{"is_analyzed": true})
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("supabase mark analyzed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("supabase mark analyzed status %d: %s", resp.StatusCode, snippet(body))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	return req, nil
}

func escapePath(p string) string {
	segments := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
