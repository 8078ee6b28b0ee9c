package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"status-notifier/core/models"
	"status-notifier/core/reconcile"

	"golang.org/x/net/http2"
)

const defaultMaxBody = 8 << 20

// Record is one element of the remote payload. It has no ID field; storage
// identity never comes from the remote side.
type Record struct {
	Key            string `json:"key"`
	Location       string `json:"location"`
	Environment    string `json:"environment"`
	ReleaseVersion string `json:"releaseVersion"`
	Status         string `json:"status"`
}

// Instance converts the record into an unpersisted instance.
func (r Record) Instance() models.Instance {
	return models.Instance{
		Key:            r.Key,
		Location:       r.Location,
		Environment:    r.Environment,
		ReleaseVersion: r.ReleaseVersion,
		Status:         r.Status,
	}
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Fetcher retrieves the instance list over HTTP. It implements
// reconcile.Fetcher.
type Fetcher struct {
	url     string
	client  *http.Client
	maxBody int64
	now     func() time.Time
}

// NewFetcher builds a fetcher with an HTTP/2 capable transport.
func NewFetcher(cfg Config) (*Fetcher, error) {
	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("endpoint url required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, fmt.Errorf("failed to configure http2 transport: %w", err)
	}

	f := NewFetcherWithClient(cfg.EndpointURL, &http.Client{
		Transport: transport,
		Timeout:   timeoutDuration,
	})
	if cfg.MaxBodyBytes > 0 {
		f.maxBody = cfg.MaxBodyBytes
	}
	return f, nil
}

// NewFetcherWithClient builds a fetcher around an existing client.
func NewFetcherWithClient(url string, client *http.Client) *Fetcher {
	return &Fetcher{
		url:     url,
		client:  client,
		maxBody: defaultMaxBody,
		now:     time.Now,
	}
}

// Fetch performs one GET of the endpoint and decodes the instance list.
func (f *Fetcher) Fetch(ctx context.Context) (*reconcile.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(raw)) > f.maxBody {
		return nil, fmt.Errorf("response exceeds %d bytes", f.maxBody)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode instances: %w", err)
	}

	instances := make([]models.Instance, len(records))
	for i, r := range records {
		instances[i] = r.Instance()
	}

	return &reconcile.Snapshot{
		Instances: instances,
		Raw:       raw,
		FetchedAt: f.now(),
	}, nil
}
