package pinpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	baseURLFormat    = "https://%s.pinpointhq.com/api/v1"
	defaultRateLimit = 5.0 // requests per second
	defaultBurst     = 5
	errorBodyLimit   = 4096
)

type limiter interface {
	Wait(ctx context.Context) error
}

// NewClient instantiates a Pinpoint API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.Subdomain == "" {
		return nil, fmt.Errorf("pinpoint: api_key and subdomain are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf(baseURLFormat, cfg.Subdomain)
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(limit), burst),
		logger:     cfg.Logger,
	}, nil
}

// ListJobs fetches jobs matching the given filters. The upstream response
// body is returned verbatim.
func (c *Client) ListJobs(ctx context.Context, filters JobFilters) (json.RawMessage, error) {
	values := url.Values{}
	setIfPresent(values, "filter[search]", filters.Search)
	setIfPresent(values, "filter[status]", filters.Status)
	setIfPresent(values, "filter[employment_type]", filters.EmploymentType)
	setIfPresent(values, "filter[workplace_type]", filters.WorkplaceType)
	setPagination(values, filters.Page, filters.PerPage)

	return c.do(ctx, http.MethodGet, "/jobs", values, nil)
}

// GetJob fetches a single job by its opaque ID.
func (c *Client) GetJob(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("pinpoint: job id is required")
	}

	return c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil)
}

// CreateApplication submits a JSON:API application document referencing an
// existing job. The created resource, including its assigned ID, is returned.
func (c *Client) CreateApplication(ctx context.Context, app NewApplication) (json.RawMessage, error) {
	if app.FirstName == "" || app.LastName == "" || app.Email == "" || app.JobID == "" {
		return nil, fmt.Errorf("pinpoint: first name, last name, email and job id are required")
	}
	if _, err := mail.ParseAddress(app.Email); err != nil {
		return nil, fmt.Errorf("pinpoint: invalid email %q: %w", app.Email, err)
	}

	doc := applicationDocument{
		Data: applicationData{
			Type: "applications",
			Attributes: applicationAttributes{
				FirstName: app.FirstName,
				LastName:  app.LastName,
				Email:     app.Email,
			},
			Relationships: applicationRelationships{
				Job: jobRelationship{
					Data: resourceIdentifier{Type: "jobs", ID: app.JobID},
				},
			},
		},
	}

	return c.do(ctx, http.MethodPost, "/applications", nil, doc)
}

// ListApplications fetches applications matching the given filters. Two
// parameters are always sent regardless of filters: the upstream API requires
// them to sideload attachments and report the total count.
func (c *Client) ListApplications(ctx context.Context, filters ApplicationFilters) (json.RawMessage, error) {
	values := url.Values{}
	setIfPresent(values, "filter[job_id]", filters.JobID)
	setIfPresent(values, "filter[job_visibility]", filters.JobVisibility)
	setIfPresent(values, "filter[stage_id]", filters.StageID)
	setPagination(values, filters.Page, filters.PerPage)

	values.Set("extra_fields[applications]", "attachments")
	values.Set("stats[total]", "count")

	return c.do(ctx, http.MethodGet, "/applications", values, nil)
}

// GetApplication fetches a single application by its opaque ID.
func (c *Client) GetApplication(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("pinpoint: application id is required")
	}

	return c.do(ctx, http.MethodGet, "/applications/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("pinpoint: client is nil")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pinpoint: rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("pinpoint: encode request body: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, fmt.Errorf("pinpoint: build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("Accept", "application/vnd.api+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/vnd.api+json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logError("pinpoint request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("pinpoint: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Body:       strings.TrimSpace(string(errBody)),
		}
		c.logError("pinpoint API error", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode, "body", apiErr.Body)
		return nil, apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pinpoint: read response: %w", err)
	}

	c.logDebug("pinpoint request completed", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)
	return json.RawMessage(raw), nil
}

func (c *Client) logError(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Error(msg, keyvals...)
	}
}

func (c *Client) logDebug(msg string, keyvals ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}

func setIfPresent(values url.Values, key, val string) {
	if val != "" {
		values.Set(key, val)
	}
}

func setPagination(values url.Values, page, perPage int) {
	if page > 0 {
		values.Set("page[number]", strconv.Itoa(page))
	}
	if perPage > 0 {
		values.Set("page[size]", strconv.Itoa(perPage))
	}
}
