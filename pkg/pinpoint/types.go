package pinpoint

import (
	"fmt"
	"net/http"

	"github.com/hirewire/pinpoint-mcp/pkg/logging"
)

// Config defines Pinpoint API client settings
type Config struct {
	APIKey     string
	Subdomain  string
	BaseURL    string // override for tests; default derived from Subdomain
	HTTPClient *http.Client
	RateLimit  float64 // requests per second, default 5
	Burst      int
	Logger     *logging.Logger
}

// Client issues authenticated requests against the Pinpoint ATS API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    limiter
	logger     *logging.Logger
}

// JobFilters narrows a job listing request. Zero-valued fields are omitted
// from the query string entirely.
type JobFilters struct {
	Search         string
	Status         string // open, closed, filled, on_hold, draft
	EmploymentType string // full_time, part_time, contract, temporary, internship
	WorkplaceType  string // onsite, remote, hybrid
	Page           int
	PerPage        int
}

// ApplicationFilters narrows an application listing request.
type ApplicationFilters struct {
	JobID         string
	JobVisibility string // comma-joined subset of external, internal, private_job, confidential
	StageID       string
	Page          int
	PerPage       int
}

// NewApplication carries the required fields for creating an application.
type NewApplication struct {
	FirstName string
	LastName  string
	Email     string
	JobID     string
}

// APIError is a non-2xx response from the upstream API.
type APIError struct {
	StatusCode int
	RequestID  string
	Body       string // upstream error body when present
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("pinpoint: API error (%d): %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("pinpoint: API error (%d)", e.StatusCode)
}

// NotFound reports whether the upstream rejected the request with a 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// JSON:API document shape for POST /applications
type applicationDocument struct {
	Data applicationData `json:"data"`
}

type applicationData struct {
	Type          string                   `json:"type"`
	Attributes    applicationAttributes    `json:"attributes"`
	Relationships applicationRelationships `json:"relationships"`
}

type applicationAttributes struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type applicationRelationships struct {
	Job jobRelationship `json:"job"`
}

type jobRelationship struct {
	Data resourceIdentifier `json:"data"`
}

type resourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
