package pinpoint

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv, &requests
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		APIKey:    "test-key",
		Subdomain: "acme",
		BaseURL:   baseURL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{Subdomain: "acme"}); err == nil {
		t.Error("expected error for missing api key")
	}
	if _, err := NewClient(Config{APIKey: "key"}); err == nil {
		t.Error("expected error for missing subdomain")
	}
}

func TestListJobsQueryUsesBracketKeys(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
	client := newTestClient(t, srv.URL)

	_, err := client.ListJobs(context.Background(), JobFilters{
		Search:  "engineer",
		Status:  "open",
		Page:    2,
		PerPage: 10,
	})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	got := (*requests)[0]
	if got.path != "/jobs" {
		t.Errorf("path = %q, want /jobs", got.path)
	}

	want := map[string]string{
		"filter[search]": "engineer",
		"filter[status]": "open",
		"page[number]":   "2",
		"page[size]":     "10",
	}
	for key, val := range want {
		if v := got.query[key]; len(v) != 1 || v[0] != val {
			t.Errorf("query[%q] = %v, want %q", key, v, val)
		}
	}

	// Absent filters must not appear at all, not even as empty values.
	for _, key := range []string{"filter[employment_type]", "filter[workplace_type]"} {
		if _, ok := got.query[key]; ok {
			t.Errorf("query contains %q for an absent filter", key)
		}
	}
	if len(got.query) != len(want) {
		t.Errorf("query has %d keys, want %d: %v", len(got.query), len(want), got.query)
	}
}

func TestListJobsAuthHeaders(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
	client := newTestClient(t, srv.URL)

	if _, err := client.ListJobs(context.Background(), JobFilters{}); err != nil {
		t.Fatalf("ListJobs: %v", err)
	}

	got := (*requests)[0]
	if got.header.Get("X-API-KEY") != "test-key" {
		t.Errorf("X-API-KEY = %q", got.header.Get("X-API-KEY"))
	}
	if got.header.Get("Accept") != "application/vnd.api+json" {
		t.Errorf("Accept = %q", got.header.Get("Accept"))
	}
	if got.header.Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestListApplicationsAlwaysSendsFixedParams(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusOK, `{"data":[]}`)
	client := newTestClient(t, srv.URL)

	if _, err := client.ListApplications(context.Background(), ApplicationFilters{}); err != nil {
		t.Fatalf("ListApplications: %v", err)
	}
	if _, err := client.ListApplications(context.Background(), ApplicationFilters{
		JobID:         "42",
		JobVisibility: "external,internal",
	}); err != nil {
		t.Fatalf("ListApplications: %v", err)
	}

	for i, got := range *requests {
		if v := got.query.Get("extra_fields[applications]"); v != "attachments" {
			t.Errorf("request %d: extra_fields[applications] = %q, want attachments", i, v)
		}
		if v := got.query.Get("stats[total]"); v != "count" {
			t.Errorf("request %d: stats[total] = %q, want count", i, v)
		}
	}

	second := (*requests)[1]
	if v := second.query.Get("filter[job_id]"); v != "42" {
		t.Errorf("filter[job_id] = %q, want 42", v)
	}
	if v := second.query.Get("filter[job_visibility]"); v != "external,internal" {
		t.Errorf("filter[job_visibility] = %q", v)
	}
}

func TestCreateApplicationBodyShape(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusCreated, `{"data":{"id":"7","type":"applications"}}`)
	client := newTestClient(t, srv.URL)

	raw, err := client.CreateApplication(context.Background(), NewApplication{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		JobID:     "42",
	})
	if err != nil {
		t.Fatalf("CreateApplication: %v", err)
	}
	if string(raw) != `{"data":{"id":"7","type":"applications"}}` {
		t.Errorf("response not passed through verbatim: %s", raw)
	}

	got := (*requests)[0]
	if got.method != http.MethodPost || got.path != "/applications" {
		t.Fatalf("request = %s %s, want POST /applications", got.method, got.path)
	}
	if ct := got.header.Get("Content-Type"); ct != "application/vnd.api+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var doc map[string]any
	if err := json.Unmarshal(got.body, &doc); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}

	data := doc["data"].(map[string]any)
	if data["type"] != "applications" {
		t.Errorf("data.type = %v", data["type"])
	}

	attrs := data["attributes"].(map[string]any)
	for key, want := range map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	} {
		if attrs[key] != want {
			t.Errorf("attributes.%s = %v, want %q", key, attrs[key], want)
		}
	}

	rel := data["relationships"].(map[string]any)
	jobData := rel["job"].(map[string]any)["data"].(map[string]any)
	if jobData["type"] != "jobs" || jobData["id"] != "42" {
		t.Errorf("relationships.job.data = %v", jobData)
	}
}

func TestCreateApplicationValidation(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusCreated, `{}`)
	client := newTestClient(t, srv.URL)

	cases := []struct {
		name string
		app  NewApplication
	}{
		{"missing first name", NewApplication{LastName: "L", Email: "a@b.com", JobID: "1"}},
		{"missing last name", NewApplication{FirstName: "F", Email: "a@b.com", JobID: "1"}},
		{"missing email", NewApplication{FirstName: "F", LastName: "L", JobID: "1"}},
		{"missing job id", NewApplication{FirstName: "F", LastName: "L", Email: "a@b.com"}},
		{"malformed email", NewApplication{FirstName: "F", LastName: "L", Email: "not-an-email", JobID: "1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := client.CreateApplication(context.Background(), tc.app); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if len(*requests) != 0 {
		t.Errorf("validation failures issued %d request(s)", len(*requests))
	}
}

func TestAPIErrorCarriesUpstreamBody(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusUnprocessableEntity, `{"errors":[{"detail":"email taken"}]}`)
	client := newTestClient(t, srv.URL)

	_, err := client.GetJob(context.Background(), "42")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Body != `{"errors":[{"detail":"email taken"}]}` {
		t.Errorf("Body = %q", apiErr.Body)
	}
	if apiErr.NotFound() {
		t.Error("422 reported as not found")
	}
}

func TestNotFound(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusNotFound, `{"errors":[{"detail":"no such job"}]}`)
	client := newTestClient(t, srv.URL)

	_, err := client.GetJob(context.Background(), "missing")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if !apiErr.NotFound() {
		t.Error("404 not reported as not found")
	}
}

func TestGetByIDIsIdempotent(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusOK, `{"data":{}}`)
	client := newTestClient(t, srv.URL)

	for i := 0; i < 2; i++ {
		if _, err := client.GetApplication(context.Background(), "app-9"); err != nil {
			t.Fatalf("GetApplication: %v", err)
		}
	}

	if len(*requests) != 2 {
		t.Fatalf("issued %d requests, want 2", len(*requests))
	}
	first, second := (*requests)[0], (*requests)[1]
	if first.method != http.MethodGet || second.method != http.MethodGet {
		t.Errorf("methods = %s, %s, want GET", first.method, second.method)
	}
	if first.path != second.path || first.path != "/applications/app-9" {
		t.Errorf("paths = %q, %q, want /applications/app-9", first.path, second.path)
	}
}

func TestGetRequiresID(t *testing.T) {
	srv, requests := newRecordingServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, srv.URL)

	if _, err := client.GetJob(context.Background(), ""); err == nil {
		t.Error("GetJob accepted empty id")
	}
	if _, err := client.GetApplication(context.Background(), ""); err == nil {
		t.Error("GetApplication accepted empty id")
	}
	if len(*requests) != 0 {
		t.Errorf("empty-id calls issued %d request(s)", len(*requests))
	}
}
