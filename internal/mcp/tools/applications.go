package tools

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

var visibilityClasses = []string{"external", "internal", "private_job", "confidential"}

// CreateApplicationParams defines the arguments for the create-application tool
type CreateApplicationParams struct {
	JobID     string `json:"jobId" jsonschema:"ID of the job to apply for"`
	FirstName string `json:"firstName" jsonschema:"Candidate first name"`
	LastName  string `json:"lastName" jsonschema:"Candidate last name"`
	Email     string `json:"email" jsonschema:"Candidate email address"`
}

// GetApplicationsParams defines the arguments for the get-applications tool
type GetApplicationsParams struct {
	JobID         string `json:"jobId,omitempty" jsonschema:"Restrict to applications for this job"`
	JobVisibility string `json:"jobVisibility,omitempty" jsonschema:"Comma-joined subset of external, internal, private_job, confidential"`
	StageID       string `json:"stageId,omitempty" jsonschema:"Restrict to a pipeline stage"`
	Page          int    `json:"page,omitempty" jsonschema:"Page number, defaults to 1"`
	PerPage       int    `json:"perPage,omitempty" jsonschema:"Results per page, defaults to 20"`
}

// GetApplicationByIDParams defines the arguments for the get-application-by-id tool
type GetApplicationByIDParams struct {
	ID string `json:"id" jsonschema:"Opaque application identifier"`
}

// WithCreateApplication registers the create-application tool
func WithCreateApplication() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "create-application",
			Description: "Submit a new application for an existing job on behalf of a candidate",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *CreateApplicationParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.createApplication(ctx, params)
		})
	}
}

// WithGetApplications registers the get-applications tool
func WithGetApplications() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get-applications",
			Description: "List applications with optional job, visibility, stage and pagination filters",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetApplicationsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.getApplications(ctx, params)
		})
	}
}

// WithGetApplicationByID registers the get-application-by-id tool
func WithGetApplicationByID() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get-application-by-id",
			Description: "Fetch a single application by its ID",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetApplicationByIDParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.getApplicationByID(ctx, params)
		})
	}
}

// createApplication verifies the referenced job exists before submitting the
// application. The explicit pre-check keeps the "not found" message a
// first-class response instead of a surfaced upstream 404.
func (reg *registry) createApplication(ctx context.Context, params *CreateApplicationParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		return textResult("jobId, firstName, lastName and email are required"), nil, nil
	}

	var missing []string
	for _, field := range []struct {
		name string
		val  string
	}{
		{"jobId", params.JobID},
		{"firstName", params.FirstName},
		{"lastName", params.LastName},
		{"email", params.Email},
	} {
		if field.val == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return textResult("missing required argument(s): " + strings.Join(missing, ", ")), nil, nil
	}

	if _, err := mail.ParseAddress(params.Email); err != nil {
		return textResult(fmt.Sprintf("invalid email %q", params.Email)), nil, nil
	}

	if _, err := reg.api.GetJob(ctx, params.JobID); err != nil {
		var apiErr *pinpoint.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return textResult(fmt.Sprintf("Job with ID %s not found. No application was created.", params.JobID)), nil, nil
		}
		reg.logger.Error("create-application job pre-check failed", "job_id", params.JobID, "err", err)
		return textResult(fmt.Sprintf("Failed to verify job %s: %v", params.JobID, err)), nil, nil
	}

	raw, err := reg.api.CreateApplication(ctx, pinpoint.NewApplication{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		JobID:     params.JobID,
	})
	if err != nil {
		reg.logger.Error("create-application failed", "job_id", params.JobID, "err", err)
		return textResult(fmt.Sprintf("Failed to create application: %v", err)), nil, nil
	}

	return jsonResult(raw), nil, nil
}

func (reg *registry) getApplications(ctx context.Context, params *GetApplicationsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &GetApplicationsParams{}
	}

	if err := validateEnumList("jobVisibility", params.JobVisibility, visibilityClasses); err != nil {
		return textResult(err.Error()), nil, nil
	}

	page, perPage, err := normalizePagination(params.Page, params.PerPage)
	if err != nil {
		return textResult(err.Error()), nil, nil
	}

	raw, err := reg.api.ListApplications(ctx, pinpoint.ApplicationFilters{
		JobID:         params.JobID,
		JobVisibility: params.JobVisibility,
		StageID:       params.StageID,
		Page:          page,
		PerPage:       perPage,
	})
	if err != nil {
		reg.logger.Error("get-applications failed", "err", err)
		return textResult(fmt.Sprintf("Failed to fetch applications: %v", err)), nil, nil
	}

	return jsonResult(raw), nil, nil
}

func (reg *registry) getApplicationByID(ctx context.Context, params *GetApplicationByIDParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.ID == "" {
		return textResult("id is required"), nil, nil
	}

	raw, err := reg.api.GetApplication(ctx, params.ID)
	if err != nil {
		var apiErr *pinpoint.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return textResult(fmt.Sprintf("Application with ID %s not found", params.ID)), nil, nil
		}
		reg.logger.Error("get-application-by-id failed", "id", params.ID, "err", err)
		return textResult(fmt.Sprintf("Failed to fetch application %s: %v", params.ID, err)), nil, nil
	}

	return jsonResult(raw), nil, nil
}
