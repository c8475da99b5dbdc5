package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hirewire/pinpoint-mcp/pkg/pinpoint"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

var (
	jobStatuses     = []string{"open", "closed", "filled", "on_hold", "draft"}
	employmentTypes = []string{"full_time", "part_time", "contract", "temporary", "internship"}
	workplaceTypes  = []string{"onsite", "remote", "hybrid"}
)

// GetJobsParams defines the arguments for the get-jobs tool
type GetJobsParams struct {
	Search         string `json:"search,omitempty" jsonschema:"Free-text search over job titles and descriptions"`
	Status         string `json:"status,omitempty" jsonschema:"Job status: open, closed, filled, on_hold or draft"`
	EmploymentType string `json:"employment_type,omitempty" jsonschema:"Employment type: full_time, part_time, contract, temporary or internship"`
	WorkplaceType  string `json:"workplace_type,omitempty" jsonschema:"Workplace type: onsite, remote or hybrid"`
	Page           int    `json:"page,omitempty" jsonschema:"Page number, defaults to 1"`
	PerPage        int    `json:"per_page,omitempty" jsonschema:"Results per page, defaults to 20"`
}

// GetJobParams defines the arguments for the get-job tool
type GetJobParams struct {
	ID string `json:"id" jsonschema:"Opaque job identifier"`
}

// WithGetJobs registers the get-jobs tool
func WithGetJobs() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get-jobs",
			Description: "List jobs in the ATS with optional search, status, employment type, workplace type and pagination filters",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetJobsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.getJobs(ctx, params)
		})
	}
}

// WithGetJob registers the get-job tool
func WithGetJob() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "get-job",
			Description: "Fetch a single job by its ID",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetJobParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			return reg.getJob(ctx, params)
		})
	}
}

func (reg *registry) getJobs(ctx context.Context, params *GetJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &GetJobsParams{}
	}

	if err := validateEnum("status", params.Status, jobStatuses); err != nil {
		return textResult(err.Error()), nil, nil
	}
	if err := validateEnum("employment_type", params.EmploymentType, employmentTypes); err != nil {
		return textResult(err.Error()), nil, nil
	}
	if err := validateEnum("workplace_type", params.WorkplaceType, workplaceTypes); err != nil {
		return textResult(err.Error()), nil, nil
	}

	page, perPage, err := normalizePagination(params.Page, params.PerPage)
	if err != nil {
		return textResult(err.Error()), nil, nil
	}

	raw, err := reg.api.ListJobs(ctx, pinpoint.JobFilters{
		Search:         params.Search,
		Status:         params.Status,
		EmploymentType: params.EmploymentType,
		WorkplaceType:  params.WorkplaceType,
		Page:           page,
		PerPage:        perPage,
	})
	if err != nil {
		reg.logger.Error("get-jobs failed", "err", err)
		return textResult(fmt.Sprintf("Failed to fetch jobs: %v", err)), nil, nil
	}

	return jsonResult(raw), nil, nil
}

func (reg *registry) getJob(ctx context.Context, params *GetJobParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.ID == "" {
		return textResult("id is required"), nil, nil
	}

	raw, err := reg.api.GetJob(ctx, params.ID)
	if err != nil {
		var apiErr *pinpoint.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			return textResult(fmt.Sprintf("Job with ID %s not found", params.ID)), nil, nil
		}
		reg.logger.Error("get-job failed", "id", params.ID, "err", err)
		return textResult(fmt.Sprintf("Failed to fetch job %s: %v", params.ID, err)), nil, nil
	}

	return jsonResult(raw), nil, nil
}
