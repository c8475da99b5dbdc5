package prompts

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// WithRecruitmentSummary registers the recruitment-summary prompt
func WithRecruitmentSummary() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "recruitment-summary",
			Description: "Summarize recruitment status for a position",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "jobTitle", Description: "Title of the job to summarize", Required: true},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			jobTitle, err := requiredArg(req, "jobTitle")
			if err != nil {
				return nil, err
			}
			return userMessage("Recruitment summary request", recruitmentSummaryText(jobTitle)), nil
		})
	}
}

// WithApplicationScreening registers the application-screening prompt
func WithApplicationScreening() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "application-screening",
			Description: "Screen applications for a position against criteria",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "jobTitle", Description: "Title of the job whose applications to screen", Required: true},
				{Name: "criteria", Description: "Screening criteria, defaults to standard qualifications and experience"},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			jobTitle, err := requiredArg(req, "jobTitle")
			if err != nil {
				return nil, err
			}
			criteria := req.Params.Arguments["criteria"]
			return userMessage("Application screening request", applicationScreeningText(jobTitle, criteria)), nil
		})
	}
}

// WithJobPerformanceAnalysis registers the job-performance-analysis prompt
func WithJobPerformanceAnalysis() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "job-performance-analysis",
			Description: "Analyze job posting performance over a timeframe",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "timeframe", Description: "week, month, quarter or all; defaults to month"},
				{Name: "jobType", Description: "Optional job type to restrict the analysis to"},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			text, err := jobPerformanceAnalysisText(req.Params.Arguments["timeframe"], req.Params.Arguments["jobType"])
			if err != nil {
				return nil, err
			}
			return userMessage("Job performance analysis request", text), nil
		})
	}
}

// WithCandidatePipelineReport registers the candidate-pipeline-report prompt
func WithCandidatePipelineReport() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "candidate-pipeline-report",
			Description: "Report on the candidate pipeline, optionally scoped to a job or stage",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "jobId", Description: "Optional job to scope the report to"},
				{Name: "stageId", Description: "Optional pipeline stage to scope the report to"},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			text := candidatePipelineReportText(req.Params.Arguments["jobId"], req.Params.Arguments["stageId"])
			return userMessage("Candidate pipeline report request", text), nil
		})
	}
}

// WithQuickApplicationSubmit registers the quick-application-submit prompt
func WithQuickApplicationSubmit() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "quick-application-submit",
			Description: "Submit an application for a candidate by job title",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "jobTitle", Description: "Title of the job to apply for", Required: true},
				{Name: "candidateName", Description: "Candidate full name", Required: true},
				{Name: "candidateEmail", Description: "Candidate email address", Required: true},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			jobTitle, err := requiredArg(req, "jobTitle")
			if err != nil {
				return nil, err
			}
			candidateName, err := requiredArg(req, "candidateName")
			if err != nil {
				return nil, err
			}
			candidateEmail, err := requiredArg(req, "candidateEmail")
			if err != nil {
				return nil, err
			}
			text := quickApplicationSubmitText(jobTitle, candidateName, candidateEmail)
			return userMessage("Quick application submission request", text), nil
		})
	}
}

// WithRecruitmentInsights registers the recruitment-insights prompt
func WithRecruitmentInsights() Option {
	return func(reg *registry) {
		reg.server.AddPrompt(&sdkmcp.Prompt{
			Name:        "recruitment-insights",
			Description: "Surface recruitment trends and recommendations",
			Arguments: []*sdkmcp.PromptArgument{
				{Name: "focus", Description: "diversity, efficiency, quality, cost or timeline; defaults to all areas"},
			},
		}, func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
			_ = ctx
			text, err := recruitmentInsightsText(req.Params.Arguments["focus"])
			if err != nil {
				return nil, err
			}
			return userMessage("Recruitment insights request", text), nil
		})
	}
}

func requiredArg(req *sdkmcp.GetPromptRequest, name string) (string, error) {
	val := req.Params.Arguments[name]
	if val == "" {
		return "", fmt.Errorf("prompt argument %q is required", name)
	}
	return val, nil
}
