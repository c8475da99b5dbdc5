package prompts

import (
	"fmt"
	"strings"
)

// Prompts are pure template expanders: arguments in, one instruction string
// out. No I/O happens here.

const (
	defaultScreeningCriteria = "standard qualifications and experience"
	defaultTimeframe         = "month"
)

var (
	timeframes     = []string{"week", "month", "quarter", "all"}
	insightFocuses = []string{"diversity", "efficiency", "quality", "cost", "timeline"}
)

func recruitmentSummaryText(jobTitle string) string {
	return fmt.Sprintf(
		"Please provide a recruitment summary for the position %q. "+
			"Use the get-jobs tool to locate the job, then get-applications to review its candidates. "+
			"Summarize how many applications were received, how they are distributed across pipeline stages, "+
			"and call out any candidates that stand out.",
		jobTitle,
	)
}

func applicationScreeningText(jobTitle, criteria string) string {
	if criteria == "" {
		criteria = defaultScreeningCriteria
	}
	return fmt.Sprintf(
		"Please screen the applications for the position %q against the following criteria: %s. "+
			"Use get-jobs to find the job, get-applications to list its candidates, and parse-cv-from-url "+
			"to read any attached CVs. Rank the candidates and flag those that clearly do not meet the criteria.",
		jobTitle, criteria,
	)
}

func jobPerformanceAnalysisText(timeframe, jobType string) (string, error) {
	if timeframe == "" {
		timeframe = defaultTimeframe
	}
	if err := checkOneOf("timeframe", timeframe, timeframes); err != nil {
		return "", err
	}

	scope := "over all time"
	if timeframe != "all" {
		scope = "over the last " + timeframe
	}

	typeClause := ""
	if jobType != "" {
		typeClause = fmt.Sprintf(" Restrict the analysis to %s roles.", jobType)
	}

	return fmt.Sprintf(
		"Please analyze how our job postings performed %s. "+
			"Use get-jobs to list the postings and get-applications to measure applicant volume per job. "+
			"Identify which postings attracted the most candidates and which are underperforming.%s",
		scope, typeClause,
	), nil
}

func candidatePipelineReportText(jobID, stageID string) string {
	scope := "across all jobs"
	if jobID != "" {
		scope = fmt.Sprintf("for job %s", jobID)
	}

	stageClause := ""
	if stageID != "" {
		stageClause = fmt.Sprintf(", limited to pipeline stage %s", stageID)
	}

	return fmt.Sprintf(
		"Please produce a candidate pipeline report %s%s. "+
			"Use get-applications to gather the candidates and group them by pipeline stage, "+
			"noting how long candidates have been waiting and where the pipeline is congested.",
		scope, stageClause,
	)
}

func quickApplicationSubmitText(jobTitle, candidateName, candidateEmail string) string {
	return fmt.Sprintf(
		"Please submit an application for the position %q on behalf of %s (%s). "+
			"Use get-jobs to find the job by title and confirm it is open, then call create-application "+
			"with the candidate's name split into first and last name. Report the new application ID when done.",
		jobTitle, candidateName, candidateEmail,
	)
}

func recruitmentInsightsText(focus string) (string, error) {
	if err := checkOneOf("focus", focus, insightFocuses); err != nil {
		return "", err
	}

	area := "across diversity, efficiency, quality, cost and timeline"
	if focus != "" {
		area = "with a focus on " + focus
	}

	return fmt.Sprintf(
		"Please review our recruitment data %s. "+
			"Use get-jobs and get-applications to gather the underlying numbers, "+
			"then highlight trends, risks and concrete recommendations.",
		area,
	), nil
}

func checkOneOf(field, val string, allowed []string) error {
	if val == "" {
		return nil
	}
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", field, val, strings.Join(allowed, ", "))
}
