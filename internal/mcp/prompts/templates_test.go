package prompts

import (
	"strings"
	"testing"
)

func TestApplicationScreeningDefaultCriteria(t *testing.T) {
	text := applicationScreeningText("Staff Engineer", "")
	if !strings.Contains(text, defaultScreeningCriteria) {
		t.Errorf("text %q does not fall back to the default criteria", text)
	}
	if !strings.Contains(text, `"Staff Engineer"`) {
		t.Errorf("text %q does not interpolate the job title", text)
	}

	custom := applicationScreeningText("Staff Engineer", "5+ years of Go")
	if !strings.Contains(custom, "5+ years of Go") {
		t.Errorf("text %q does not use the caller's criteria", custom)
	}
	if strings.Contains(custom, defaultScreeningCriteria) {
		t.Error("default criteria leaked into a custom screening prompt")
	}
}

func TestJobPerformanceAnalysisDefaultsToMonth(t *testing.T) {
	text, err := jobPerformanceAnalysisText("", "")
	if err != nil {
		t.Fatalf("jobPerformanceAnalysisText: %v", err)
	}
	if !strings.Contains(text, "last month") {
		t.Errorf("text %q does not default to the month timeframe", text)
	}
}

func TestJobPerformanceAnalysisTimeframes(t *testing.T) {
	cases := []struct {
		timeframe string
		want      string
	}{
		{"week", "last week"},
		{"quarter", "last quarter"},
		{"all", "all time"},
	}

	for _, tc := range cases {
		text, err := jobPerformanceAnalysisText(tc.timeframe, "")
		if err != nil {
			t.Fatalf("timeframe %q: %v", tc.timeframe, err)
		}
		if !strings.Contains(text, tc.want) {
			t.Errorf("timeframe %q: text %q does not mention %q", tc.timeframe, text, tc.want)
		}
	}

	if _, err := jobPerformanceAnalysisText("decade", ""); err == nil {
		t.Error("invalid timeframe accepted")
	}
}

func TestJobPerformanceAnalysisJobType(t *testing.T) {
	text, err := jobPerformanceAnalysisText("month", "engineering")
	if err != nil {
		t.Fatalf("jobPerformanceAnalysisText: %v", err)
	}
	if !strings.Contains(text, "engineering roles") {
		t.Errorf("text %q does not restrict to the job type", text)
	}
}

func TestCandidatePipelineReportScoping(t *testing.T) {
	all := candidatePipelineReportText("", "")
	if !strings.Contains(all, "across all jobs") {
		t.Errorf("unscoped text = %q", all)
	}

	scoped := candidatePipelineReportText("42", "stage-3")
	if !strings.Contains(scoped, "job 42") || !strings.Contains(scoped, "stage stage-3") {
		t.Errorf("scoped text = %q", scoped)
	}
}

func TestQuickApplicationSubmitInterpolation(t *testing.T) {
	text := quickApplicationSubmitText("Data Analyst", "Ada Lovelace", "ada@example.com")
	for _, want := range []string{`"Data Analyst"`, "Ada Lovelace", "ada@example.com", "create-application"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q does not contain %q", text, want)
		}
	}
}

func TestRecruitmentInsightsFocus(t *testing.T) {
	all, err := recruitmentInsightsText("")
	if err != nil {
		t.Fatalf("recruitmentInsightsText: %v", err)
	}
	if !strings.Contains(all, "diversity, efficiency, quality, cost and timeline") {
		t.Errorf("unfocused text = %q", all)
	}

	focused, err := recruitmentInsightsText("cost")
	if err != nil {
		t.Fatalf("recruitmentInsightsText: %v", err)
	}
	if !strings.Contains(focused, "focus on cost") {
		t.Errorf("focused text = %q", focused)
	}

	if _, err := recruitmentInsightsText("vibes"); err == nil {
		t.Error("invalid focus accepted")
	}
}

func TestRecruitmentSummaryMentionsTools(t *testing.T) {
	text := recruitmentSummaryText("Backend Engineer")
	for _, want := range []string{`"Backend Engineer"`, "get-jobs", "get-applications"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q does not contain %q", text, want)
		}
	}
}
