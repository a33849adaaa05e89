package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswerFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeFile(t *testing.T) {
	path := writeAnswerFile(t, `{
		"q2_concerns": ["running_out_of_money"],
		"q4_retirement_age": 55,
		"q9_investment_style": "a",
		"q10_annual_savings": 3000,
		"q11_account_types": ["roth_accounts"],
		"q12_total_savings": 10000
	}`)

	result, err := analyzeFile(path)
	require.NoError(t, err)

	assert.NotEmpty(t, result.AssessmentID)
	assert.Equal(t, "basic_rf1", result.RedFlags[0].ID)
	assert.Equal(t, 6.0, result.Scores.Pacing.Score)
}

func TestAnalyzeFileMissing(t *testing.T) {
	_, err := analyzeFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestAnalyzeFileBadJSON(t *testing.T) {
	path := writeAnswerFile(t, "{broken")
	_, err := analyzeFile(path)
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	path := writeAnswerFile(t, `{
		"q4_retirement_age": 55,
		"q9_investment_style": "a",
		"q10_annual_savings": 3000,
		"q11_account_types": ["roth_accounts"],
		"q12_total_savings": 10000
	}`)

	result, err := analyzeFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	writeReport(&buf, path, result)
	out := buf.String()

	assert.Contains(t, out, result.AssessmentID)
	assert.Contains(t, out, "basic_rf4")
	assert.Contains(t, out, "Recommended plan: Basic Planning")
	assert.Contains(t, out, "Risk of failure:")
	assert.Contains(t, out, "of 4 projections short")
}

func TestWriteReportNoFlags(t *testing.T) {
	path := writeAnswerFile(t, `{
		"q4_retirement_age": 65,
		"q9_investment_style": "b",
		"q10_annual_savings": 25000,
		"q11_account_types": ["roth_accounts"],
		"q12_total_savings": 1200000
	}`)

	result, err := analyzeFile(path)
	require.NoError(t, err)
	require.Empty(t, result.RedFlags)

	var buf bytes.Buffer
	writeReport(&buf, path, result)
	assert.Contains(t, buf.String(), "No red flags detected.")
}
