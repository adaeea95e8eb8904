package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gap-analyzer/internal/matching"
	"github.com/jonathan/gap-analyzer/internal/types"
	"github.com/jonathan/gap-analyzer/internal/velocity"
)

func TestSchemaIsValidJSON(t *testing.T) {
	var v interface{}
	require.NoError(t, json.Unmarshal(gapAnalysisSchema, &v))
}

func TestValidateGapAnalysis_PipelineOutput(t *testing.T) {
	// Real pipeline output must always satisfy the schema.
	match := matching.Score(
		[]string{"python", "sql"},
		[]string{"python", "docker", "rust"},
	)
	vel := velocity.NewBuilder(nil).Build(match.MissingSkills, 10)
	analysis := types.NewGapAnalysis(match, vel)

	assert.NoError(t, ValidateGapAnalysisValue(analysis))
}

func TestValidateGapAnalysis_EmptyJD(t *testing.T) {
	match := matching.Score([]string{"python"}, nil)
	vel := velocity.NewBuilder(nil).Build(match.MissingSkills, 10)
	analysis := types.NewGapAnalysis(match, vel)

	assert.NoError(t, ValidateGapAnalysisValue(analysis))
}

func TestValidateGapAnalysis_RejectsMissingFields(t *testing.T) {
	err := ValidateGapAnalysis([]byte(`{"match_percentage": 50.0}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateGapAnalysis_RejectsOutOfRangeScore(t *testing.T) {
	payload := map[string]any{
		"match_percentage":    150.0,
		"job_readiness_score": 55.0,
		"matched_skills":      []string{"python"},
		"missing_skills":      []string{},
		"learning_velocity": map[string]any{
			"total_estimated_hours": 0,
			"weeks_to_readiness":    0.0,
			"roadmap":               []any{},
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.Error(t, ValidateGapAnalysis(data))
}

func TestValidateGapAnalysis_RejectsBadPhaseName(t *testing.T) {
	payload := map[string]any{
		"match_percentage":    0.0,
		"job_readiness_score": 0.0,
		"matched_skills":      []string{},
		"missing_skills":      []string{"docker"},
		"learning_velocity": map[string]any{
			"total_estimated_hours": 10,
			"weeks_to_readiness":    1.0,
			"roadmap": []any{
				map[string]any{
					"phase":           "Phase One",
					"skills":          []string{"docker"},
					"estimated_hours": 10,
					"timeline":        "Week 1",
				},
			},
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.Error(t, ValidateGapAnalysis(data))
}

func TestValidateGapAnalysis_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateGapAnalysis([]byte(`{not json`)))
}
