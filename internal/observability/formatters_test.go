package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/gap-analyzer/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(&types.MatchResult{
		MatchPercentage:   66.67,
		JobReadinessScore: 76.7,
		MatchedSkills:     []string{"docker", "python"},
		MissingSkills:     []string{"kubernetes"},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "76.7 / 100")
	assert.Contains(t, out, "• docker")
	assert.Contains(t, out, "• kubernetes")
}

func TestPrintMatchResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExtractedSkills_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	many := []string{"python", "go", "rust", "java", "ruby", "scala", "kotlin"}
	p.PrintExtractedSkills(many, []string{"python"})

	out := buf.String()
	assert.Contains(t, out, "Resume skills (7)")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.LearningVelocity{
		TotalEstimatedHours: 55,
		WeeksToReadiness:    5.5,
		Roadmap: []types.RoadmapPhase{
			{
				Phase:          types.PhaseImmediateGaps,
				Skills:         []string{"docker"},
				EstimatedHours: 15,
				Timeline:       "Week 1-2",
				Details: []types.SkillDetail{
					{Skill: "docker", Category: "tool", Hours: 15},
				},
			},
			{
				Phase:          types.PhaseAdvancedMastery,
				Skills:         []string{"rust"},
				EstimatedHours: 40,
				Timeline:       "Week 3-6",
				Details: []types.SkillDetail{
					{Skill: "rust", Category: "language", Hours: 40},
				},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "LEARNING ROADMAP")
	assert.Contains(t, out, "55 hours")
	assert.Contains(t, out, "Immediate Gaps")
	assert.Contains(t, out, "Advanced Mastery")
	assert.Contains(t, out, "docker (tool, 15h)")
}

func TestPrintRoadmap_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(nil)
	p.PrintRoadmap(&types.LearningVelocity{})
	assert.Empty(t, buf.String())
}

func TestPrintBoxLinesFitWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line: %q", line)
	}
}
