package velocity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/gap-analyzer/internal/types"
)

func TestBuild_EmptyMissingSkills(t *testing.T) {
	b := NewBuilder(nil)
	v := b.Build(nil, 10)

	assert.Equal(t, 0, v.TotalEstimatedHours)
	assert.Equal(t, 0.0, v.WeeksToReadiness)
	assert.NotNil(t, v.Roadmap)
	assert.Empty(t, v.Roadmap)
}

func TestBuild_ReferenceScenario(t *testing.T) {
	// kubernetes (tool, 10h) and aws (cloud, 20h) both land in Phase 1.
	b := NewBuilder(nil)
	v := b.Build([]string{"aws", "kubernetes"}, 10)

	assert.Equal(t, 30, v.TotalEstimatedHours)
	assert.Equal(t, 3.0, v.WeeksToReadiness)

	require.Len(t, v.Roadmap, 1)
	phase := v.Roadmap[0]
	assert.Equal(t, types.PhaseImmediateGaps, phase.Phase)
	assert.Equal(t, []string{"aws", "kubernetes"}, phase.Skills)
	assert.Equal(t, 30, phase.EstimatedHours)
	assert.Equal(t, "Week 1-3", phase.Timeline)
}

func TestBuild_PhasePartition(t *testing.T) {
	// python (language, 40h) and react (framework, 30h) go to Phase 2;
	// docker (tool, 10h) and postgresql (database, 15h) to Phase 1.
	b := NewBuilder(nil)
	missing := []string{"python", "docker", "react", "postgresql"}
	v := b.Build(missing, 10)

	require.Len(t, v.Roadmap, 2)
	p1, p2 := v.Roadmap[0], v.Roadmap[1]

	assert.Equal(t, types.PhaseImmediateGaps, p1.Phase)
	assert.Equal(t, []string{"docker", "postgresql"}, p1.Skills, "input order preserved within phase")
	assert.Equal(t, 25, p1.EstimatedHours)

	assert.Equal(t, types.PhaseAdvancedMastery, p2.Phase)
	assert.Equal(t, []string{"python", "react"}, p2.Skills)
	assert.Equal(t, 70, p2.EstimatedHours)

	// Every skill appears in exactly one phase; hours add up.
	assert.Equal(t, len(missing), len(p1.Skills)+len(p2.Skills))
	assert.Equal(t, v.TotalEstimatedHours, p1.EstimatedHours+p2.EstimatedHours)
}

func TestBuild_Phase2Timeline(t *testing.T) {
	// Phase 1: docker+postgresql = 25h -> round(25/10)+1 = 4, so Phase 2
	// starts at week 4 (past the week-3 floor). Total 95h -> end = round(9.5) = 10.
	b := NewBuilder(nil)
	v := b.Build([]string{"python", "docker", "react", "postgresql"}, 10)

	require.Len(t, v.Roadmap, 2)
	assert.Equal(t, "Week 1-3", v.Roadmap[0].Timeline) // round(2.5) rounds half away from zero
	assert.Equal(t, "Week 4-10", v.Roadmap[1].Timeline)
}

func TestBuild_AdvancedNeverStartsBeforeWeek3(t *testing.T) {
	// No Phase 1 work at all: start = max(0+1, 3) = 3.
	b := NewBuilder(nil)
	v := b.Build([]string{"python"}, 40)

	require.Len(t, v.Roadmap, 1)
	phase := v.Roadmap[0]
	assert.Equal(t, types.PhaseAdvancedMastery, phase.Phase)
	assert.Equal(t, "Week 3-4", phase.Timeline, "end is at least start+1")
}

func TestBuild_Phase1SingleWeek(t *testing.T) {
	b := NewBuilder(nil)
	v := b.Build([]string{"docker"}, 10)

	require.Len(t, v.Roadmap, 1)
	assert.Equal(t, "Week 1", v.Roadmap[0].Timeline)
}

func TestBuild_ClampsHoursPerWeek(t *testing.T) {
	b := NewBuilder(nil)
	for _, hpw := range []int{0, -5} {
		v := b.Build([]string{"docker"}, hpw)
		assert.Equal(t, 10.0, v.WeeksToReadiness, "hpw=%d clamps to 1", hpw)
	}
}

func TestBuild_DetailsCarryResources(t *testing.T) {
	b := NewBuilder(nil)
	v := b.Build([]string{"kubernetes", "some-obscure-skill"}, 10)

	require.Len(t, v.Roadmap, 1)
	details := v.Roadmap[0].Details
	require.Len(t, details, 2)

	assert.Equal(t, "kubernetes", details[0].Skill)
	assert.Equal(t, "tool", details[0].Category)
	assert.Equal(t, 10, details[0].Hours)
	assert.NotEmpty(t, details[0].Resources)

	// Unknown skills get the generic two-entry fallback.
	require.Len(t, details[1].Resources, 2)
	assert.Equal(t, types.ResourceArticle, details[1].Resources[0].Type)
	assert.Equal(t, types.ResourceVideo, details[1].Resources[1].Type)
	assert.Contains(t, details[1].Resources[0].URL, "some-obscure-skill")
}

func TestCatalogLookup_NeverFails(t *testing.T) {
	c := Catalog{}
	resources := c.Lookup("anything at all")
	require.Len(t, resources, 2)
	assert.Contains(t, resources[0].URL, "anything+at+all")
}
