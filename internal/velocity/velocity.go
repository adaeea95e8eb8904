// Package velocity converts a missing-skill set into a phased, hour-budgeted
// learning roadmap.
package velocity

import (
	"fmt"
	"math"

	"github.com/jonathan/gap-analyzer/internal/taxonomy"
	"github.com/jonathan/gap-analyzer/internal/types"
)

// phase1Threshold splits skills into quick wins (Phase 1) and deeper
// investments (Phase 2) by their Hours-To-Learn estimate.
const phase1Threshold = 20

// advancedStartFloor is the earliest week advanced work may begin.
const advancedStartFloor = 3

// Builder builds learning-velocity roadmaps against a taxonomy and a
// resource catalog. Safe for concurrent use.
type Builder struct {
	table   *taxonomy.Table
	catalog Catalog
}

// NewBuilder creates a Builder using the built-in resource catalog.
// A nil table falls back to the default taxonomy.
func NewBuilder(table *taxonomy.Table) *Builder {
	if table == nil {
		table = taxonomy.Default()
	}
	return &Builder{table: table, catalog: builtinCatalog}
}

// taggedSkill carries a missing skill with its category and HTL estimate.
type taggedSkill struct {
	name     string
	category taxonomy.Category
	hours    int
}

// Build assigns Hours-To-Learn to each missing skill and organizes them into
// up to two phases. hoursPerWeek is clamped to a minimum of 1. Skill order
// within each phase follows the input order. An empty missing set yields a
// zero-value velocity with an empty roadmap.
func (b *Builder) Build(missingSkills []string, hoursPerWeek int) types.LearningVelocity {
	if len(missingSkills) == 0 {
		return types.LearningVelocity{Roadmap: []types.RoadmapPhase{}}
	}

	if hoursPerWeek < 1 {
		hoursPerWeek = 1
	}
	hpw := float64(hoursPerWeek)

	var (
		phase1, phase2 []taggedSkill
		totalHours     int
	)
	for _, skill := range missingSkills {
		cat := b.table.CategoryOf(skill)
		tagged := taggedSkill{name: skill, category: cat, hours: taxonomy.HoursToLearn(cat)}
		totalHours += tagged.hours
		if tagged.hours <= phase1Threshold {
			phase1 = append(phase1, tagged)
		} else {
			phase2 = append(phase2, tagged)
		}
	}

	roadmap := make([]types.RoadmapPhase, 0, 2)

	phase1Hours := sumHours(phase1)
	if len(phase1) > 0 {
		roadmap = append(roadmap, types.RoadmapPhase{
			Phase:          types.PhaseImmediateGaps,
			Skills:         names(phase1),
			EstimatedHours: phase1Hours,
			Timeline:       phase1Timeline(phase1Hours, hpw),
			Details:        b.details(phase1),
		})
	}

	if len(phase2) > 0 {
		start := int(math.Round(float64(phase1Hours)/hpw)) + 1
		if start < advancedStartFloor {
			start = advancedStartFloor
		}
		end := int(math.Round(float64(totalHours) / hpw))
		if end < start+1 {
			end = start + 1
		}
		roadmap = append(roadmap, types.RoadmapPhase{
			Phase:          types.PhaseAdvancedMastery,
			Skills:         names(phase2),
			EstimatedHours: sumHours(phase2),
			Timeline:       fmt.Sprintf("Week %d-%d", start, end),
			Details:        b.details(phase2),
		})
	}

	return types.LearningVelocity{
		TotalEstimatedHours: totalHours,
		WeeksToReadiness:    round1(float64(totalHours) / hpw),
		Roadmap:             roadmap,
	}
}

// phase1Timeline labels the immediate-gaps phase: a single week when the
// work fits the weekly budget, otherwise a week range from week 1.
func phase1Timeline(phaseHours int, hpw float64) string {
	if float64(phaseHours) <= hpw {
		return "Week 1"
	}
	weeks := int(math.Round(float64(phaseHours) / hpw))
	if weeks < 1 {
		weeks = 1
	}
	return fmt.Sprintf("Week 1-%d", weeks)
}

// details builds the per-skill entries, each with curated resources.
func (b *Builder) details(skills []taggedSkill) []types.SkillDetail {
	details := make([]types.SkillDetail, 0, len(skills))
	for _, s := range skills {
		details = append(details, types.SkillDetail{
			Skill:     s.name,
			Category:  string(s.category),
			Hours:     s.hours,
			Resources: b.catalog.Lookup(s.name),
		})
	}
	return details
}

func sumHours(skills []taggedSkill) int {
	total := 0
	for _, s := range skills {
		total += s.hours
	}
	return total
}

func names(skills []taggedSkill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.name)
	}
	return out
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
