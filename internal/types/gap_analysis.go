// Package types provides type definitions for structured data used throughout the gap-analyzer system.
package types

// MatchResult compares a resume skill set against a job-description skill set.
type MatchResult struct {
	MatchPercentage   float64  `json:"match_percentage"`
	JobReadinessScore float64  `json:"job_readiness_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
}

// Resource is a curated learning resource for a skill.
type Resource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"` // docs, course, video, article, project
	Duration string `json:"duration"`
}

// Resource type values.
const (
	ResourceDocs    = "docs"
	ResourceCourse  = "course"
	ResourceVideo   = "video"
	ResourceArticle = "article"
	ResourceProject = "project"
)

// SkillDetail is a per-skill entry inside a roadmap phase.
type SkillDetail struct {
	Skill     string     `json:"skill"`
	Category  string     `json:"category"`
	Hours     int        `json:"hours"`
	Resources []Resource `json:"resources"`
}

// RoadmapPhase groups missing skills sharing a learning-effort tier.
type RoadmapPhase struct {
	Phase          string        `json:"phase"`
	Skills         []string      `json:"skills"`
	EstimatedHours int           `json:"estimated_hours"`
	Timeline       string        `json:"timeline"`
	Details        []SkillDetail `json:"details,omitempty"`
}

// Roadmap phase names, in fixed order.
const (
	PhaseImmediateGaps   = "Immediate Gaps"
	PhaseAdvancedMastery = "Advanced Mastery"
)

// LearningVelocity is the time-boxed study plan for a missing-skill set.
type LearningVelocity struct {
	TotalEstimatedHours int            `json:"total_estimated_hours"`
	WeeksToReadiness    float64        `json:"weeks_to_readiness"`
	Roadmap             []RoadmapPhase `json:"roadmap"`
}

// GapAnalysis is the full analysis result returned to callers and persisted
// for history. It serializes to a plain nested mapping with no cycles.
type GapAnalysis struct {
	MatchPercentage   float64          `json:"match_percentage"`
	JobReadinessScore float64          `json:"job_readiness_score"`
	MatchedSkills     []string         `json:"matched_skills"`
	MissingSkills     []string         `json:"missing_skills"`
	LearningVelocity  LearningVelocity `json:"learning_velocity"`
}

// NewGapAnalysis composes a GapAnalysis from its two computed halves.
func NewGapAnalysis(match MatchResult, velocity LearningVelocity) *GapAnalysis {
	return &GapAnalysis{
		MatchPercentage:   match.MatchPercentage,
		JobReadinessScore: match.JobReadinessScore,
		MatchedSkills:     match.MatchedSkills,
		MissingSkills:     match.MissingSkills,
		LearningVelocity:  velocity,
	}
}
