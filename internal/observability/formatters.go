// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/gap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs the skills found in each document.
func (p *Printer) PrintExtractedSkills(resumeSkills, jdSkills []string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume skills (%d):\n", len(resumeSkills)))
	sb.WriteString(skillList(resumeSkills))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Job description skills (%d):\n", len(jdSkills)))
	sb.WriteString(skillList(jdSkills))

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a human-readable summary of the match scoring.
func (p *Printer) PrintMatchResult(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match:      %.1f%%\n", match.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Readiness:  %.1f / 100\n", match.JobReadinessScore))
	sb.WriteString("\n")

	if len(match.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(match.MatchedSkills)))
		sb.WriteString(skillList(match.MatchedSkills))
	}
	if len(match.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(match.MissingSkills)))
		sb.WriteString(skillList(match.MissingSkills))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the learning roadmap phases with timelines.
func (p *Printer) PrintRoadmap(velocity *types.LearningVelocity) {
	if velocity == nil || len(velocity.Roadmap) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total effort: %d hours (~%.1f weeks)\n", velocity.TotalEstimatedHours, velocity.WeeksToReadiness))

	for _, phase := range velocity.Roadmap {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s  [%s]  %dh\n", phase.Phase, phase.Timeline, phase.EstimatedHours))

		count := min(len(phase.Details), maxItemsToShow)
		for i := 0; i < count; i++ {
			detail := phase.Details[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %dh)\n", detail.Skill, detail.Category, detail.Hours))
		}
		if len(phase.Details) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(phase.Details)-maxItemsToShow))
		}
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// skillList formats up to maxItemsToShow skills as bullet lines.
func skillList(skills []string) string {
	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
	return sb.String()
}
