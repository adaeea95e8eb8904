// Package analyzer orchestrates the gap-analysis pipeline: skill extraction
// for both documents, match scoring, and roadmap building. It is shared by
// the CLI and the HTTP server.
package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/gap-analyzer/internal/extraction"
	"github.com/jonathan/gap-analyzer/internal/matching"
	"github.com/jonathan/gap-analyzer/internal/recognizer"
	"github.com/jonathan/gap-analyzer/internal/taxonomy"
	"github.com/jonathan/gap-analyzer/internal/types"
	"github.com/jonathan/gap-analyzer/internal/velocity"
)

// Analyzer runs full gap analyses. It holds only read-only tables and is
// safe for concurrent use across requests.
type Analyzer struct {
	extractor *extraction.Extractor
	builder   *velocity.Builder
}

// Result is a completed analysis together with the extracted skill sets,
// so callers can apply their own policy to empty extractions.
type Result struct {
	ResumeSkills []string
	JDSkills     []string
	Analysis     *types.GapAnalysis
}

// New creates an Analyzer over the given taxonomy. A nil recognizer
// disables noun-phrase enrichment.
func New(table *taxonomy.Table, rec recognizer.Recognizer) *Analyzer {
	if table == nil {
		table = taxonomy.Default()
	}
	return &Analyzer{
		extractor: extraction.New(table, rec),
		builder:   velocity.NewBuilder(table),
	}
}

// Extractor exposes the underlying extraction engine (for CLI subcommands
// that only need extraction).
func (a *Analyzer) Extractor() *extraction.Extractor {
	return a.extractor
}

// Analyze extracts skills from both documents, scores the overlap, and
// builds the learning roadmap. Resume and JD extraction run concurrently.
// A JD that yields no skills falls back to role-title inference; if that
// also finds nothing, the returned analysis is the all-zero result and
// Result.JDSkills is empty.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jdText string, hoursPerWeek int) (*Result, error) {
	var resumeSkills, jdSkills []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeSkills = a.extractor.ExtractFlat(gctx, resumeText)
		return nil
	})
	g.Go(func() error {
		jdSkills = a.extractor.ExtractFlat(gctx, jdText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A JD that is only a role title ("game developer") extracts nothing;
	// fall back to the role-keyword table.
	if len(jdSkills) == 0 {
		jdSkills = a.extractor.InferFromRoleTitle(jdText)
	}

	match := matching.Score(resumeSkills, jdSkills)
	vel := a.builder.Build(match.MissingSkills, hoursPerWeek)

	return &Result{
		ResumeSkills: resumeSkills,
		JDSkills:     jdSkills,
		Analysis:     types.NewGapAnalysis(match, vel),
	}, nil
}
