// Package recognizer provides the optional noun-phrase recognizer used to
// enrich skill extraction. The extraction engine is correct without it; a
// recognizer only improves recall by proposing candidate phrases that are
// still checked against the taxonomy.
package recognizer

import "context"

// Recognizer proposes candidate skill phrases from free-form text.
// Implementations must be safe for concurrent use.
type Recognizer interface {
	// Candidates returns candidate phrases found in text. Order and casing
	// are unspecified; callers normalize and filter against the taxonomy.
	Candidates(ctx context.Context, text string) ([]string, error)
}

// Noop is a Recognizer that never proposes candidates. It is the default
// when no external recognizer is configured.
type Noop struct{}

// NewNoop returns a no-op recognizer.
func NewNoop() *Noop {
	return &Noop{}
}

// Candidates always returns an empty candidate list.
func (*Noop) Candidates(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}
