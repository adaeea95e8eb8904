// Package extraction converts free-form text into normalized skill sets
// using a taxonomy-driven greedy longest-match scan.
package extraction

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/gap-analyzer/internal/recognizer"
	"github.com/jonathan/gap-analyzer/internal/taxonomy"
)

// recognizerTextCap bounds the text passed to the noun-phrase recognizer
// to keep cost predictable on large documents.
const recognizerTextCap = 50_000

var (
	// Keep alphanumerics, whitespace, and skill-relevant punctuation (c++, c#, .net, ci/cd).
	nonSkillChars = regexp.MustCompile(`[^\w\s.#+\-/]`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// Extractor extracts technical skills from free-form text. It is stateless
// apart from its read-only tables and safe for concurrent use.
type Extractor struct {
	table *taxonomy.Table
	rec   recognizer.Recognizer
	roles map[string][]string
}

// New creates an Extractor over the given taxonomy. A nil Recognizer
// disables enrichment (equivalent to recognizer.NewNoop()).
func New(table *taxonomy.Table, rec recognizer.Recognizer) *Extractor {
	if table == nil {
		table = taxonomy.Default()
	}
	if rec == nil {
		rec = recognizer.NewNoop()
	}
	return &Extractor{
		table: table,
		rec:   rec,
		roles: defaultRoleSkills,
	}
}

// ExtractFlat returns a flat, sorted, de-duplicated list of canonical skill
// names detected in text. Empty or whitespace-only text yields an empty list.
func (e *Extractor) ExtractFlat(ctx context.Context, text string) []string {
	found := e.keywordMatch(text)
	e.enrich(ctx, text, found)

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// Extract returns detected skills grouped by category, each bucket sorted.
func (e *Extractor) Extract(ctx context.Context, text string) map[taxonomy.Category][]string {
	found := e.keywordMatch(text)
	e.enrich(ctx, text, found)

	categorized := make(map[taxonomy.Category][]string)
	for skill := range found {
		cat := e.table.CategoryOf(skill)
		categorized[cat] = append(categorized[cat], skill)
	}
	for cat := range categorized {
		sort.Strings(categorized[cat])
	}
	return categorized
}

// keywordMatch runs the greedy n-gram scan (trigram, then bigram, then
// unigram) over cleaned text. Longer phrases take priority, so a matched
// "spring boot" consumes its positions before the unigram pass can see
// "spring".
func (e *Extractor) keywordMatch(text string) map[string]struct{} {
	clean := nonSkillChars.ReplaceAllString(strings.ToLower(text), " ")
	clean = strings.TrimSpace(multiSpace.ReplaceAllString(clean, " "))

	found := make(map[string]struct{})
	if clean == "" {
		return found
	}

	tokens := strings.Split(clean, " ")
	consumed := make([]bool, len(tokens))

	for _, size := range []int{3, 2, 1} {
	window:
		for i := 0; i+size <= len(tokens); i++ {
			for j := i; j < i+size; j++ {
				if consumed[j] {
					continue window
				}
			}
			norm := e.table.Normalize(strings.Join(tokens[i:i+size], " "))
			if e.table.Known(norm) {
				found[norm] = struct{}{}
				for j := i; j < i+size; j++ {
					consumed[j] = true
				}
			}
		}
	}

	return found
}

// enrich adds recognizer candidates that resolve to canonical skills.
// Recognizer failures are treated as "no extra candidates": enrichment
// affects recall only, never correctness.
func (e *Extractor) enrich(ctx context.Context, text string, found map[string]struct{}) {
	if len(text) > recognizerTextCap {
		text = text[:recognizerTextCap]
	}

	candidates, err := e.rec.Candidates(ctx, text)
	if err != nil {
		return
	}

	for _, candidate := range candidates {
		norm := e.table.Normalize(candidate)
		if e.table.Known(norm) {
			found[norm] = struct{}{}
			continue
		}
		// Fall back to the head (last) word of a multi-word candidate.
		if fields := strings.Fields(norm); len(fields) > 1 {
			head := e.table.Normalize(fields[len(fields)-1])
			if e.table.Known(head) {
				found[head] = struct{}{}
			}
		}
	}
}
