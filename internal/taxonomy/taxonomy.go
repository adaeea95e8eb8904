// Package taxonomy provides the static skill taxonomy, alias normalization,
// and the Hours-To-Learn table used by the gap analyzer.
package taxonomy

import (
	"strings"
	"sync"
)

// Category classifies a skill by the kind of technology it is.
type Category string

// Skill categories. Skills not present in the taxonomy default to CategoryTool.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryTool      Category = "tool"
	CategoryDatabase  Category = "database"
	CategoryCloud     Category = "cloud"
)

// Table is an immutable skill taxonomy: canonical skill name -> category,
// plus an alias table mapping surface forms to canonical names.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	categories map[string]Category
	aliases    map[string]string
}

// New builds a Table from a category -> skill-set mapping and an alias map.
// Inputs are copied; the caller may mutate its maps afterwards.
func New(skillsByCategory map[Category][]string, aliases map[string]string) *Table {
	t := &Table{
		categories: make(map[string]Category),
		aliases:    make(map[string]string, len(aliases)),
	}
	for cat, skills := range skillsByCategory {
		for _, skill := range skills {
			t.categories[skill] = cat
		}
	}
	for from, to := range aliases {
		t.aliases[from] = to
	}
	return t
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the built-in taxonomy. The table is constructed once on
// first use and shared for the process lifetime.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New(builtinSkills, builtinAliases)
	})
	return defaultTable
}

// Normalize lowercases and trims a phrase and resolves it through the alias
// table. Phrases without an alias entry are returned unchanged (post-trim).
func (t *Table) Normalize(phrase string) string {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if canonical, ok := t.aliases[s]; ok {
		return canonical
	}
	return s
}

// Known reports whether name (already normalized) is a canonical skill.
func (t *Table) Known(name string) bool {
	_, ok := t.categories[name]
	return ok
}

// CategoryOf returns the category for a skill name, normalizing it first.
// Unknown skills default to CategoryTool; this never fails.
func (t *Table) CategoryOf(skill string) Category {
	if cat, ok := t.categories[t.Normalize(skill)]; ok {
		return cat
	}
	return CategoryTool
}

// Size returns the number of canonical skills in the table.
func (t *Table) Size() int {
	return len(t.categories)
}
