package discipline

import (
	"context"
	"strings"
)

// Lookup answers discipline→prefix questions for one institution. The
// institution's own table is used when present, else a generic one.
type Lookup interface {
	// Version identifies the table revision for diagnostics.
	Version() string
	// Prefixes returns, in table order, the prefixes of every discipline whose
	// first underscore-separated part equals keyword.
	Prefixes(ctx context.Context, institutionID, keyword string) ([]string, error)
	// KnownPrefixes lists every prefix the institution is known to use.
	KnownPrefixes(ctx context.Context, institutionID string) ([]string, error)
}

// Discipline is one table row, e.g. {"computer_science", ["ICS"]}.
type Discipline struct {
	Name     string   `yaml:"discipline" json:"discipline"`
	Prefixes []string `yaml:"prefixes" json:"prefixes"`
}

// FirstPart is the discipline's first underscore-separated word.
func (d Discipline) FirstPart() string {
	name := strings.ToLower(strings.TrimSpace(d.Name))
	if i := strings.IndexByte(name, '_'); i >= 0 {
		return name[:i]
	}
	return name
}

// Table is an ordered discipline table.
type Table []Discipline

func (t Table) Match(keyword string) []string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}
	var out []string
	for _, d := range t {
		if d.FirstPart() == keyword {
			out = append(out, d.Prefixes...)
		}
	}
	return out
}

func (t Table) Known() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range t {
		for _, p := range d.Prefixes {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// Tables is a versioned set of institution tables plus the generic fallback.
// It implements Lookup without touching external state.
type Tables struct {
	Rev          string
	Generic      Table
	Institutions map[string]Table
}

func (t *Tables) Version() string {
	if t == nil {
		return ""
	}
	return t.Rev
}

func (t *Tables) tableFor(institutionID string) Table {
	if t == nil {
		return nil
	}
	if tbl, ok := t.Institutions[strings.TrimSpace(institutionID)]; ok && len(tbl) > 0 {
		return tbl
	}
	return t.Generic
}

func (t *Tables) Prefixes(_ context.Context, institutionID, keyword string) ([]string, error) {
	return t.tableFor(institutionID).Match(keyword), nil
}

func (t *Tables) KnownPrefixes(_ context.Context, institutionID string) ([]string, error) {
	return t.tableFor(institutionID).Known(), nil
}
