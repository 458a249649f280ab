package discipline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

// MaxPrefixes caps the resolved set.
const MaxPrefixes = 15

// ErrNoPrefixes means no relevant prefix could be identified.
var ErrNoPrefixes = errors.New("no course prefixes matched program")

// PrefixSet keeps discovery order.
type PrefixSet []string

func (s PrefixSet) Contains(prefix string) bool {
	for _, p := range s {
		if p == prefix {
			return true
		}
	}
	return false
}

type Resolver struct {
	log    *logger.Logger
	lookup Lookup
}

func NewResolver(log *logger.Logger, lookup Lookup) *Resolver {
	if lookup == nil {
		lookup = StaticTables()
	}
	return &Resolver{log: log.With("service", "DisciplineResolver"), lookup: lookup}
}

func (r *Resolver) Version() string { return r.lookup.Version() }

// Resolve maps a program title to course prefixes. Keyword matches against
// the discipline table come first, then a direct first-word prefix match.
func (r *Resolver) Resolve(ctx context.Context, institutionID, programTitle string) (PrefixSet, error) {
	out := make(PrefixSet, 0, MaxPrefixes)
	seen := map[string]bool{}
	add := func(prefixes []string) {
		for _, p := range prefixes {
			if len(out) >= MaxPrefixes {
				return
			}
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, tok := range Keywords(programTitle) {
		prefixes, err := r.lookup.Prefixes(ctx, institutionID, tok)
		if err != nil {
			return nil, fmt.Errorf("discipline lookup %q: %w", tok, err)
		}
		add(prefixes)
	}

	if first := firstWord(programTitle); first != "" {
		known, err := r.lookup.KnownPrefixes(ctx, institutionID)
		if err != nil {
			return nil, fmt.Errorf("known prefixes: %w", err)
		}
		add(matchFirstWord(first, known))
	}

	if len(out) == 0 {
		r.log.Warn("no prefixes resolved",
			"institution_id", institutionID,
			"program", programTitle,
			"tables_version", r.lookup.Version(),
		)
		return nil, fmt.Errorf("%w: %q at %q", ErrNoPrefixes, programTitle, institutionID)
	}
	r.log.Debug("prefixes resolved",
		"institution_id", institutionID,
		"program", programTitle,
		"prefixes", []string(out),
		"tables_version", r.lookup.Version(),
	)
	return out, nil
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Keywords returns the lowercase words of length > 3, in title order.
func Keywords(programTitle string) []string {
	var out []string
	for _, w := range splitWords(programTitle) {
		if len([]rune(w)) > 3 {
			out = append(out, strings.ToLower(w))
		}
	}
	return out
}

func firstWord(programTitle string) string {
	words := splitWords(programTitle)
	if len(words) == 0 {
		return ""
	}
	return strings.ToUpper(words[0])
}

// matchFirstWord finds prefixes equal to the word or to its first four letters.
func matchFirstWord(word string, known []string) []string {
	short := word
	if r := []rune(word); len(r) > 4 {
		short = string(r[:4])
	}
	var out []string
	for _, p := range known {
		up := strings.ToUpper(p)
		if up == word || up == short {
			out = append(out, p)
		}
	}
	return out
}
