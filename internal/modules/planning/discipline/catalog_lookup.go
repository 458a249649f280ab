package discipline

import (
	"context"
	"sort"
)

// MappingSource is the slice of the catalog provider the lookup reads.
type MappingSource interface {
	DisciplineMapping(ctx context.Context, institutionID string) (map[string][]string, bool, error)
	CoursePrefixes(ctx context.Context, institutionID string) ([]string, error)
}

// CatalogLookup reads institution tables from the catalog and falls back to
// static or YAML tables when the catalog holds no mapping.
type CatalogLookup struct {
	src      MappingSource
	fallback Lookup
}

func NewCatalogLookup(src MappingSource, fallback Lookup) *CatalogLookup {
	if fallback == nil {
		fallback = StaticTables()
	}
	return &CatalogLookup{src: src, fallback: fallback}
}

func (l *CatalogLookup) Version() string {
	return "catalog+" + l.fallback.Version()
}

func (l *CatalogLookup) table(ctx context.Context, institutionID string) (Table, bool, error) {
	mapping, ok, err := l.src.DisciplineMapping(ctx, institutionID)
	if err != nil || !ok {
		return nil, false, err
	}
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)
	tbl := make(Table, 0, len(names))
	for _, name := range names {
		tbl = append(tbl, Discipline{Name: name, Prefixes: mapping[name]})
	}
	return tbl, true, nil
}

func (l *CatalogLookup) Prefixes(ctx context.Context, institutionID, keyword string) ([]string, error) {
	tbl, ok, err := l.table(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return l.fallback.Prefixes(ctx, institutionID, keyword)
	}
	return tbl.Match(keyword), nil
}

func (l *CatalogLookup) KnownPrefixes(ctx context.Context, institutionID string) ([]string, error) {
	tbl, ok, err := l.table(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	var known []string
	if ok {
		known = tbl.Known()
	} else if known, err = l.fallback.KnownPrefixes(ctx, institutionID); err != nil {
		return nil, err
	}
	coursePrefixes, err := l.src.CoursePrefixes(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(known)+len(coursePrefixes))
	out := make([]string, 0, len(known)+len(coursePrefixes))
	for _, p := range append(known, coursePrefixes...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
