package discipline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type yamlTablesDoc struct {
	Version      string                  `yaml:"version"`
	Generic      []Discipline            `yaml:"generic"`
	Institutions map[string][]Discipline `yaml:"institutions"`
}

// LoadYAMLTables reads a versioned table file, e.g.
//
//	version: "2024.1"
//	generic:
//	  - {discipline: mathematics, prefixes: [MATH]}
//	institutions:
//	  uh_manoa:
//	    - {discipline: computer_science, prefixes: [ICS]}
func LoadYAMLTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read discipline tables: %w", err)
	}
	return ParseYAMLTables(data)
}

func ParseYAMLTables(data []byte) (*Tables, error) {
	var doc yamlTablesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse discipline tables: %w", err)
	}
	if strings.TrimSpace(doc.Version) == "" {
		return nil, errors.New("discipline tables: version is required")
	}
	if len(doc.Generic) == 0 {
		return nil, errors.New("discipline tables: generic table is required")
	}
	out := &Tables{
		Rev:          strings.TrimSpace(doc.Version),
		Generic:      cleanTable(doc.Generic),
		Institutions: make(map[string]Table, len(doc.Institutions)),
	}
	for inst, rows := range doc.Institutions {
		inst = strings.TrimSpace(inst)
		if inst == "" {
			continue
		}
		out.Institutions[inst] = cleanTable(rows)
	}
	return out, nil
}

func cleanTable(rows []Discipline) Table {
	out := make(Table, 0, len(rows))
	for _, r := range rows {
		name := strings.ToLower(strings.TrimSpace(r.Name))
		if name == "" {
			continue
		}
		prefixes := make([]string, 0, len(r.Prefixes))
		for _, p := range r.Prefixes {
			if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
				prefixes = append(prefixes, p)
			}
		}
		out = append(out, Discipline{Name: name, Prefixes: prefixes})
	}
	return out
}
