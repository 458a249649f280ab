package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer closeApp()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-mode", "test"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSeedThenResolve(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "planctl.db"))
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CATALOG_SEED_FILE", "")

	out, err := runCLI(t, "seed", "--file", "../../../internal/catalog/testdata/catalog.yaml")
	if err != nil {
		t.Fatalf("seed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Seeded 2 institutions, 9 courses") {
		t.Fatalf("unexpected seed output: %q", out)
	}

	out, err = runCLI(t, "resolve", "--institution", "uh_manoa", "--program", "Political Science")
	if err != nil {
		t.Fatalf("resolve: %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != "POLS" {
		t.Fatalf("unexpected prefixes: %q", out)
	}
}

func TestGenerateRequiresFlags(t *testing.T) {
	if _, err := runCLI(t, "generate", "--institution", "uh_manoa"); err == nil {
		t.Fatalf("expected missing flag error")
	}
}
