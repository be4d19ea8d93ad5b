package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const household = `roommates: [Asha, Ravi]
expenses:
  - payer: Asha
    category: Rent
    date: 2024-03-01
    amount: 1000
  - payer: Ravi
    category: Grocery
    date: 2024-02-10
    amount: 200
`

// run executes the command tree with args against a database in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CURRENCY", "USD")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRootCommand(&out)
	root.SetArgs(append([]string{"--db", filepath.Join(dir, "ledger.db")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportThenReport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "household.yaml")
	if err := os.WriteFile(file, []byte(household), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	out, err := run(t, dir, "import", file)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "Imported 2 roommates, 2 expenses") {
		t.Errorf("unexpected import output: %q", out)
	}

	out, err = run(t, dir, "report", "--plain")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	// Ravi owes (1000 - 200) / 2.
	if !strings.Contains(out, "### Ravi pays Asha $400.00") {
		t.Errorf("expected all-time instruction, got:\n%s", out)
	}

	out, err = run(t, dir, "report", "--plain", "--month", "2024-02")
	if err != nil {
		t.Fatalf("monthly report failed: %v", err)
	}
	if !strings.Contains(out, "# Settlement 2024-02") || !strings.Contains(out, "### Asha pays Ravi $100.00") {
		t.Errorf("expected February settlement, got:\n%s", out)
	}
}

func TestReport_RejectsBadMonth(t *testing.T) {
	if _, err := run(t, t.TempDir(), "report", "--month", "March"); err == nil {
		t.Error("expected error for invalid --month")
	}
}

func TestReport_UnknownMonth(t *testing.T) {
	_, err := run(t, t.TempDir(), "report", "--month", "2030-01")
	if err == nil || !strings.Contains(err.Error(), "no records for 2030-01") {
		t.Errorf("expected no records error, got %v", err)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	if _, err := run(t, dir, "export", "--out", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 4 {
		t.Errorf("expected 4 sheets, got %d", n)
	}
}

func TestImport_RequiresFile(t *testing.T) {
	if _, err := run(t, t.TempDir(), "import"); err == nil {
		t.Error("expected error without a dataset argument")
	}
}
