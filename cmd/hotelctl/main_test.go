package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("HOTELCORE_SLOT_DRIVER", "memory")
	var out, errBuf bytes.Buffer
	code = run(context.Background(), args, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	_, stderr, code := runCLI(t)
	if code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr, "usage: hotelctl") {
		t.Fatalf("expected usage on stderr, got %q", stderr)
	}
}

func TestRunUnknownCommandFails(t *testing.T) {
	_, stderr, code := runCLI(t, "defragment")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("expected error on stderr, got %q", stderr)
	}
}

func TestExportPrintsSeededDocument(t *testing.T) {
	stdout, stderr, code := runCLI(t, "export")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if _, ok := doc["rooms"]; !ok {
		t.Fatalf("exported document missing rooms collection")
	}
}

func TestDashboardReportsSeedData(t *testing.T) {
	stdout, stderr, code := runCLI(t, "dashboard")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	var summary struct {
		TotalRooms int `json:"total_rooms"`
	}
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("dashboard is not JSON: %v", err)
	}
	if summary.TotalRooms == 0 {
		t.Fatalf("expected seeded rooms in dashboard output")
	}
}

func TestCollectionsListsSpreadsheetSchemas(t *testing.T) {
	stdout, _, code := runCLI(t, "collections")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "rooms") || !strings.Contains(stdout, "inventory") {
		t.Fatalf("unexpected collections output %q", stdout)
	}
}

func TestTemplateWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.xlsx")
	_, stderr, code := runCLI(t, "template", "-c", "rooms", "-o", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	// xlsx files are zip archives.
	if len(data) < 4 || data[0] != 'P' || data[1] != 'K' {
		t.Fatalf("template is not an xlsx workbook")
	}
}

func TestTemplateRequiresFlags(t *testing.T) {
	_, stderr, code := runCLI(t, "template")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "required") {
		t.Fatalf("expected flag error, got %q", stderr)
	}
}

func TestFinanceRejectsUnknownPeriod(t *testing.T) {
	_, stderr, code := runCLI(t, "finance", "-p", "quarter")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown period") {
		t.Fatalf("expected period error, got %q", stderr)
	}
}
