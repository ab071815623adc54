package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempFile(t *testing.T, contents string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finquest_settings.txt")
	if contents != "" {
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return NewFile(path)
}

func TestFileReadAll(t *testing.T) {
	f := tempFile(t, "MONTHLY_BUDGET=1500.50\nCURRENCY=USD\nTHEME=Dark\n")

	values, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	want := map[string]string{
		"MONTHLY_BUDGET": "1500.50",
		"CURRENCY":       "USD",
		"THEME":          "Dark",
	}
	for k, v := range want {
		if values[k] != v {
			t.Fatalf("values[%q] = %q, want %q", k, values[k], v)
		}
	}
}

func TestFileReadAllMissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.txt"))
	values, err := f.ReadAll()
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("expected empty map, got %v", values)
	}
}

func TestFileReadAllSkipsMalformedLines(t *testing.T) {
	f := tempFile(t, "no equals sign\n=leading\nTHEME=Dark\n\n")
	values, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(values) != 1 || values["THEME"] != "Dark" {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestFileSetPreservesUnknownKeys(t *testing.T) {
	f := tempFile(t, "CURRENCY=USD\nTHEME=Dark\nCUSTOM_KEY=keep me\n")

	if err := f.Set(KeyBudget, "1800.00"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	values, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	cases := map[string]string{
		"MONTHLY_BUDGET": "1800.00",
		"CURRENCY":       "USD",
		"THEME":          "Dark",
		"CUSTOM_KEY":     "keep me",
	}
	for k, v := range cases {
		if values[k] != v {
			t.Fatalf("values[%q] = %q, want %q", k, values[k], v)
		}
	}

	raw, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "CUSTOM_KEY=keep me") {
		t.Fatalf("unknown key dropped on rewrite: %s", raw)
	}
}

func TestFileGetFallback(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.txt"))
	if got := f.Get(KeyCurrency, "PHP"); got != "PHP" {
		t.Fatalf("Get fallback = %q, want PHP", got)
	}
}
