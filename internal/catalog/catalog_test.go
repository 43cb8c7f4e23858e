package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	if len(c) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(c))
	}
	if c.Total() != 30 {
		t.Errorf("expected 30 items, got %d", c.Total())
	}

	wantOrder := []string{"copenhagen", "paris", "berlin"}
	for i, name := range wantOrder {
		if c[i].Name != name {
			t.Errorf("category %d = %q, want %q", i, c[i].Name, name)
		}
		if len(c[i].URLs) != 10 {
			t.Errorf("category %q has %d urls, want 10", name, len(c[i].URLs))
		}
	}

	if err := c.Validate(); err != nil {
		t.Errorf("builtin catalog should validate, got: %v", err)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("berlin", 3); got != "berlin_3.jpg" {
		t.Errorf("Filename = %q, want %q", got, "berlin_3.jpg")
	}
	if got := Filename("copenhagen", 10); got != "copenhagen_10.jpg" {
		t.Errorf("Filename = %q, want %q", got, "copenhagen_10.jpg")
	}
}

// Source URLs repeat in the builtin catalog, but generated filenames
// must not.
func TestFilename_UniquePerRun(t *testing.T) {
	c := Builtin()
	seen := make(map[string]bool)
	for _, cat := range c {
		for i := range cat.URLs {
			name := Filename(cat.Name, i+1)
			if seen[name] {
				t.Fatalf("duplicate filename %q", name)
			}
			seen[name] = true
		}
	}
	if len(seen) != c.Total() {
		t.Errorf("expected %d unique filenames, got %d", c.Total(), len(seen))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"valid", Catalog{{Name: "a", URLs: []string{"http://x/1"}}}, false},
		{"empty catalog", Catalog{}, true},
		{"empty name", Catalog{{Name: "", URLs: []string{"http://x/1"}}}, true},
		{"duplicate name", Catalog{
			{Name: "a", URLs: []string{"http://x/1"}},
			{Name: "a", URLs: []string{"http://x/2"}},
		}, true},
		{"no urls", Catalog{{Name: "a"}}, true},
		{"empty url", Catalog{{Name: "a", URLs: []string{""}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	data := `
- name: oslo
  urls:
    - https://example.com/opera.jpg
    - https://example.com/fjord.jpg
- name: stockholm
  urls:
    - https://example.com/gamla-stan.jpg
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(c))
	}
	if c[0].Name != "oslo" || c[1].Name != "stockholm" {
		t.Errorf("category order not preserved: %q, %q", c[0].Name, c[1].Name)
	}
	if c.Total() != 3 {
		t.Errorf("expected 3 items, got %d", c.Total())
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/catalog.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadFrom_InvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	data := "- name: oslo\n  urls: []\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for category without urls")
	}
}
