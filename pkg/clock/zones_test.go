package clock

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()
	if len(zones) != 6 {
		t.Fatalf("expected 6 built-in zones, got %d", len(zones))
	}
	for _, z := range zones {
		if z.Name == "Delhi" && z.Offset() != 5*time.Hour+30*time.Minute {
			t.Fatalf("unexpected Delhi offset %v", z.Offset())
		}
	}
}

func TestParseZonesRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":     "zones: []\n",
		"no name":   "zones:\n  - offset_hours: 1\n",
		"reserved":  "zones:\n  - name: Local\n    offset_hours: 0\n",
		"duplicate": "zones:\n  - name: Paris\n    offset_hours: 1\n  - name: paris\n    offset_hours: 1\n",
		"range":     "zones:\n  - name: Mars\n    offset_hours: 30\n",
		"yaml":      "zones: [\n",
	}
	for name, content := range cases {
		if _, err := ParseZones([]byte(content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadZonesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	content := `zones:
  - name: Paris
    emoji: "🇫🇷"
    offset_hours: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write zones.yaml: %v", err)
	}

	zones, err := LoadZones(path)
	if err != nil {
		t.Fatalf("LoadZones: %v", err)
	}
	c := New(WithZones(zones), WithNow(func() time.Time { return christmas2024 }))
	if got, want := c.Time("paris"), "🇫🇷 The time in Paris is 15:30"; got != want {
		t.Fatalf("Time(paris) = %q, want %q", got, want)
	}
	if got := c.Time("london"); got != "❓ ❌ Sorry, I don't know the timezone for london" {
		t.Fatalf("custom table should replace defaults, got %q", got)
	}
}
