package clock

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LocalZone names the machine clock.
const LocalZone = "local"

//go:embed zones.yaml
var defaultZonesYAML []byte

// Zone is a named fixed UTC offset.
type Zone struct {
	Name        string  `yaml:"name"`
	Emoji       string  `yaml:"emoji"`
	OffsetHours float64 `yaml:"offset_hours"`
}

// Offset returns the zone offset as a duration.
func (z Zone) Offset() time.Duration {
	return time.Duration(z.OffsetHours * float64(time.Hour))
}

type zoneFile struct {
	Zones []Zone `yaml:"zones"`
}

// DefaultZones returns the built-in zone table.
func DefaultZones() []Zone {
	zones, err := ParseZones(defaultZonesYAML)
	if err != nil {
		panic(fmt.Sprintf("clock: embedded zones.yaml: %v", err))
	}
	return zones
}

// LoadZones reads a zone table from a YAML file.
func LoadZones(path string) ([]Zone, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	zones, err := ParseZones(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return zones, nil
}

// ParseZones decodes and validates a YAML zone table.
func ParseZones(content []byte) ([]Zone, error) {
	var f zoneFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, err
	}
	if len(f.Zones) == 0 {
		return nil, fmt.Errorf("no zones defined")
	}

	seen := make(map[string]bool, len(f.Zones))
	out := make([]Zone, 0, len(f.Zones))
	for i, z := range f.Zones {
		z.Name = strings.TrimSpace(z.Name)
		z.Emoji = strings.TrimSpace(z.Emoji)
		key := strings.ToLower(z.Name)
		switch {
		case z.Name == "":
			return nil, fmt.Errorf("zone %d: missing name", i)
		case key == LocalZone:
			return nil, fmt.Errorf("zone %d: %q is reserved for the machine clock", i, z.Name)
		case seen[key]:
			return nil, fmt.Errorf("zone %d: duplicate name %q", i, z.Name)
		case z.OffsetHours < -12 || z.OffsetHours > 14:
			return nil, fmt.Errorf("zone %q: offset %v out of range", z.Name, z.OffsetHours)
		}
		seen[key] = true
		out = append(out, z)
	}
	return out, nil
}
