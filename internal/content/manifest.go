// Package content loads room template manifests and instantiates live
// rooms from them. It is the I/O side of dungeon assembly: the dungeon
// package owns the semantics, this package owns the files.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grimholt/dungeonforge/internal/dungeon"
)

// WallSet holds the tagged segment lists for the four walls of a template.
type WallSet struct {
	North []dungeon.TaggedSegment
	South []dungeon.TaggedSegment
	East  []dungeon.TaggedSegment
	West  []dungeon.TaggedSegment
}

// TemplateDescriptor describes one authored room template: its asset path,
// specs, mesh pools, and the tagged segments of each wall.
type TemplateDescriptor struct {
	Path       dungeon.AssetRef
	Specs      dungeon.RoomSpecs
	DoorMeshes []dungeon.MeshRef
	WallMeshes []dungeon.MeshRef
	Walls      WallSet
}

// Validate checks that the descriptor is usable as a room template. Mesh
// pools are checked here, at load time, so bad content is rejected before
// it can reach a factory. Segment counts must match the footprint:
// north/south walls span the width, east/west walls span the length.
//
// Postcondition: Returns nil iff the descriptor can instantiate.
func (d TemplateDescriptor) Validate() error {
	var errs []string

	if d.Path == "" {
		errs = append(errs, "path must not be empty")
	}
	if err := d.Specs.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(d.DoorMeshes) == 0 {
		errs = append(errs, dungeon.ErrMissingDoorMeshPool.Error())
	}
	if len(d.WallMeshes) == 0 {
		errs = append(errs, dungeon.ErrMissingWallMeshPool.Error())
	}

	if d.Specs.Validate() == nil {
		if n := len(d.Walls.North); n != d.Specs.Width {
			errs = append(errs, fmt.Sprintf("north wall has %d segments, want width %d", n, d.Specs.Width))
		}
		if n := len(d.Walls.South); n != d.Specs.Width {
			errs = append(errs, fmt.Sprintf("south wall has %d segments, want width %d", n, d.Specs.Width))
		}
		if n := len(d.Walls.East); n != d.Specs.Length {
			errs = append(errs, fmt.Sprintf("east wall has %d segments, want length %d", n, d.Specs.Length))
		}
		if n := len(d.Walls.West); n != d.Specs.Length {
			errs = append(errs, fmt.Sprintf("west wall has %d segments, want length %d", n, d.Specs.Length))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("template %s: %s", d.Path, strings.Join(errs, "; "))
	}
	return nil
}

// yamlTemplateFile is the top-level YAML structure for template manifests.
type yamlTemplateFile struct {
	Template yamlTemplate `yaml:"template"`
}

// yamlTemplate is the YAML representation of a room template.
type yamlTemplate struct {
	Path       string    `yaml:"path"`
	Theme      string    `yaml:"theme"`
	Width      int       `yaml:"width"`
	Length     int       `yaml:"length"`
	DoorMeshes []string  `yaml:"door_meshes"`
	WallMeshes []string  `yaml:"wall_meshes"`
	Walls      yamlWalls `yaml:"walls"`
}

// yamlWalls is the YAML representation of the four walls.
type yamlWalls struct {
	North []yamlSegment `yaml:"north"`
	South []yamlSegment `yaml:"south"`
	East  []yamlSegment `yaml:"east"`
	West  []yamlSegment `yaml:"west"`
}

// yamlSegment is the YAML representation of one tagged wall segment.
type yamlSegment struct {
	Tag  string `yaml:"tag"`
	Mesh string `yaml:"mesh"`
}

// LoadTemplateFromFile reads and validates a single template manifest.
//
// Precondition: path must point to a valid YAML template manifest.
// Postcondition: Returns a validated descriptor or a non-nil error.
func LoadTemplateFromFile(path string) (TemplateDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplateDescriptor{}, fmt.Errorf("reading template manifest %s: %w", path, err)
	}
	return LoadTemplateFromBytes(data)
}

// LoadTemplateFromBytes parses and validates a template from YAML bytes.
//
// Postcondition: Returns a validated descriptor or a non-nil error.
func LoadTemplateFromBytes(data []byte) (TemplateDescriptor, error) {
	var file yamlTemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return TemplateDescriptor{}, fmt.Errorf("parsing template YAML: %w", err)
	}

	desc := convertYAMLTemplate(file.Template)
	if err := desc.Validate(); err != nil {
		return TemplateDescriptor{}, fmt.Errorf("validating template: %w", err)
	}

	return desc, nil
}

// ScanDir loads all YAML template manifests in a directory.
//
// Postcondition: Returns at least one validated descriptor, or the first
// error encountered; an empty directory is an error (an empty catalog is
// unusable).
func ScanDir(dir string) ([]TemplateDescriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	var descs []TemplateDescriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		desc, err := LoadTemplateFromFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("loading template from %s: %w", name, err)
		}
		descs = append(descs, desc)
	}

	if len(descs) == 0 {
		return nil, fmt.Errorf("no template manifests found in %s", dir)
	}

	return descs, nil
}

// CatalogEntries converts scanned descriptors into catalog build input.
func CatalogEntries(descs []TemplateDescriptor) []dungeon.CatalogEntry {
	entries := make([]dungeon.CatalogEntry, len(descs))
	for i, d := range descs {
		entries[i] = dungeon.CatalogEntry{Asset: d.Path, Specs: d.Specs}
	}
	return entries
}

// convertYAMLTemplate converts the parsed YAML structures into the
// descriptor type.
func convertYAMLTemplate(yt yamlTemplate) TemplateDescriptor {
	return TemplateDescriptor{
		Path: dungeon.AssetRef(yt.Path),
		Specs: dungeon.RoomSpecs{
			Theme:  dungeon.Theme(yt.Theme),
			Width:  yt.Width,
			Length: yt.Length,
		},
		DoorMeshes: convertMeshes(yt.DoorMeshes),
		WallMeshes: convertMeshes(yt.WallMeshes),
		Walls: WallSet{
			North: convertSegments(yt.Walls.North),
			South: convertSegments(yt.Walls.South),
			East:  convertSegments(yt.Walls.East),
			West:  convertSegments(yt.Walls.West),
		},
	}
}

func convertMeshes(meshes []string) []dungeon.MeshRef {
	out := make([]dungeon.MeshRef, len(meshes))
	for i, m := range meshes {
		out[i] = dungeon.MeshRef(m)
	}
	return out
}

func convertSegments(segments []yamlSegment) []dungeon.TaggedSegment {
	out := make([]dungeon.TaggedSegment, len(segments))
	for i, s := range segments {
		out[i] = dungeon.TaggedSegment{Tag: s.Tag, Mesh: dungeon.MeshRef(s.Mesh)}
	}
	return out
}
