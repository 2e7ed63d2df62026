// Package chart loads the celestial island catalogue and plots the boat's
// virtual globe track on a Web Mercator chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/vmath"
)

var ErrInvalidChart = errors.New("invalid island chart")

// DefaultYAML is the built-in catalogue in file form
const DefaultYAML = `# Rotations compose in listed order, angles in quarter turns
islands:
  - id: home
    rotations:
      - {axis: x, turns: 0.1}
      - {axis: y, turns: 0.2}
  - id: island_a
    rotations:
      - {axis: x, turns: -0.15}
      - {axis: z, turns: 0.12}
`

type chartFile struct {
	Islands []islandEntry `yaml:"islands"`
}

type islandEntry struct {
	ID        string          `yaml:"id"`
	Rotations []rotationEntry `yaml:"rotations"`
}

type rotationEntry struct {
	Axis  string  `yaml:"axis"`
	Turns float64 `yaml:"turns"`
}

// LoadIslands parses a YAML catalogue
func LoadIslands(r io.Reader) ([]sky.Island, error) {
	var doc chartFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	if len(doc.Islands) == 0 {
		return nil, fmt.Errorf("%w: no islands", ErrInvalidChart)
	}

	seen := make(map[string]bool, len(doc.Islands))
	islands := make([]sky.Island, 0, len(doc.Islands))
	for i, e := range doc.Islands {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: island %d has no id", ErrInvalidChart, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate island %q", ErrInvalidChart, id)
		}
		seen[id] = true

		rot := vmath.QIdentity
		for j, r := range e.Rotations {
			q, err := axisRotation(r)
			if err != nil {
				return nil, fmt.Errorf("%w: island %q rotation %d: %w", ErrInvalidChart, id, j, err)
			}
			rot = vmath.QMul(rot, q)
		}
		islands = append(islands, sky.Island{ID: sky.IslandID(id), Rotation: vmath.QNormalize(rot)})
	}
	return islands, nil
}

// LoadIslandsFile reads a catalogue from disk
func LoadIslandsFile(path string) ([]sky.Island, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart: %w", err)
	}
	defer f.Close()
	return LoadIslands(f)
}

func axisRotation(r rotationEntry) (vmath.Quat, error) {
	if !vmath.Finite(r.Turns) {
		return vmath.Quat{}, fmt.Errorf("turns %v not finite", r.Turns)
	}
	angle := sky.Turns(r.Turns)
	switch strings.ToLower(r.Axis) {
	case "x":
		return vmath.QFromRotationX(angle), nil
	case "y":
		return vmath.QFromRotationY(angle), nil
	case "z":
		return vmath.QFromRotationZ(angle), nil
	}
	return vmath.Quat{}, fmt.Errorf("unknown axis %q", r.Axis)
}
