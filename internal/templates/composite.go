package templates

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/photo-collage/internal/geometry"
)

//go:embed composites.yaml
var compositesYAML []byte

type compositeCell struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Photo int     `yaml:"photo"`
}

type compositeEntry struct {
	Count int             `yaml:"count"`
	Name  string          `yaml:"name"`
	Cells []compositeCell `yaml:"cells"`
}

type compositeFile struct {
	Composites []compositeEntry `yaml:"composites"`
}

// compositeTable holds the curated partitions indexed by photo count,
// loaded once from the embedded table.
var compositeTable = loadComposites()

func loadComposites() map[int][]Descriptor {
	var f compositeFile
	if err := yaml.Unmarshal(compositesYAML, &f); err != nil {
		// This is an embedded file so a failure here is an authoring defect.
		panic("failed to unmarshal embedded composites.yaml: " + err.Error())
	}

	table := make(map[int][]Descriptor)
	for _, e := range f.Composites {
		cells := make([]Cell, 0, len(e.Cells))
		for _, c := range e.Cells {
			cells = append(cells, Cell{
				Rect:       geometry.Rect{X: c.X, Y: c.Y, Width: c.W, Height: c.H},
				PhotoIndex: c.Photo,
			})
		}
		d := Descriptor{
			Kind:  KindComposite,
			Name:  fmt.Sprintf("composite-%d-%s", e.Count, e.Name),
			Cells: cells,
		}
		if err := d.Validate(e.Count); err != nil {
			panic("invalid composite template: " + err.Error())
		}
		table[e.Count] = append(table[e.Count], d)
	}
	return table
}

// compositeDescriptors returns the curated partitions for n photos, if any.
func compositeDescriptors(n int) []Descriptor {
	return compositeTable[n]
}
