package hsm

import (
	"reflect"

	"gopkg.in/yaml.v3"
)

// VertexDescription is one line of a Traits' structural dump: enough to
// reconstruct the hierarchy's shape and binding without the original
// syntax text.
type VertexDescription struct {
	Index    int    `yaml:"index"`
	Name     string `yaml:"name"`
	Parent   int    `yaml:"parent"` // -1 for the root
	Depth    int    `yaml:"depth"`
	IsRegion bool   `yaml:"isRegion"`
	Record   string `yaml:"record"` // Go type of the bound record, or "" if untyped
}

// Description is the full structural dump of a bound Traits, suitable
// for YAML round-tripping via DescribeYAML.
type Description struct {
	Vertices []VertexDescription `yaml:"vertices"`
}

// Describe builds a Description of t: one VertexDescription per tree
// vertex, pre-order.
func (t *Traits) Describe() Description {
	desc := Description{Vertices: make([]VertexDescription, t.Tree.NumVertices())}
	for i := 0; i < t.Tree.NumVertices(); i++ {
		record := ""
		if t.Records[i] != nil {
			record = recordTypeName(t.Records[i])
		}
		desc.Vertices[i] = VertexDescription{
			Index:    i,
			Name:     t.Names[i],
			Parent:   t.Tree.Parent(i),
			Depth:    t.Tree.Depth(i),
			IsRegion: t.IsRegion[i],
			Record:   record,
		}
	}
	return desc
}

// DescribeYAML renders Describe's result as YAML, for cmd/forestree's
// describe subcommand.
func (t *Traits) DescribeYAML() ([]byte, error) {
	return yaml.Marshal(t.Describe())
}

func recordTypeName(r any) string {
	t := reflect.TypeOf(r)
	if t.Kind() == reflect.Pointer {
		return "*" + t.Elem().Name()
	}
	return t.Name()
}
