package lang

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Syntax.
func (n *Syntax) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.ToMap())
}

// MarshalYAML encodes the tree as YAML.
func (n *Syntax) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(n.ToMap())
}

// ToMap converts the tree to a native Go map structure suitable for
// generic encoders. Keys present depend on the node variant.
func (n *Syntax) ToMap() map[string]any {
	if n == nil {
		return nil
	}

	result := map[string]any{"kind": n.Kind.String()}

	switch {
	case n.Kind == SyntaxIndex:
		result["index"] = n.Index

	case n.Kind == SyntaxText:
		result["text"] = n.Text

	case n.Kind.Prefix():
		result["child"] = n.Left.ToMap()

	case n.Kind.Infix():
		result["left"] = n.Left.ToMap()
		result["right"] = n.Right.ToMap()
	}

	return result
}
