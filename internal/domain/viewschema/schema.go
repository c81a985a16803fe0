// Package viewschema models UI form documents as trees of named nodes and
// applies extension patches (insert-before, insert-after, replace,
// append-inside) as an explicit, ordered transformation pipeline.
package viewschema

import "fmt"

// Node is one element of a form document. Key must be unique within a
// document; it is the anchor patches address.
type Node struct {
	Key      string  `json:"key"`
	Kind     string  `json:"kind"`
	Label    string  `json:"label,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Document is a complete form tree.
type Document struct {
	Root *Node `json:"root"`
}

// Validate checks that every key in the document is unique and non-empty.
func (d Document) Validate() error {
	if d.Root == nil {
		return fmt.Errorf("document has no root")
	}
	seen := make(map[string]bool)
	return walk(d.Root, func(n *Node) error {
		if n.Key == "" {
			return fmt.Errorf("node of kind %q has an empty key", n.Kind)
		}
		if seen[n.Key] {
			return fmt.Errorf("duplicate node key %q", n.Key)
		}
		seen[n.Key] = true
		return nil
	})
}

// Find returns the node with the given key, or nil.
func (d Document) Find(key string) *Node {
	var found *Node
	walk(d.Root, func(n *Node) error {
		if n.Key == key {
			found = n
		}
		return nil
	})
	return found
}

// Clone deep-copies the document so patches never mutate the base tree.
func (d Document) Clone() Document {
	return Document{Root: cloneNode(d.Root)}
}

func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Key:   n.Key,
		Kind:  n.Kind,
		Label: n.Label,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			out.Children = append(out.Children, cloneNode(child))
		}
	}
	return out
}

func walk(n *Node, fn func(*Node) error) error {
	if n == nil {
		return nil
	}
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}
