package viewschema

import "fmt"

// Patch operations.
const (
	OpInsertBefore = "insert_before"
	OpInsertAfter  = "insert_after"
	OpReplace      = "replace"
	OpAppendInside = "append_inside"
)

// Patch is one extension step: place Node relative to the node named by
// Anchor in the base document.
type Patch struct {
	Op     string `json:"op"`
	Anchor string `json:"anchor"`
	Node   *Node  `json:"node"`
}

// Apply runs the patches in order against a copy of the base document. A
// patch whose anchor is missing fails the whole pipeline; the result is
// validated so a patch cannot introduce a duplicate key.
func Apply(base Document, patches []Patch) (Document, error) {
	if err := base.Validate(); err != nil {
		return Document{}, fmt.Errorf("invalid base document: %w", err)
	}

	doc := base.Clone()
	for i, patch := range patches {
		if patch.Node == nil {
			return Document{}, fmt.Errorf("patch %d (%s %q): nil node", i, patch.Op, patch.Anchor)
		}
		if err := applyOne(doc, patch); err != nil {
			return Document{}, fmt.Errorf("patch %d: %w", i, err)
		}
	}

	if err := doc.Validate(); err != nil {
		return Document{}, fmt.Errorf("patched document: %w", err)
	}
	return doc, nil
}

func applyOne(doc Document, patch Patch) error {
	switch patch.Op {
	case OpAppendInside:
		target := doc.Find(patch.Anchor)
		if target == nil {
			return fmt.Errorf("%s: anchor %q not found", patch.Op, patch.Anchor)
		}
		target.Children = append(target.Children, patch.Node)
		return nil

	case OpInsertBefore, OpInsertAfter, OpReplace:
		parent, index := findParent(doc.Root, patch.Anchor)
		if index < 0 {
			if doc.Root != nil && doc.Root.Key == patch.Anchor {
				return fmt.Errorf("%s: cannot patch around the root node %q", patch.Op, patch.Anchor)
			}
			return fmt.Errorf("%s: anchor %q not found", patch.Op, patch.Anchor)
		}
		switch patch.Op {
		case OpInsertBefore:
			parent.Children = insertAt(parent.Children, index, patch.Node)
		case OpInsertAfter:
			parent.Children = insertAt(parent.Children, index+1, patch.Node)
		case OpReplace:
			parent.Children[index] = patch.Node
		}
		return nil

	default:
		return fmt.Errorf("unknown patch op %q", patch.Op)
	}
}

// findParent locates the parent of the node named key and the node's index
// among the parent's children. Returns index -1 when the key is absent or
// names the root.
func findParent(root *Node, key string) (*Node, int) {
	if root == nil {
		return nil, -1
	}
	for i, child := range root.Children {
		if child.Key == key {
			return root, i
		}
		if parent, index := findParent(child, key); index >= 0 {
			return parent, index
		}
	}
	return nil, -1
}

func insertAt(nodes []*Node, index int, node *Node) []*Node {
	nodes = append(nodes, nil)
	copy(nodes[index+1:], nodes[index:])
	nodes[index] = node
	return nodes
}
