package domain

import (
	"iter"
	"strings"
)

// DefaultMaxDepth bounds subtree walks.
const DefaultMaxDepth = 1024

// Registry is the canonical id to node collection.
// Nodes are kept in registration order and the first node registered under an id wins lookups.
type Registry struct {
	nodes []*Node
	index map[string]*Node
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Node),
	}
}

// Register adds n. Duplicate ids are accepted but never shadow the earlier node.
func (r *Registry) Register(n *Node) {
	r.nodes = append(r.nodes, n)
	if _, exists := r.index[n.ID]; !exists {
		r.index[n.ID] = n
	}
}

// FindByID returns the first node registered under id.
func (r *Registry) FindByID(id string) (*Node, bool) {
	n, ok := r.index[id]
	return n, ok
}

// Lookup is FindByID with an ErrNodeNotFound error on a miss.
func (r *Registry) Lookup(id string) (*Node, error) {
	n, ok := r.index[id]
	if !ok {
		return nil, Tag(ErrNodeNotFound, "node_id", id)
	}
	return n, nil
}

// Len returns the number of registered nodes, duplicates included.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// All yields every registered node in registration order.
func (r *Registry) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range r.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Roots yields the registered nodes without a parent.
func (r *Registry) Roots() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range r.nodes {
			if !n.IsRoot() {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// CheckParent verifies that making parentID the parent of id keeps the tree acyclic.
// Parents missing from the registry are not an error here; placement reports them.
func (r *Registry) CheckParent(id, parentID string) error {
	if parentID == "" {
		return nil
	}
	visited := map[string]bool{id: true}
	path := []string{id}
	for current := parentID; current != ""; {
		path = append(path, current)
		if visited[current] {
			return Tag(ErrCycleDetected, "cycle", strings.Join(path, " -> "))
		}
		visited[current] = true

		n, ok := r.index[current]
		if !ok {
			return nil
		}
		current = n.ParentID
	}
	return nil
}

// Descendants returns every node below root in pre-order.
// The whole subtree is resolved before returning so callers can mutate with all-or-nothing semantics.
// A child id repeated under the same subtree resolves to the first registered node and is
// listed once; only an id that reappears on its own ancestor path is a cycle.
func (r *Registry) Descendants(root *Node, maxDepth int) ([]*Node, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var out []*Node
	seen := map[string]bool{root.ID: true}
	onPath := map[string]bool{root.ID: true}

	var visit func(n *Node, depth int) error
	visit = func(n *Node, depth int) error {
		if len(n.ChildIDs) > 0 && depth > maxDepth {
			return Tag(ErrDepthExceeded, "depth", depth)
		}
		for _, childID := range n.ChildIDs {
			if onPath[childID] {
				return Tag(ErrCycleDetected, "node_id", childID)
			}
			if seen[childID] {
				continue
			}
			seen[childID] = true

			child, err := r.Lookup(childID)
			if err != nil {
				return err
			}
			out = append(out, child)
			onPath[childID] = true
			err = visit(child, depth+1)
			delete(onPath, childID)
			if err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(root, 1); err != nil {
		return nil, err
	}
	return out, nil
}

// Ancestors returns the parent chain of id, nearest first. The walk stops at the
// first parent that does not resolve.
func (r *Registry) Ancestors(id string) ([]*Node, error) {
	n, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	var out []*Node
	visited := map[string]bool{id: true}
	for current := n.ParentID; current != ""; {
		if visited[current] {
			return nil, Tag(ErrCycleDetected, "node_id", current)
		}
		visited[current] = true

		parent, ok := r.index[current]
		if !ok {
			break
		}
		out = append(out, parent)
		current = parent.ParentID
	}
	return out, nil
}
