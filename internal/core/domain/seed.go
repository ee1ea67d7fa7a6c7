package domain

import "iter"

// TreeNode is a seed record: the nested shape served by GET /nodes.
type TreeNode struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	Role     string      `json:"role" yaml:"role"`
	Color    string      `json:"color" yaml:"color"`
	Left     *float64    `json:"left,omitempty" yaml:"left,omitempty"`
	Top      *float64    `json:"top,omitempty" yaml:"top,omitempty"`
	ParentID string      `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Children []*TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Visual returns the card appearance described by the record.
func (t *TreeNode) Visual() Visual {
	return Visual{Fill: t.Color, Name: t.Name, Role: t.Role}
}

// Flatten yields the forest in pre-order: a record is always yielded before its children.
// Children without an explicit parentId inherit the id of the record they are nested in.
func Flatten(forest []*TreeNode) iter.Seq[TreeNode] {
	return func(yield func(TreeNode) bool) {
		var walk func(nodes []*TreeNode, parentID string) bool
		walk = func(nodes []*TreeNode, parentID string) bool {
			for _, t := range nodes {
				if t == nil {
					continue
				}
				rec := *t
				rec.Children = nil
				if rec.ParentID == "" {
					rec.ParentID = parentID
				}
				if !yield(rec) {
					return false
				}
				if !walk(t.Children, t.ID) {
					return false
				}
			}
			return true
		}
		walk(forest, "")
	}
}

// ValidateSeed checks that every record carries an id.
func ValidateSeed(forest []*TreeNode) error {
	for rec := range Flatten(forest) {
		if rec.ID == "" {
			return Tag(ErrInvalidSeed, "name", rec.Name)
		}
	}
	return nil
}

// DefaultSeed returns the built-in two-family diagram.
func DefaultSeed() []*TreeNode {
	return []*TreeNode{
		{
			ID:    "group-1",
			Name:  "Ben",
			Role:  "Father",
			Color: "blue",
			Left:  ptr(100),
			Top:   ptr(30),
		},
		{
			ID:    "group-2",
			Name:  "Peter",
			Role:  "Father",
			Color: "black",
			Left:  ptr(400),
			Top:   ptr(30),
			Children: []*TreeNode{
				{ID: "group-3", Name: "John", Role: "Son", Color: "orange", ParentID: "group-2"},
				{ID: "group-4", Name: "Freda", Role: "Daughter", Color: "pink", ParentID: "group-2"},
			},
		},
	}
}

func ptr(v float64) *float64 {
	return &v
}
