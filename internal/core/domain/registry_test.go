package domain_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kin/internal/core/domain"
)

func chain(ids ...string) *domain.Registry {
	r := domain.NewRegistry()
	var parent *domain.Node
	for _, id := range ids {
		n := domain.NewNode(id, domain.Visual{Name: id})
		if parent != nil {
			n.ParentID = parent.ID
			parent.ChildIDs = append(parent.ChildIDs, id)
		}
		r.Register(n)
		parent = n
	}
	return r
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	r := domain.NewRegistry()
	first := domain.NewNode("a", domain.Visual{Name: "first"})
	second := domain.NewNode("a", domain.Visual{Name: "second"})

	r.Register(first)
	r.Register(second)

	got, ok := r.FindByID("a")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Lookup(t *testing.T) {
	r := chain("a", "b")

	n, err := r.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, "a", n.ParentID)

	_, err = r.Lookup("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	assert.ErrorContains(t, err, "node not found")
}

func TestRegistry_AllAndRoots(t *testing.T) {
	r := chain("a", "b", "c")
	r.Register(domain.NewNode("z", domain.Visual{}))

	var all []string
	for n := range r.All() {
		all = append(all, n.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "z"}, all)

	var roots []string
	for n := range r.Roots() {
		roots = append(roots, n.ID)
	}
	assert.Equal(t, []string{"a", "z"}, roots)
}

func TestRegistry_CheckParent(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		parentID string
		wantErr  bool
	}{
		{name: "root", id: "x", parentID: ""},
		{name: "fresh leaf", id: "x", parentID: "c"},
		{name: "unknown parent", id: "x", parentID: "nowhere"},
		{name: "self parent", id: "x", parentID: "x", wantErr: true},
		{name: "ancestor as child", id: "a", parentID: "c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chain("a", "b", "c")
			err := r.CheckParent(tt.id, tt.parentID)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrCycleDetected))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistry_Descendants(t *testing.T) {
	t.Run("pre-order", func(t *testing.T) {
		r := domain.NewRegistry()
		root := domain.NewNode("root", domain.Visual{})
		root.ChildIDs = []string{"a", "b"}
		a := domain.NewNode("a", domain.Visual{})
		a.ParentID = "root"
		a.ChildIDs = []string{"a1"}
		a1 := domain.NewNode("a1", domain.Visual{})
		a1.ParentID = "a"
		b := domain.NewNode("b", domain.Visual{})
		b.ParentID = "root"
		for _, n := range []*domain.Node{root, a, a1, b} {
			r.Register(n)
		}

		got, err := r.Descendants(root, 0)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, n := range got {
			ids = append(ids, n.ID)
		}
		assert.Equal(t, []string{"a", "a1", "b"}, ids)
	})

	t.Run("cycle", func(t *testing.T) {
		r := chain("a", "b")
		b, _ := r.FindByID("b")
		b.ChildIDs = append(b.ChildIDs, "a")
		a, _ := r.FindByID("a")

		_, err := r.Descendants(a, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCycleDetected))
	})

	t.Run("repeated child id", func(t *testing.T) {
		r := chain("p", "c")
		dup := domain.NewNode("c", domain.Visual{Name: "dup"})
		dup.ParentID = "p"
		r.Register(dup)
		p, _ := r.FindByID("p")
		p.ChildIDs = append(p.ChildIDs, "c")

		got, err := r.Descendants(p, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].Visual.Name, "the first registration is resolved")
	})

	t.Run("depth bound", func(t *testing.T) {
		r := chain("a", "b", "c", "d")
		a, _ := r.FindByID("a")

		_, err := r.Descendants(a, 2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDepthExceeded))

		got, err := r.Descendants(a, 3)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("dangling child", func(t *testing.T) {
		r := chain("a")
		a, _ := r.FindByID("a")
		a.ChildIDs = []string{"ghost"}

		_, err := r.Descendants(a, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	})
}

func TestFlatten(t *testing.T) {
	var ids, parents []string
	for rec := range domain.Flatten(domain.DefaultSeed()) {
		ids = append(ids, rec.ID)
		parents = append(parents, rec.ParentID)
		assert.Empty(t, rec.Children)
	}
	assert.Equal(t, []string{"group-1", "group-2", "group-3", "group-4"}, ids)
	assert.Equal(t, []string{"", "", "group-2", "group-2"}, parents)
}

func TestFlatten_InheritsParent(t *testing.T) {
	forest := []*domain.TreeNode{
		{ID: "p", Children: []*domain.TreeNode{
			{ID: "c", Children: []*domain.TreeNode{{ID: "g"}}},
		}},
	}

	var got []domain.TreeNode
	for rec := range domain.Flatten(forest) {
		got = append(got, rec)
	}
	require.Len(t, got, 3)
	assert.Equal(t, "p", got[1].ParentID)
	assert.Equal(t, "c", got[2].ParentID)
}

func TestFlatten_StopsEarly(t *testing.T) {
	var ids []string
	for rec := range domain.Flatten(domain.DefaultSeed()) {
		ids = append(ids, rec.ID)
		if rec.ID == "group-2" {
			break
		}
	}
	assert.True(t, slices.Equal([]string{"group-1", "group-2"}, ids))
}

func TestValidateSeed(t *testing.T) {
	require.NoError(t, domain.ValidateSeed(domain.DefaultSeed()))

	err := domain.ValidateSeed([]*domain.TreeNode{{ID: "a", Children: []*domain.TreeNode{{Name: "nameless"}}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSeed))
}

func TestRegistry_Ancestors(t *testing.T) {
	r := chain("a", "b", "c")

	got, err := r.Ancestors("c")
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"b", "a"}, ids)

	roots, err := r.Ancestors("a")
	require.NoError(t, err)
	assert.Empty(t, roots)

	_, err = r.Ancestors("missing")
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))

	a, _ := r.FindByID("a")
	a.ParentID = "c"
	_, err = r.Ancestors("c")
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))
}
