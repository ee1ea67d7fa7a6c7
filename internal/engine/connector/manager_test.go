package connector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/engine/connector"
	"go.trai.ch/kin/internal/engine/layout"
)

// family builds p -> {a, b}, a -> {a1}, placed by the layout engine.
func family(t *testing.T) (*domain.Registry, map[string]*domain.Node) {
	t.Helper()
	r := domain.NewRegistry()
	e := layout.New(r, 0)
	nodes := map[string]*domain.Node{}

	add := func(id, parentID string) {
		n := domain.NewNode(id, domain.Visual{Name: id})
		n.ParentID = parentID
		if parentID == "" {
			n.Left, n.Top = 400, 30
		}
		r.Register(n)
		require.NoError(t, e.Place(n))
		nodes[id] = n
	}
	add("p", "")
	add("a", "p")
	add("b", "p")
	add("a1", "a")
	return r, nodes
}

func assertAnchored(t *testing.T, parent, child *domain.Node) {
	t.Helper()
	c, ok := parent.Connector(child.ID)
	require.True(t, ok)
	in, ok := child.Incoming()
	require.True(t, ok)
	assert.Same(t, c, in)
	assert.Equal(t, parent.BottomCenter(), c.Start())
	assert.Equal(t, child.TopCenter(), c.End())
}

func TestManager_Connect(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)

	c := m.Connect(nodes["p"], nodes["a"], domain.Visible)

	assert.Equal(t, "p", c.ParentID)
	assert.Equal(t, "a", c.ChildID)
	assert.InDelta(t, domain.Visible, c.Opacity, 0)
	assert.Equal(t, domain.Point{X: 480, Y: 110}, c.Start())
	assert.Equal(t, domain.Point{X: 400, Y: 135}, c.End())
	assertAnchored(t, nodes["p"], nodes["a"])
}

func TestManager_ConnectAll(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)

	lines, err := m.ConnectAll()
	require.NoError(t, err)
	assert.Len(t, lines, 3)

	for _, line := range lines {
		assert.InDelta(t, domain.Hidden, line.Opacity, 0)
	}
	assert.InDelta(t, domain.Visible, nodes["p"].Opacity, 0)
	for _, id := range []string{"a", "b", "a1"} {
		assert.InDelta(t, domain.Hidden, nodes[id].Opacity, 0, id)
	}
	assertAnchored(t, nodes["p"], nodes["a"])
	assertAnchored(t, nodes["p"], nodes["b"])
	assertAnchored(t, nodes["a"], nodes["a1"])
}

func TestManager_ConnectAll_SkipsDanglingChild(t *testing.T) {
	r, nodes := family(t)
	nodes["b"].ChildIDs = []string{"ghost"}
	m := connector.New(r)

	lines, err := m.ConnectAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	assert.Len(t, lines, 3)
}

func TestManager_Resync(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)
	_, err := m.ConnectAll()
	require.NoError(t, err)

	a := nodes["a"]
	a.Left, a.Top = 900, 700
	require.NoError(t, m.Resync(a))

	assertAnchored(t, nodes["p"], a)
	assertAnchored(t, a, nodes["a1"])
	assertAnchored(t, nodes["p"], nodes["b"])
}

func TestManager_Resync_ReanchorsChildEnd(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)
	_, err := m.ConnectAll()
	require.NoError(t, err)

	// The child moved without its own resync.
	a1 := nodes["a1"]
	a1.Left, a1.Top = 15, 500

	a := nodes["a"]
	a.Left += 10
	require.NoError(t, m.Resync(a))

	assertAnchored(t, a, a1)
}

func TestManager_Resync_Transitive(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)
	_, err := m.ConnectAll()
	require.NoError(t, err)

	for _, id := range []string{"p", "a", "a1", "p"} {
		n := nodes[id]
		n.Left += 37
		n.Top -= 11
		require.NoError(t, m.Resync(n))
	}

	assertAnchored(t, nodes["p"], nodes["a"])
	assertAnchored(t, nodes["p"], nodes["b"])
	assertAnchored(t, nodes["a"], nodes["a1"])
}

func TestManager_Resync_DanglingChildLeavesStateUntouched(t *testing.T) {
	r, nodes := family(t)
	m := connector.New(r)
	_, err := m.ConnectAll()
	require.NoError(t, err)

	p := nodes["p"]
	before, _ := p.Connector("a")
	start := before.Start()

	p.ChildIDs = append(p.ChildIDs, "ghost")
	p.Left = 0

	err = m.Resync(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
	assert.Equal(t, start, before.Start())
}
