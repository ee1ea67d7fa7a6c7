package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kin/internal/adapters/surface"
	"go.trai.ch/kin/internal/adapters/telemetry"
	"go.trai.ch/kin/internal/app"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	canvas   *surface.Canvas
	logger   *mocks.MockLogger
	notifier *mocks.MockNotifier
	ids      *mocks.MockIDGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		canvas:   surface.New(domain.Point{}),
		logger:   mocks.NewMockLogger(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		ids:      mocks.NewMockIDGenerator(ctrl),
	}
	f.app = app.New(f.canvas, f.logger, f.notifier, f.ids, telemetry.NewNoOpTracer())
	return f
}

// initDefault draws the built-in family with group-2 expanded.
func (f *fixture) initDefault(t *testing.T) {
	t.Helper()
	require.NoError(t, f.app.Initialize(t.Context(), domain.DefaultSeed(), domain.DefaultExpandID))
}

func (f *fixture) view(t *testing.T, id string) domain.NodeView {
	t.Helper()
	v, err := f.app.Node(id)
	require.NoError(t, err)
	return v
}

func TestApp_Initialize_DefaultFamily(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	ben := f.view(t, "group-1")
	assert.InDelta(t, 100.0, ben.Left, 0)
	assert.InDelta(t, 1.0, ben.Opacity, 0)
	assert.Empty(t, ben.ChildIDs)

	peter := f.view(t, "group-2")
	assert.True(t, peter.Expanded)
	assert.Equal(t, []string{"group-3", "group-4"}, peter.ChildIDs)

	john := f.view(t, "group-3")
	assert.InDelta(t, 320.0, john.Left, 0)
	assert.InDelta(t, 135.0, john.Top, 0)
	assert.InDelta(t, 1.0, john.Opacity, 0)
	assert.Equal(t, 1, john.Depth)

	freda := f.view(t, "group-4")
	assert.InDelta(t, 480.0, freda.Left, 0)
	assert.InDelta(t, 135.0, freda.Top, 0)
	assert.InDelta(t, 1.0, freda.Opacity, 0)

	line := peter.Connectors["line-group-3"]
	assert.Equal(t, domain.ConnectorView{
		ParentID: "group-2", ChildID: "group-3",
		X1: 480, Y1: 110, X2: 400, Y2: 135, Opacity: 1,
	}, line)
	assert.Equal(t, line, john.Connectors["line-group-3"])

	scene := f.app.Scene()
	assert.Len(t, scene.Nodes, 4)
	assert.Len(t, scene.Lines, 2)
	assert.Equal(t, "white", scene.Background)
	assert.Positive(t, f.app.Renders())
}

func TestApp_Expand_LeafNotifies(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	f.notifier.EXPECT().Notify(gomock.Any(), "No child nodes available")

	err := f.app.Expand(t.Context(), "group-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoChildren))
	assert.False(t, f.view(t, "group-1").Expanded)
	assert.Empty(t, f.app.Selected())
}

func TestApp_Expand_UnresolvedTargets(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	err := f.app.Expand(t.Context(), "")
	assert.True(t, errors.Is(err, domain.ErrTargetUnresolved))

	err = f.app.Expand(t.Context(), "nobody")
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
}

func TestApp_Expand_CollapseAndReopen(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	require.NoError(t, f.app.Expand(t.Context(), "group-2"))
	assert.False(t, f.view(t, "group-2").Expanded)
	for _, id := range []string{"group-3", "group-4"} {
		v := f.view(t, id)
		assert.InDelta(t, 0.0, v.Opacity, 0)
		assert.InDelta(t, 0.0, v.Connectors["line-"+id].Opacity, 0)
	}
	assert.Equal(t, "group-2", f.app.Selected())
	assert.Equal(t, "group-2", f.app.Focused())

	require.NoError(t, f.app.Expand(t.Context(), "group-2"))
	assert.InDelta(t, 1.0, f.view(t, "group-4").Opacity, 0)
}

func TestApp_Drag_ResyncsConnectors(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	before := f.view(t, "group-2").Connectors
	renders := f.app.Renders()

	require.NoError(t, f.app.Drag(t.Context(), "group-2", 450, 60))

	after := f.view(t, "group-2").Connectors
	for key, c := range after {
		assert.InDelta(t, before[key].X1+50, c.X1, 0, key)
		assert.InDelta(t, before[key].Y1+30, c.Y1, 0, key)
		assert.InDelta(t, before[key].X2, c.X2, 0, key)
	}
	assert.Greater(t, f.app.Renders(), renders)

	// Moving the child shifts only the end of its incoming connector.
	require.NoError(t, f.app.Drag(t.Context(), "group-3", 300, 200))
	john := f.view(t, "group-3").Connectors["line-group-3"]
	assert.InDelta(t, 380.0, john.X2, 0)
	assert.InDelta(t, 200.0, john.Y2, 0)
	assert.InDelta(t, after["line-group-3"].X1, john.X1, 0)

	err := f.app.Drag(t.Context(), "nobody", 0, 0)
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))
}

func TestApp_Select_PlacesButtons(t *testing.T) {
	f := newFixture(t)
	canvas := domain.DefaultCanvas()
	canvas.OffsetLeft, canvas.OffsetTop = 10, 64
	f.app.Configure(canvas)
	f.initDefault(t)

	got, err := f.app.Select(t.Context(), "group-3")
	require.NoError(t, err)
	assert.Equal(t, domain.ButtonPlacement{NodeID: "group-3", Left: 330, Top: 64 + 135 + 80 - 75, Opacity: 1}, got)
	assert.Empty(t, f.app.Selected(), "buttons do not change the form target")

	// Buttons follow the selected node while it is dragged.
	require.NoError(t, f.app.Drag(t.Context(), "group-3", 100, 100))
	assert.InDelta(t, 110.0, f.app.Buttons().Left, 0)
	assert.InDelta(t, 64+100+80-75.0, f.app.Buttons().Top, 0)
}

func TestApp_Submit_AddSurvivesSelectAndDrag(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	f.ids.EXPECT().NewID().Return("line-new", nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.OpenAdd(t.Context(), "group-1"))
	_, err := f.app.Select(t.Context(), "group-3")
	require.NoError(t, err)
	require.NoError(t, f.app.Drag(t.Context(), "group-4", 600, 200))
	assert.Equal(t, "group-1", f.app.Panel().NodeID)

	child, err := f.app.Submit(t.Context(), domain.FormValues{Name: "Ann", Role: "Daughter", Color: "red"})
	require.NoError(t, err)
	assert.Equal(t, "group-1", child.ParentID)
	assert.Equal(t, []string{"line-new"}, f.view(t, "group-1").ChildIDs)
	assert.Equal(t, []string{"group-3", "group-4"}, f.view(t, "group-2").ChildIDs)
}

func TestApp_NodeAt_PagePosition(t *testing.T) {
	f := newFixture(t)
	canvas := domain.DefaultCanvas()
	canvas.OffsetLeft, canvas.OffsetTop = 10, 64
	f.app.Configure(canvas)
	f.initDefault(t)

	id, err := f.app.NodeAt(domain.Point{X: 415, Y: 100})
	require.NoError(t, err)
	assert.Equal(t, "group-2", id)

	_, err = f.app.NodeAt(domain.Point{X: 405, Y: 40})
	assert.True(t, errors.Is(err, domain.ErrTargetUnresolved), "positions are relative to the page")
}

func TestApp_Hover(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	require.NoError(t, f.app.Hover(t.Context(), "group-1"))
	assert.Equal(t, "group-1", f.app.Focused())

	require.NoError(t, f.app.Hover(t.Context(), "group-2"))
	assert.Equal(t, "group-2", f.app.Focused())

	require.NoError(t, f.app.Unhover(t.Context()))
	assert.Empty(t, f.app.Focused())
	require.NoError(t, f.app.Unhover(t.Context()))
}

func TestApp_Submit_AddWhileCollapsed(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	f.ids.EXPECT().NewID().Return("line-0f8fad5b-d9cb-469f-a165-70867728950e", nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Expand(t.Context(), "group-2"))
	require.NoError(t, f.app.OpenAdd(t.Context(), "group-2"))
	assert.Equal(t, domain.Panel{Open: true, Width: 250, Mode: domain.ModeAdd, NodeID: "group-2"}, f.app.Panel())

	child, err := f.app.Submit(t.Context(), domain.FormValues{Name: "X", Role: "Y", Color: "red"})
	require.NoError(t, err)

	id := "line-0f8fad5b-d9cb-469f-a165-70867728950e"
	assert.Equal(t, id, child.ID)
	assert.Equal(t, "group-2", child.ParentID)

	peter := f.view(t, "group-2")
	assert.False(t, peter.Expanded)
	assert.Equal(t, []string{"group-3", "group-4", id}, peter.ChildIDs)
	assert.Empty(t, peter.Mode)
	require.Contains(t, peter.Connectors, "line-"+id)
	assert.InDelta(t, 1.0, peter.Connectors["line-"+id].Opacity, 0)

	v := f.view(t, id)
	assert.InDelta(t, 1.0, v.Opacity, 0)
	assert.InDelta(t, 640.0, v.Left, 0)
	assert.InDelta(t, 135.0, v.Top, 0)
	assert.Equal(t, "red", v.Color)

	// Reveal shows the siblings that were collapsed.
	assert.InDelta(t, 1.0, f.view(t, "group-3").Opacity, 0)

	assert.Equal(t, domain.Panel{}, f.app.Panel())
	assert.Len(t, f.app.Scene().Nodes, 5)
	assert.Len(t, f.app.Scene().Lines, 3)
}

func TestApp_Submit_EditIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	form, err := f.app.OpenEdit(t.Context(), "group-3")
	require.NoError(t, err)
	assert.Equal(t, domain.FormValues{Name: "John", Role: "Son", Color: "orange"}, form)
	assert.Equal(t, domain.ModeEdit, f.app.Panel().Mode)

	edit := domain.FormValues{Name: "Johnny", Role: "Son", Color: "teal"}
	for range 2 {
		_, err := f.app.OpenEdit(t.Context(), "group-3")
		require.NoError(t, err)
		n, err := f.app.Submit(t.Context(), edit)
		require.NoError(t, err)
		assert.Equal(t, "group-3", n.ID)
	}

	john := f.view(t, "group-3")
	assert.Equal(t, "Johnny", john.Name)
	assert.Equal(t, "teal", john.Color)
	assert.InDelta(t, 320.0, john.Left, 0)
	assert.Equal(t, []string{"group-3", "group-4"}, f.view(t, "group-2").ChildIDs)
	assert.Len(t, f.app.Scene().Nodes, 4)
}

func TestApp_Submit_Preconditions(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	_, err := f.app.Submit(t.Context(), domain.FormValues{Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNoSelection))

	_, err = f.app.Select(t.Context(), "group-1")
	require.NoError(t, err)
	_, err = f.app.Submit(t.Context(), domain.FormValues{Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNoSelection))

	require.NoError(t, f.app.Expand(t.Context(), "group-2"))
	_, err = f.app.Submit(t.Context(), domain.FormValues{Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNoPendingMode))
	assert.Equal(t, "Peter", f.view(t, "group-2").Name)

	// A second submit after a successful one has nothing pending.
	_, err = f.app.OpenEdit(t.Context(), "group-1")
	require.NoError(t, err)
	_, err = f.app.Submit(t.Context(), domain.FormValues{Name: "Benjamin"})
	require.NoError(t, err)
	_, err = f.app.Submit(t.Context(), domain.FormValues{Name: "Other"})
	assert.True(t, errors.Is(err, domain.ErrNoPendingMode))
	assert.Equal(t, "Benjamin", f.view(t, "group-1").Name)
}

func TestApp_Submit_IDFailureLeavesTreeUntouched(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	boom := errors.New("entropy exhausted")
	f.ids.EXPECT().NewID().Return("", boom)

	require.NoError(t, f.app.OpenAdd(t.Context(), "group-1"))
	_, err := f.app.Submit(t.Context(), domain.FormValues{Name: "X"})
	require.ErrorIs(t, err, boom)

	assert.Empty(t, f.view(t, "group-1").ChildIDs)
	assert.True(t, f.app.Panel().Open)
}

func TestApp_OpenPanel_SwitchingNodeClearsMode(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	require.NoError(t, f.app.OpenAdd(t.Context(), "group-1"))
	_, err := f.app.OpenEdit(t.Context(), "group-2")
	require.NoError(t, err)

	assert.Empty(t, f.view(t, "group-1").Mode)
	assert.Equal(t, domain.ModeEdit, f.view(t, "group-2").Mode)
	assert.Equal(t, "group-2", f.app.Panel().NodeID)
}

func TestApp_Nodes_ReseedsIdenticalDiagram(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)
	require.NoError(t, f.app.Drag(t.Context(), "group-1", 120, 40))
	require.NoError(t, f.app.Drag(t.Context(), "group-3", 10, 300))

	forest := f.app.Nodes()
	require.Len(t, forest, 2)
	assert.Equal(t, "group-1", forest[0].ID)
	require.Len(t, forest[1].Children, 2)
	assert.Equal(t, "group-2", forest[1].Children[0].ParentID)

	g := newFixture(t)
	require.NoError(t, g.app.Initialize(t.Context(), forest, domain.DefaultExpandID))
	for _, id := range []string{"group-1", "group-2", "group-3", "group-4"} {
		assert.Equal(t, f.view(t, id), g.view(t, id), id)
	}
	john := g.view(t, "group-3")
	assert.InDelta(t, 10.0, john.Left, 0)
	assert.InDelta(t, 300.0, john.Top, 0)
}

func TestApp_Initialize_GuardsBadSeeds(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrCycleDetected))
	})
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "parent node not found")
	})

	left, top := 5.0, 6.0
	seed := []*domain.TreeNode{
		{ID: "loop", ParentID: "loop"},
		{ID: "orphan", ParentID: "ghost", Left: &left, Top: &top},
		{ID: "root", Left: &left, Top: &top},
	}
	require.NoError(t, f.app.Initialize(t.Context(), seed, "missing"))

	_, err := f.app.Node("loop")
	assert.True(t, errors.Is(err, domain.ErrNodeNotFound))

	orphan := f.view(t, "orphan")
	assert.InDelta(t, 5.0, orphan.Left, 0)
	assert.InDelta(t, 1.0, orphan.Opacity, 0)

	forest := f.app.Nodes()
	assert.Len(t, forest, 2, "unplaced nodes are listed as roots")
}

func TestApp_Initialize_DuplicateChildIDs(t *testing.T) {
	f := newFixture(t)
	left, top := 400.0, 30.0
	seed := []*domain.TreeNode{{
		ID: "group-2", Name: "Peter", Left: &left, Top: &top,
		Children: []*domain.TreeNode{
			{ID: "group-3", Name: "John"},
			{ID: "group-3", Name: "Dup"},
		},
	}}

	require.NoError(t, f.app.Initialize(t.Context(), seed, "group-2"))

	peter := f.view(t, "group-2")
	assert.True(t, peter.Expanded)
	assert.Equal(t, []string{"group-3", "group-3"}, peter.ChildIDs)

	john := f.view(t, "group-3")
	assert.Equal(t, "John", john.Name)
	assert.InDelta(t, 1.0, john.Opacity, 0)
}

func TestApp_Initialize_ExpandFailureKeepsDiagram(t *testing.T) {
	f := newFixture(t)
	canvas := domain.DefaultCanvas()
	canvas.MaxDepth = 1
	f.app.Configure(canvas)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.True(t, errors.Is(err, domain.ErrDepthExceeded))
	})

	left, top := 0.0, 0.0
	seed := []*domain.TreeNode{{
		ID: "a", Left: &left, Top: &top,
		Children: []*domain.TreeNode{{
			ID:       "b",
			Children: []*domain.TreeNode{{ID: "c"}},
		}},
	}}

	require.NoError(t, f.app.Initialize(t.Context(), seed, "a"))
	assert.Len(t, f.app.Scene().Nodes, 3)
	assert.False(t, f.view(t, "a").Expanded)
	assert.InDelta(t, 0.0, f.view(t, "c").Opacity, 0)
}

func TestApp_ClosePanel(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	require.NoError(t, f.app.OpenAdd(t.Context(), "group-1"))
	f.app.ClosePanel()

	assert.Equal(t, domain.Panel{}, f.app.Panel())
	assert.Empty(t, f.view(t, "group-1").Mode)
	_, err := f.app.Submit(t.Context(), domain.FormValues{Name: "X"})
	assert.True(t, errors.Is(err, domain.ErrNoPendingMode))
}

func TestApp_Initialize_RejectsInvalidSeed(t *testing.T) {
	f := newFixture(t)
	f.initDefault(t)

	err := f.app.Initialize(t.Context(), []*domain.TreeNode{{Name: "anonymous"}}, "")
	assert.True(t, errors.Is(err, domain.ErrInvalidSeed))
	assert.Len(t, f.app.Scene().Nodes, 4, "diagram is kept on failure")
}

func TestApp_Load_AppliesCanvas(t *testing.T) {
	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Canvas.VerticalGap = 40
	cfg.Canvas.NodeHeight = 100
	cfg.Canvas.Margin = 8

	require.NoError(t, f.app.Load(t.Context(), cfg))

	john := f.view(t, "group-3")
	assert.InDelta(t, 30+100+40.0, john.Top, 0)
	assert.InDelta(t, 100.0, john.Height, 0)
	assert.InDelta(t, 8.0, f.app.Scene().Margin, 0)
}
