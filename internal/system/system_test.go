package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/event"
	"go-circuit-pulse/internal/motion"
	"go-circuit-pulse/internal/utils"
)

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func TestLayout_AnchorsAreCellCenters(t *testing.T) {
	d := diagram.MustParse("→→→→\n←←←←")
	l, err := NewLayout(d, 10, 20)
	require.NoError(t, err)

	assert.Equal(t, motion.Vec{X: -15, Y: 10}, l.Anchor(0, 0))
	assert.Equal(t, motion.Vec{X: 15, Y: -10}, l.Anchor(3, 1))
	assert.Equal(t, motion.Vec{X: 5, Y: 20}, l.Half())

	w, h := l.Size()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 40.0, h)
}

func TestNewLayout_Degenerate(t *testing.T) {
	d := diagram.MustParse("0")

	_, err := NewLayout(d, 0, 10)
	assert.ErrorIs(t, err, config.ErrDegenerateGeometry)
	_, err = NewLayout(d, 10, -1)
	assert.ErrorIs(t, err, config.ErrDegenerateGeometry)
	_, err = NewLayout(nil, 10, 10)
	assert.ErrorIs(t, err, config.ErrDegenerateGeometry)
}

func TestSpawn_SkipsBlankCells(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	spawned := &recorder{}
	dispatcher.Subscribe(spawned, event.MarkersSpawned)

	d := diagram.MustParse("┌→ ┐\n0\n└←←┘")
	l, err := NewLayout(d, 50, 50)
	require.NoError(t, err)

	n := NewSpawnSystem(ecs, dispatcher, utils.NewPRNGService(7), 10).Spawn(d, l)

	assert.Equal(t, d.Cells(), n)
	assert.Equal(t, 8, n)
	assert.Len(t, ecs.Markers, n)
	assert.Len(t, ecs.Positions, n)
	assert.Len(t, ecs.Renderables, n)
	for id, m := range ecs.Markers {
		assert.NotEqual(t, diagram.Blank, m.Directive)
		anchor := l.Anchor(m.Col, m.Row)
		assert.Equal(t, anchor.X, m.AnchorX)
		assert.Equal(t, anchor.Y, m.AnchorY)
		assert.Equal(t, float32(10), ecs.Renderables[id].Radius)
	}
	require.Len(t, spawned.got, 1)
	assert.Equal(t, 8, spawned.got[0].Markers)
}

func TestSpawn_ReplacesPreviousMarkers(t *testing.T) {
	ecs := entity.NewECS()
	s := NewSpawnSystem(ecs, nil, nil, 5)

	big := diagram.MustParse(diagram.Default)
	l, _ := NewLayout(big, 10, 10)
	s.Spawn(big, l)

	small := diagram.MustParse("0")
	l, _ = NewLayout(small, 10, 10)
	assert.Equal(t, 1, s.Spawn(small, l))
	assert.Len(t, ecs.Markers, 1)
	for id := range ecs.Markers {
		assert.Equal(t, config.CenterColor, ecs.Renderables[id].Color)
	}
}

func TestMovement_UsesSharedPhase(t *testing.T) {
	ecs := entity.NewECS()
	d := diagram.MustParse("→0")
	l, _ := NewLayout(d, 10, 10)
	NewSpawnSystem(ecs, nil, nil, 2).Spawn(d, l)
	ms := NewMovementSystem(ecs, l)

	ms.Update(0)
	for id, m := range ecs.Markers {
		pos := ecs.Positions[id]
		switch m.Directive {
		case diagram.Right:
			assert.Equal(t, -10.0, pos.X) // якорь -5, полуширина 5
			assert.Equal(t, 0.0, pos.Y)
		case diagram.Center:
			assert.Equal(t, 5.0, pos.X)
		}
	}

	ms.Update(0.5)
	for id, m := range ecs.Markers {
		assert.Equal(t, m.AnchorX, ecs.Positions[id].X, m.Directive.String())
	}
}

func TestSpawn_MarkerIDsFollowRowMajorOrder(t *testing.T) {
	ecs := entity.NewECS()
	d := diagram.MustParse("┌→┐\n↑ ↓\n└←┘")
	l, err := NewLayout(d, 20, 20)
	require.NoError(t, err)
	NewSpawnSystem(ecs, nil, nil, 5).Spawn(d, l)

	var cells [][2]int
	for _, id := range ecs.MarkerIDs() {
		m := ecs.Markers[id]
		cells = append(cells, [2]int{m.Col, m.Row})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, cells)
}

func TestClock_PhaseWrapsAndPublishesCycles(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	cycles := &recorder{}
	dispatcher.Subscribe(cycles, event.CycleCompleted)
	clock := NewClockSystem(ecs, dispatcher, 0.5, 0.1)

	for i := 0; i < 12; i++ {
		clock.Advance(0.1)
	}
	assert.InDelta(t, 1.2, ecs.GameTime, 1e-9)
	assert.InDelta(t, 0.4, clock.Phase(), 1e-6)
	assert.Equal(t, 2, clock.Cycles())
	require.Len(t, cycles.got, 2)
	assert.Equal(t, 2, cycles.got[1].Cycle)
}

func TestClock_ClampsAndIgnoresNegative(t *testing.T) {
	ecs := entity.NewECS()
	clock := NewClockSystem(ecs, event.NewDispatcher(), 1, 0.06)

	clock.Advance(5)
	assert.InDelta(t, 0.06, ecs.GameTime, 1e-12)
	clock.Advance(-1)
	assert.InDelta(t, 0.06, ecs.GameTime, 1e-12)
}

func TestClock_FreezesOnPause(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	clock := NewClockSystem(ecs, dispatcher, 1, 0)

	dispatcher.Dispatch(event.Event{Type: event.Paused})
	clock.Advance(0.3)
	assert.True(t, clock.Frozen())
	assert.Equal(t, 0.0, ecs.GameTime)

	dispatcher.Dispatch(event.Event{Type: event.Resumed})
	clock.Advance(0.3)
	assert.InDelta(t, 0.3, ecs.GameTime, 1e-12)
}

func TestClock_SpeedMultiplier(t *testing.T) {
	ecs := entity.NewECS()
	clock := NewClockSystem(ecs, event.NewDispatcher(), 1, 0.05)

	clock.SetSpeed(4)
	clock.SetSpeed(0)
	assert.Equal(t, 4.0, clock.Speed())

	clock.Advance(1)
	assert.InDelta(t, 0.2, ecs.GameTime, 1e-12)
}

func TestLayout_Project(t *testing.T) {
	d := diagram.MustParse("00\n00")
	l, err := NewLayout(d, 50, 50)
	require.NoError(t, err)

	x, y := l.Project(motion.Vec{}, 800, 600)
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	// верхняя левая клетка оказывается выше и левее центра экрана
	x, y = l.Project(l.Anchor(0, 0), 800, 600)
	assert.Equal(t, float32(375), x)
	assert.Equal(t, float32(275), y)

	rx, ry, rw, rh := l.CellRect(0, 0, 800, 600)
	assert.Equal(t, []float32{350, 250, 50, 50}, []float32{rx, ry, rw, rh})
}
