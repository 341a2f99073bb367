package floorplan

import (
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/ryochana/toh-jeen-npc-68v5/internal/model"
)

func TestSnap_Idempotent(t *testing.T) {
    points := []model.Position{
        {X: 52, Y: 143}, {X: 0, Y: 0}, {X: -33, Y: 981}, {X: 617, Y: 205},
    }
    for _, z := range []model.Zone{model.ZoneInside, model.ZoneOutside} {
        for _, p := range points {
            once := Snap(z, p)
            assert.Equal(t, once, Snap(z, once), "zone %s point %+v", z, p)
        }
    }
}

func TestSnap_SmallDragStaysInCell(t *testing.T) {
    // A drag from (50,140) to (52,143) rounds back to the same cell.
    got := Snap(model.ZoneInside, model.Position{X: 52, Y: 143})
    assert.Equal(t, model.Position{X: 50, Y: 140}, got)
}

func TestSnap_DefaultsAreFixedPoints(t *testing.T) {
    for _, tb := range Generate() {
        assert.Equal(t, tb.Default, Snap(tb.Zone, tb.Default), "table %d", tb.Number)
    }
}

func TestProposeMove_SmallDragIsNoOp(t *testing.T) {
    e := NewEngine()
    before := e.Positions()

    after := e.ProposeMove(1, 2, 3)

    assert.Equal(t, before, after)
}

func TestProposeMove_NoCollisionMovesOnlyTarget(t *testing.T) {
    e := NewEngine()
    before := e.Positions()

    // Drop table 1 well below the grid where nothing sits.
    after := e.ProposeMove(1, 0, 800)

    assert.Equal(t, model.Position{X: 50, Y: 940}, after[1])
    for n, p := range before {
        if n == 1 {
            continue
        }
        assert.Equal(t, p, after[n], "table %d must not move", n)
    }
}

func TestProposeMove_PushesCollidingTableClear(t *testing.T) {
    e := NewEngine()
    pre := e.Positions()[2]

    // Move table 1 exactly onto table 2's cell.
    after := e.ProposeMove(1, 70, 0)

    assert.Equal(t, model.Position{X: 120, Y: 140}, after[1])
    assert.NotEqual(t, pre, after[2])

    // The pushed table no longer overlaps the mover.
    dx := abs(after[1].X - after[2].X)
    dy := abs(after[1].Y - after[2].Y)
    assert.True(t, dx >= TableWidth || dy >= TableHeight,
        "table 2 still overlaps table 1: dx=%d dy=%d", dx, dy)

    // Pushed position is snapped on table 2's own grid.
    assert.Equal(t, after[2], Snap(model.ZoneInside, after[2]))
}

func TestProposeMove_TwoCollisionsResolvedIndependently(t *testing.T) {
    e := NewEngine()

    // Table 42 dragged into the inside zone lands off the inside grid
    // (outside grid is offset by 40 px mod 70), straddling tables 1 and 2.
    after := e.ProposeMove(42, -485, 0)

    assert.Equal(t, model.Position{X: 110, Y: 140}, after[42])
    // Table 1 pushed left-down, table 2 pushed right-down, each snapped.
    assert.Equal(t, model.Position{X: -20, Y: 220}, after[1])
    assert.Equal(t, model.Position{X: 190, Y: 220}, after[2])

    for _, n := range []int{1, 2} {
        dx := abs(after[42].X - after[n].X)
        dy := abs(after[42].Y - after[n].Y)
        assert.True(t, dx >= TableWidth || dy >= TableHeight,
            "table %d still overlaps the mover", n)
    }
}

func TestProposeMove_SinglePassLeavesSecondaryOverlaps(t *testing.T) {
    e := NewEngine()
    pre10 := e.Positions()[10]

    // Pushing table 2 parks it on table 10's cell; single-pass resolution
    // leaves table 10 where it was.
    after := e.ProposeMove(1, 70, 0)

    assert.Equal(t, model.Position{X: 190, Y: 220}, after[2])
    assert.Equal(t, pre10, after[10])
}

func TestProposeMove_UnknownTable(t *testing.T) {
    e := NewEngine()
    before := e.Positions()

    assert.Equal(t, before, e.ProposeMove(999, 50, 50))
}

func TestResetAll_RestoresDefaults(t *testing.T) {
    e := NewEngine()
    e.ProposeMove(1, 70, 0)
    e.ProposeMove(42, -485, 0)
    e.ProposeMove(17, 333, -40)

    after := e.ResetAll()

    for _, tb := range Generate() {
        assert.Equal(t, tb.Default, after[tb.Number], "table %d", tb.Number)
    }
}
