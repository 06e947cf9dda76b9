package modeinfo

import "testing"

func TestNewGridIsZeroInitialized(t *testing.T) {
	g := NewGrid(64, 64)
	if g.Rows() != 16 || g.Cols() != 16 {
		t.Fatalf("grid size = %dx%d, want 16x16", g.Rows(), g.Cols())
	}
	info := g.At(0, 0)
	if info.LevelCtx != [3]uint8{0, 0, 0} || info.DCSign != [3]int8{0, 0, 0} {
		t.Fatalf("fresh cell = %+v, want all zero", info)
	}
}

func TestAboveAndLeftReportAbsenceAtOrigin(t *testing.T) {
	g := NewGrid(64, 64)
	if _, ok := g.Above(0, 0); ok {
		t.Fatal("Above(0,0) should not exist")
	}
	if _, ok := g.Left(0, 0); ok {
		t.Fatal("Left(0,0) should not exist")
	}
	if _, ok := g.Above(1, 0); !ok {
		t.Fatal("Above(1,0) should exist")
	}
	if _, ok := g.Left(0, 1); !ok {
		t.Fatal("Left(0,1) should exist")
	}
}

func TestFillBlockCoversWholeRegion(t *testing.T) {
	g := NewGrid(64, 64)
	want := Info{LevelCtx: [3]uint8{5, 0, 0}, DCSign: [3]int8{1, 0, 0}}
	g.FillBlock(2, 2, 2, 2, want)

	for r := 2; r < 4; r++ {
		for c := 2; c < 4; c++ {
			if got := g.At(r, c); got != want {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", r, c, got, want)
			}
		}
	}
	if g.At(1, 2) != (Info{}) {
		t.Fatal("FillBlock wrote outside its region")
	}
}
