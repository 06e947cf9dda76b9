package array2d

import "testing"

func TestFillRegionAndAt(t *testing.T) {
	a := New[int](4, 4)
	a.FillRegion(1, 1, 2, 2, 7)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := 0
			if r >= 1 && r < 3 && c >= 1 && c < 3 {
				want = 7
			}
			if got := a.At(r, c); got != want {
				t.Fatalf("At(%d,%d) = %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestFillRegionOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-bounds fill region")
		}
	}()
	a := New[int](4, 4)
	a.FillRegion(3, 3, 2, 2, 1)
}

func TestTransposeRoundTrip(t *testing.T) {
	a := NewWith[int](2, 3, func(row, col int) int { return row*10 + col })
	b := a.Transpose()

	if b.Rows() != 3 || b.Cols() != 2 {
		t.Fatalf("transpose shape = (%d,%d), want (3,2)", b.Rows(), b.Cols())
	}
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.At(r, c) != b.At(c, r) {
				t.Fatalf("transpose mismatch at (%d,%d)", r, c)
			}
		}
	}

	c := b.Transpose()
	for r := 0; r < a.Rows(); r++ {
		for col := 0; col < a.Cols(); col++ {
			if a.At(r, col) != c.At(r, col) {
				t.Fatalf("double transpose mismatch at (%d,%d)", r, col)
			}
		}
	}
}

func TestMap(t *testing.T) {
	a := NewWith[int](3, 3, func(row, col int) int { return 1 })
	a.Map(func(row, col, v int) int { return v + row + col })

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if want := 1 + r + c; a.At(r, c) != want {
				t.Fatalf("Map result at (%d,%d) = %d, want %d", r, c, a.At(r, c), want)
			}
		}
	}
}

func TestRowSliceAliasesBackingStore(t *testing.T) {
	a := New[int](2, 2)
	row := a.Row(0)
	row[1] = 42
	if got := a.At(0, 1); got != 42 {
		t.Fatalf("Row slice mutation not reflected: got %d, want 42", got)
	}
}

func TestClone(t *testing.T) {
	a := NewWith[int](2, 2, func(row, col int) int { return row + col })
	b := a.Clone()
	b.Set(0, 0, 99)
	if a.At(0, 0) == 99 {
		t.Fatal("Clone shares backing storage with original")
	}
}
