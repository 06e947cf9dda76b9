package cdf

import "testing"

func TestQIndexContextBuckets(t *testing.T) {
	cases := []struct {
		q    int
		want int
	}{
		{1, 0}, {20, 0}, {21, 1}, {60, 1}, {61, 2}, {120, 2}, {121, 3}, {255, 3},
	}
	for _, c := range cases {
		if got := QIndexContext(c.q); got != c.want {
			t.Errorf("QIndexContext(%d) = %d, want %d", c.q, got, c.want)
		}
	}
}

func isMonotonic(cdf []uint16) bool {
	prev := uint16(0)
	for _, v := range cdf {
		if v < prev || v > 32768 {
			return false
		}
		prev = v
	}
	return true
}

func TestPartitionCdfsAreMonotonic(t *testing.T) {
	tables := [][9]uint16{
		Partition64x64[0], Partition64x64[1], Partition64x64[2], Partition64x64[3],
		Partition32x32[0], Partition32x32[1], Partition32x32[2], Partition32x32[3],
		Partition16x16[0], Partition16x16[1], Partition16x16[2], Partition16x16[3],
	}
	for i, tbl := range tables {
		if !isMonotonic(tbl[:]) {
			t.Errorf("partition table %d is not a valid non-decreasing CDF: %v", i, tbl)
		}
	}
	for ctx, tbl := range Partition8x8 {
		if !isMonotonic(tbl[:]) {
			t.Errorf("Partition8x8[%d] is not a valid CDF: %v", ctx, tbl)
		}
	}
}

func TestLeafCdfsAreMonotonic(t *testing.T) {
	if !isMonotonic(YMode) {
		t.Errorf("YMode is not a valid CDF")
	}
	if !isMonotonic(UVMode) {
		t.Errorf("UVMode is not a valid CDF")
	}
	for ctx, s := range Skip {
		if !isMonotonic(s) {
			t.Errorf("Skip[%d] is not a valid CDF", ctx)
		}
	}
}

func TestCoeffBaseEobWorkingEntryMatchesDefaults(t *testing.T) {
	// qctx 3, 8x8, luma, last-coefficient context 0.
	got := CoeffBaseEob[3][1][0][0]
	want := []uint16{21457, 31043}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("CoeffBaseEob[3][1][0][0] = %v, want %v", got, want)
	}
}

func TestDcSignWorkingRowMatchesDefaults(t *testing.T) {
	got := DcSign[3][0]
	want := [3]uint16{16000, 13056, 18816}
	if got != want {
		t.Errorf("DcSign[3][0] = %v, want %v", got, want)
	}
}

func TestAllZeroLeadingEntryMatchesDefaults(t *testing.T) {
	if got := AllZero[0][0][0]; got != 31849 {
		t.Errorf("AllZero[0][0][0] = %d, want 31849", got)
	}
}

func TestPartition64x64Context0MatchesDefaults(t *testing.T) {
	want := [9]uint16{20137, 21547, 23078, 29566, 29837, 30261, 30524, 30892, 31724}
	if Partition64x64[0] != want {
		t.Errorf("Partition64x64[0] = %v, want %v", Partition64x64[0], want)
	}
}
