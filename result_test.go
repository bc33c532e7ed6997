package curvefit

import "testing"

func TestFlattenSingleSegmentBoundaryMirror(t *testing.T) {
	c := line2DCubic(0, 0, 3, 0)
	res := flatten([]*Cubic{c}, 2, 0, true)

	if res.KnotCount != 2 {
		t.Fatalf("KnotCount = %d, want 2", res.KnotCount)
	}
	if res.SegmentCount() != 1 {
		t.Errorf("SegmentCount() = %d, want 1", res.SegmentCount())
	}

	left0, anchor0, right0 := res.Knot(0)
	if !vecEqual(anchor0, c.P0, epsilon) {
		t.Errorf("knot0 anchor = %v, want %v", anchor0, c.P0)
	}
	if !vecEqual(right0, c.P1, epsilon) {
		t.Errorf("knot0 right handle = %v, want %v", right0, c.P1)
	}
	wantLeft0 := []float64{2*c.P0[0] - c.P1[0], 2*c.P0[1] - c.P1[1]}
	if !vecEqual(left0, wantLeft0, epsilon) {
		t.Errorf("knot0 left handle (mirrored) = %v, want %v", left0, wantLeft0)
	}

	left1, anchor1, right1 := res.Knot(1)
	if !vecEqual(anchor1, c.P3, epsilon) {
		t.Errorf("knot1 anchor = %v, want %v", anchor1, c.P3)
	}
	if !vecEqual(left1, c.P2, epsilon) {
		t.Errorf("knot1 left handle = %v, want %v", left1, c.P2)
	}
	wantRight1 := []float64{2*c.P3[0] - c.P2[0], 2*c.P3[1] - c.P2[1]}
	if !vecEqual(right1, wantRight1, epsilon) {
		t.Errorf("knot1 right handle (mirrored) = %v, want %v", right1, wantRight1)
	}

	if res.OrigIndex[0] != 0 || res.OrigIndex[1] != int(c.OrigSpan) {
		t.Errorf("OrigIndex = %v, want [0, %d]", res.OrigIndex, c.OrigSpan)
	}
}

func TestFlattenInteriorKnotSharesHandles(t *testing.T) {
	a := line2DCubic(0, 0, 1, 0)
	a.OrigSpan = 1
	b := line2DCubic(1, 0, 2, 0)
	b.OrigSpan = 1
	res := flatten([]*Cubic{a, b}, 2, 5, true)

	if res.KnotCount != 3 {
		t.Fatalf("KnotCount = %d, want 3", res.KnotCount)
	}
	left, anchor, right := res.Knot(1)
	if !vecEqual(anchor, a.P3, epsilon) || !vecEqual(anchor, b.P0, epsilon) {
		t.Errorf("interior anchor = %v, want shared endpoint %v", anchor, a.P3)
	}
	if !vecEqual(left, a.P2, epsilon) {
		t.Errorf("interior left handle = %v, want %v", left, a.P2)
	}
	if !vecEqual(right, b.P1, epsilon) {
		t.Errorf("interior right handle = %v, want %v", right, b.P1)
	}
	if res.OrigIndex[0] != 5 || res.OrigIndex[1] != 6 || res.OrigIndex[2] != 7 {
		t.Errorf("OrigIndex = %v, want [5,6,7]", res.OrigIndex)
	}
}

func TestFlattenEmptyList(t *testing.T) {
	res := flatten(nil, 2, 0, true)
	if res.KnotCount != 0 || res.SegmentCount() != 0 {
		t.Errorf("flatten(nil) should be a zero-value result, got KnotCount=%d", res.KnotCount)
	}
}

func TestMirrorReflection(t *testing.T) {
	dst := make([]float64, 2)
	mirror(dst, []float64{1, 1}, []float64{0, 0}, 2)
	if !vecEqual(dst, []float64{2, 2}, epsilon) {
		t.Errorf("mirror = %v, want (2,2)", dst)
	}
}
