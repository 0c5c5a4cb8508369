package core

import "testing"

func TestWrap(t *testing.T) {
	g := NewByteGrid(5, 3)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 4, 2},
		{5, 3, 0, 0},
		{-6, 7, 4, 1},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestSetWrapsAndClear(t *testing.T) {
	g := NewByteGrid(4, 4)
	g.Set(-1, 0, 1)
	if g.Cells()[g.Index(3, 0)] != 1 || g.At(3, 4) != 1 {
		t.Fatal("Set(-1,0) did not land on column 3")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

func TestBitmapFromRows(t *testing.T) {
	bm := BitmapFromRows("#.", ".##")
	if bm.W != 3 || bm.H != 2 {
		t.Fatalf("bitmap %dx%d, expected 3x2", bm.W, bm.H)
	}
	if !bm.At(0, 0) || bm.At(1, 0) || bm.At(2, 0) || !bm.At(2, 1) {
		t.Fatal("bitmap pixels do not match the rows")
	}
	if bm.Lit() != 3 {
		t.Fatalf("%d lit pixels, expected 3", bm.Lit())
	}
	if bm.At(-1, 0) || bm.At(0, 5) {
		t.Fatal("out of range pixels should be unlit")
	}
	var zero Bitmap
	if !zero.Empty() || zero.At(0, 0) {
		t.Fatal("zero bitmap should be empty and unlit")
	}
}
