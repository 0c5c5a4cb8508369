package text

import (
	"testing"
)

func TestBitmapDimensions(t *testing.T) {
	r := New(1)
	bm := r.Bitmap("find")
	if bm.W != 28 || bm.H != 13 {
		t.Fatalf("bitmap %dx%d, expected 28x13", bm.W, bm.H)
	}
	if r.Width("find") != bm.W {
		t.Fatalf("Width %d disagrees with bitmap width %d", r.Width("find"), bm.W)
	}
	if bm.Lit() == 0 {
		t.Fatal("rasterized word has no lit pixels")
	}
}

func TestBitmapScale(t *testing.T) {
	one := New(1).Bitmap("No")
	two := New(2).Bitmap("No")
	if two.W != one.W*2 || two.H != one.H*2 {
		t.Fatalf("scaled bitmap %dx%d, expected %dx%d", two.W, two.H, one.W*2, one.H*2)
	}
	if two.Lit() != one.Lit()*4 {
		t.Fatalf("scaled lit count %d, expected %d", two.Lit(), one.Lit()*4)
	}
	for y := 0; y < one.H; y++ {
		for x := 0; x < one.W; x++ {
			if one.At(x, y) != two.At(2*x+1, 2*y+1) {
				t.Fatalf("pixel (%d,%d) not magnified", x, y)
			}
		}
	}
}

func TestBlankText(t *testing.T) {
	r := New(2)
	if bm := r.Bitmap("   "); bm.Lit() != 0 {
		t.Fatalf("spaces rasterized %d lit pixels", bm.Lit())
	}
	if bm := r.Bitmap(""); !bm.Empty() {
		t.Fatal("empty string should give an empty bitmap")
	}
}

func TestGlyphsDiffer(t *testing.T) {
	r := New(1)
	a, b := r.Bitmap("i"), r.Bitmap("o")
	same := true
	for y := 0; y < a.H && same; y++ {
		for x := 0; x < a.W; x++ {
			if a.At(x, y) != b.At(x, y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different glyphs produced identical bitmaps")
	}
}

func TestLastWord(t *testing.T) {
	cases := []struct {
		line  string
		word  string
		start int
	}{
		{"No flaws to find", "find", 12},
		{"find", "find", 0},
		{"There is no design ", "design", 12},
	}
	for _, tc := range cases {
		word, start := LastWord(tc.line)
		if word != tc.word || start != tc.start {
			t.Fatalf("LastWord(%q) = %q, %d; expected %q, %d", tc.line, word, start, tc.word, tc.start)
		}
	}
}
