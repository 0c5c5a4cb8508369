package core

// Bitmap is a lit/unlit mask of arbitrary size, typically rasterized text.
type Bitmap struct {
	W, H int
	bits []bool
}

// NewBitmap allocates an unlit bitmap. Negative dimensions are treated as zero.
func NewBitmap(w, h int) Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Bitmap{W: w, H: h, bits: make([]bool, w*h)}
}

// BitmapFromRows builds a bitmap from rows of '#'/'.' style strings. Any byte
// other than '.' and ' ' is lit. Short rows are padded unlit.
func BitmapFromRows(rows ...string) Bitmap {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	bm := NewBitmap(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] != '.' && r[x] != ' ' {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}

// Empty reports whether the bitmap has no area.
func (b Bitmap) Empty() bool { return b.W == 0 || b.H == 0 }

// At reports whether (x, y) is lit. Out of range coordinates are unlit.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.bits[y*b.W+x]
}

// Set lights or clears (x, y). Out of range coordinates are ignored.
func (b Bitmap) Set(x, y int, lit bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.bits[y*b.W+x] = lit
}

// Lit counts lit pixels.
func (b Bitmap) Lit() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}
