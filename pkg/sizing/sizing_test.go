package sizing

import "testing"

func TestProportionalDimension(t *testing.T) {
	t.Run("FitWithinBothBounds", func(t *testing.T) {
		w, h, ok := ProportionalDimension(400, 300, 800, 600)
		if !ok {
			t.Fatal("expected ok")
		}
		if w != 400 || h != 300 {
			t.Fatalf("expected 400x300, got %dx%d", w, h)
		}
	})

	t.Run("SmallerFactorWins", func(t *testing.T) {
		// 800x600 into 400x100: height factor binds.
		w, h, ok := ProportionalDimension(400, 100, 800, 600)
		if !ok {
			t.Fatal("expected ok")
		}
		if w != 133 || h != 100 {
			t.Fatalf("expected 133x100, got %dx%d", w, h)
		}
	})

	t.Run("ZeroWidthUsesHeightFactor", func(t *testing.T) {
		w, h, ok := ProportionalDimension(0, 300, 800, 600)
		if !ok {
			t.Fatal("expected ok")
		}
		if w != 400 || h != 300 {
			t.Fatalf("expected 400x300, got %dx%d", w, h)
		}
	})

	t.Run("NeverUpsamples", func(t *testing.T) {
		w, h, ok := ProportionalDimension(2000, 2000, 800, 600)
		if !ok {
			t.Fatal("expected ok")
		}
		if w > 800 || h > 600 {
			t.Fatalf("result %dx%d exceeds original 800x600", w, h)
		}
		if w != 800 || h != 600 {
			t.Fatalf("expected original size back, got %dx%d", w, h)
		}
	})

	t.Run("ClampingIsIdempotent", func(t *testing.T) {
		w1, h1, _ := ProportionalDimension(2000, 400, 800, 600)
		w2, h2, _ := ProportionalDimension(800, 400, 800, 600)
		if w1 != w2 || h1 != h2 {
			t.Fatalf("clamped result %dx%d differs from pre-clamped %dx%d", w1, h1, w2, h2)
		}
	})

	t.Run("RoundingHalfAwayFromZero", func(t *testing.T) {
		// 3x5 into 3x2: factor 0.4, 3*0.4 = 1.2 -> 1, 5*0.4 = 2.
		w, h, _ := ProportionalDimension(3, 2, 3, 5)
		if w != 1 || h != 2 {
			t.Fatalf("expected 1x2, got %dx%d", w, h)
		}
		// 5x3 into 2x3: factor 0.4, 5*0.4 = 2, 3*0.4 = 1.2 -> 1.
		w, h, _ = ProportionalDimension(2, 3, 5, 3)
		if w != 2 || h != 1 {
			t.Fatalf("expected 2x1, got %dx%d", w, h)
		}
		// Exact .5 rounds away from zero: factor 0.5, 7*0.5 = 3.5 -> 4.
		w, h, _ = ProportionalDimension(0, 3, 7, 6)
		if w != 4 || h != 3 {
			t.Fatalf("expected 4x3, got %dx%d", w, h)
		}
	})

	t.Run("AspectRatioPreserved", func(t *testing.T) {
		cases := [][4]int{
			{100, 100, 800, 600},
			{250, 777, 1024, 768},
			{50, 50, 640, 480},
		}
		for _, c := range cases {
			w, h, ok := ProportionalDimension(c[0], c[1], c[2], c[3])
			if !ok {
				t.Fatalf("expected ok for %v", c)
			}
			orig := float64(c[2]) / float64(c[3])
			got := float64(w) / float64(h)
			if got < orig*0.95 || got > orig*1.05 {
				t.Fatalf("aspect ratio drifted: orig %.3f got %.3f for %v", orig, got, c)
			}
		}
	})

	t.Run("NoOriginalDimensions", func(t *testing.T) {
		if _, _, ok := ProportionalDimension(100, 100, 0, 0); ok {
			t.Fatal("expected not ok without original dimensions")
		}
	})
}

func TestNormalizeSize(t *testing.T) {
	t.Run("Malformed", func(t *testing.T) {
		for _, raw := range []string{"abcx123", "100x", "x100", "100X200", " 100x200", "100x200 ", "-1x100", ""} {
			n := NormalizeSize(raw, 800, 600, true)
			if n.Kind != SizeInvalid {
				t.Errorf("expected SizeInvalid for %q, got %v", raw, n.Kind)
			}
		}
	})

	t.Run("ZeroDimension", func(t *testing.T) {
		for _, raw := range []string{"100x0", "0x100", "0x0"} {
			n := NormalizeSize(raw, 800, 600, true)
			if n.Kind != SizeInvalid {
				t.Errorf("expected SizeInvalid for %q, got %v", raw, n.Kind)
			}
		}
	})

	t.Run("NotResizable", func(t *testing.T) {
		n := NormalizeSize("100x100", 0, 0, false)
		if n.Kind != SizeNoResize {
			t.Fatalf("expected SizeNoResize, got %v", n.Kind)
		}
	})

	t.Run("AtLeastOriginal", func(t *testing.T) {
		for _, raw := range []string{"800x600", "10000x10000"} {
			n := NormalizeSize(raw, 800, 600, true)
			if n.Kind != SizeNoResize {
				t.Errorf("expected SizeNoResize for %q, got %v", raw, n.Kind)
			}
		}
	})

	t.Run("ValidSmaller", func(t *testing.T) {
		n := NormalizeSize("50x50", 800, 600, true)
		if n.Kind != SizeResized {
			t.Fatalf("expected SizeResized, got %v", n.Kind)
		}
		if n.Width != 50 || n.Height != 50 {
			t.Fatalf("expected 50x50, got %dx%d", n.Width, n.Height)
		}
		if n.Segment() != "50x50" {
			t.Fatalf("expected segment 50x50, got %s", n.Segment())
		}
	})

	t.Run("OneDimensionSmaller", func(t *testing.T) {
		// Width below the original is enough to request a rendition.
		n := NormalizeSize("400x600", 800, 600, true)
		if n.Kind != SizeResized {
			t.Fatalf("expected SizeResized, got %v", n.Kind)
		}
	})
}
