// Package sizing contains the pure geometry rules for media renditions:
// proportional downscale computation and validation of user-supplied
// "WxH" size strings. No I/O happens here.
package sizing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// sizeRegexp matches the only accepted size parameter shape, e.g. "400x300".
var sizeRegexp = regexp.MustCompile(`^\d+x\d+$`)

// Kind classifies the outcome of NormalizeSize.
type Kind int

const (
	// SizeInvalid means the request must be rejected: malformed string or a
	// zero dimension. No rendition may be produced or whitelisted for it.
	SizeInvalid Kind = iota
	// SizeNoResize means the original should be served unmodified, either
	// because the file is not resizable or because the requested size is at
	// least as large as the original in both dimensions.
	SizeNoResize
	// SizeResized carries a validated target size smaller than the original.
	SizeResized
)

// Normalized is the result of validating a raw size string.
type Normalized struct {
	Kind   Kind
	Width  int
	Height int
}

// ProportionalDimension computes the target dimensions for scaling an
// origW x origH image to fit within reqW x reqH while preserving aspect
// ratio. The result never exceeds the original: requested dimensions
// larger than the original are clamped down first, so upsampling is
// impossible. A requested dimension of zero means "unbounded" and the
// other dimension drives the scale factor alone.
//
// Rounding is half-away-from-zero (math.Round); tests pin this choice.
// ok is false when the original dimensions are unknown.
func ProportionalDimension(reqW, reqH, origW, origH int) (w, h int, ok bool) {
	if origW == 0 && origH == 0 {
		return 0, 0, false
	}

	if reqW > origW || reqH > origH {
		reqW = min(reqW, origW)
		reqH = min(reqH, origH)
	}

	wFactor := float64(reqW) / float64(origW)
	hFactor := float64(reqH) / float64(origH)

	var factor float64
	switch {
	case wFactor == 0:
		factor = hFactor
	case hFactor == 0:
		factor = wFactor
	default:
		factor = math.Min(wFactor, hFactor)
	}

	return int(math.Round(float64(origW) * factor)), int(math.Round(float64(origH) * factor)), true
}

// NormalizeSize validates a raw "WxH" size string against the original
// dimensions. Every input maps to exactly one Kind:
//
//	malformed string or zero dimension -> SizeInvalid
//	file not resizable                 -> SizeNoResize
//	both dimensions >= original        -> SizeNoResize
//	otherwise                          -> SizeResized with the parsed size
func NormalizeSize(raw string, origW, origH int, resizable bool) Normalized {
	if !resizable {
		return Normalized{Kind: SizeNoResize}
	}
	if !sizeRegexp.MatchString(raw) {
		return Normalized{Kind: SizeInvalid}
	}

	parts := strings.SplitN(raw, "x", 2)
	w, _ := strconv.Atoi(parts[0])
	h, _ := strconv.Atoi(parts[1])

	if w == 0 || h == 0 {
		return Normalized{Kind: SizeInvalid}
	}
	if w >= origW && h >= origH {
		return Normalized{Kind: SizeNoResize}
	}
	return Normalized{Kind: SizeResized, Width: w, Height: h}
}

// Segment renders a validated size back into its canonical "WxH" form.
func (n Normalized) Segment() string {
	return strconv.Itoa(n.Width) + "x" + strconv.Itoa(n.Height)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
