package cachekey

import (
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		ts := time.Unix(1700000000, 0)
		if Key(ts) != Key(ts) {
			t.Fatal("expected identical keys for identical timestamps")
		}
	})

	t.Run("KnownValue", func(t *testing.T) {
		// 1700000000 reversed is 0000000071 -> 00/00/000071.
		got := Key(time.Unix(1700000000, 0))
		if got != "00/00/000071" {
			t.Fatalf("expected 00/00/000071, got %s", got)
		}
	})

	t.Run("ChangesEverySecond", func(t *testing.T) {
		a := Key(time.Unix(1700000000, 0))
		b := Key(time.Unix(1700000001, 0))
		if a == b {
			t.Fatal("expected different keys for different seconds")
		}
	})

	t.Run("SubSecondIgnored", func(t *testing.T) {
		a := Key(time.Unix(1700000000, 0))
		b := Key(time.Unix(1700000000, 500_000_000))
		if a != b {
			t.Fatal("expected identical keys within the same second")
		}
	})

	t.Run("SegmentShape", func(t *testing.T) {
		parts := strings.Split(Key(time.Now()), "/")
		if len(parts) != 3 {
			t.Fatalf("expected 3 segments, got %d", len(parts))
		}
		if len(parts[0]) != 2 || len(parts[1]) != 2 {
			t.Fatalf("expected leading segments of length 2, got %q", parts)
		}
	})

	t.Run("SmallTimestampPadded", func(t *testing.T) {
		// 123 left-pads to 000123, reversed 321000 -> 32/10/00.
		got := Key(time.Unix(123, 0))
		if got != "32/10/00" {
			t.Fatalf("expected 32/10/00, got %s", got)
		}
	})
}
