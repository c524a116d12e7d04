package contract

import (
	"testing"
)

// FuzzParseClock fuzzes the clock-time parser with arbitrary text.
func FuzzParseClock(f *testing.F) {
	seeds := []string{
		"09:00",
		"9:05",
		"23:59",
		"0:00",
		"24:00",
		"12:60",
		"12",
		"",
		"::",
		"ab:cd",
		"  9:00",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		c, err := ParseClock(s)
		if err != nil {
			return
		}

		// Accepted values are already canonical: in range, and
		// re-parsing the formatted form gives the same minute back.
		if c < 0 || c > 1439 {
			t.Fatalf("ParseClock(%q) = %d, out of range", s, c)
		}
		again, err := ParseClock(c.String())
		if err != nil {
			t.Fatalf("re-parsing %q (from %q) failed: %v", c.String(), s, err)
		}
		if again != c {
			t.Fatalf("round trip mismatch for %q: %d != %d", s, again, c)
		}
	})
}
