package docproject_test

import (
	"testing"
	"time"

	docproject "github.com/entamburini/docproject"
)

func TestTimestamp_TimeRoundtrip(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 0, 250, time.UTC)
	ts := docproject.NewTimestamp(at)
	if ts.Seconds != at.Unix() || ts.Nanoseconds != 250 {
		t.Fatalf("unexpected split: %+v", ts)
	}
	if !ts.Time().Equal(at) {
		t.Fatalf("roundtrip mismatch: %v != %v", ts.Time(), at)
	}
}
