package region

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	if got := Normalize(" R1 "); got != "1" {
		t.Fatalf("unexpected normalized region: %q", got)
	}
	if got := Normalize("r2"); got != "2" {
		t.Fatalf("unexpected normalized region: %q", got)
	}
	if got := Normalize("Region 3"); got != "3" {
		t.Fatalf("unexpected normalized region: %q", got)
	}
	if got := Normalize("3"); got != "3" {
		t.Fatalf("unexpected normalized region: %q", got)
	}
	if got := Normalize("USA"); got != "" {
		t.Fatalf("expected invalid region to normalize to empty string, got %q", got)
	}
	if got := Normalize(" "); got != "" {
		t.Fatalf("expected empty region for blank input, got %q", got)
	}
}
