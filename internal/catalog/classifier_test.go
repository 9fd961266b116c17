package catalog

import "testing"

func TestClassifierSkipsNoiseLines(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	noise := []string{
		"======================================",
		"PS Plus 12 Month",
		"3 months account with games",
		"سلام دوستان",
		"1) PS GameShare",
		"http://example.com/listing",
		"!!??--",
		"released 12.4.2025",
		"💰Price PS4: 500",
	}
	for _, line := range noise {
		if !c.Skip(line) {
			t.Fatalf("expected line to be skipped: %q", line)
		}
	}
}

func TestClassifierKeepsTitles(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	titles := []string{
		"FIFA 21 Champions",
		"DAYS GONE",
		"The Last of Us Part II",
		"Ghost of Tsushima",
	}
	for _, line := range titles {
		if c.Skip(line) {
			t.Fatalf("expected line to survive: %q", line)
		}
	}
}

func TestFoldLineStripsMarksAndLowercases(t *testing.T) {
	t.Parallel()

	if got := FoldLine("Café NOËL"); got != "cafe noel" {
		t.Fatalf("unexpected folded line: %q", got)
	}
	if got := FoldLine("Plain Title"); got != "plain title" {
		t.Fatalf("unexpected folded line: %q", got)
	}
}
