package dungeon

import (
	"strings"
	"testing"
)

func TestRenderText_HeaderAndDimensions(t *testing.T) {
	req := DefaultRequest()
	req.Width, req.Height, req.Seed = 11, 11, "render-test"

	results, err := Build(req)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	out := results.RenderText()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if !strings.Contains(lines[0], "render-test") {
		t.Errorf("header %q does not mention the seed", lines[0])
	}
	if len(lines) != results.Height()+1 {
		t.Fatalf("expected %d grid rows plus a header, got %d lines", results.Height(), len(lines)-1)
	}
	for _, row := range lines[1:] {
		if len(row) != results.Width() {
			t.Errorf("row %q has length %d, want %d", row, len(row), results.Width())
		}
	}
}
