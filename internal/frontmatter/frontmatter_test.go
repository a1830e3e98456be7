package frontmatter

import (
	"strings"
	"testing"
)

func TestApplyOverridesSetThenRemove(t *testing.T) {
	base := map[string]any{"title": "Old", "draft": true}
	result := Apply(base, &Override{
		Set:    map[string]any{"title": "New", "pagetitle": "New"},
		Remove: []string{"draft"},
	})

	if result["title"] != "New" {
		t.Fatalf("title = %v, want New", result["title"])
	}
	if result["pagetitle"] != "New" {
		t.Fatalf("pagetitle = %v, want New", result["pagetitle"])
	}
	if _, ok := result["draft"]; ok {
		t.Fatalf("draft should have been removed")
	}
	if base["title"] != "Old" {
		t.Fatalf("base map was mutated")
	}
}

func TestApplyNilOverridesReturnsCopy(t *testing.T) {
	base := map[string]any{"title": "Old"}
	result := Apply(base, nil)
	result["title"] = "Mutated"
	if base["title"] != "Old" {
		t.Fatalf("base map was mutated through returned copy")
	}
}

func TestRenderSortsKeys(t *testing.T) {
	fm := map[string]any{"title": "Plot Functions", "pagetitle": "plot"}
	out, err := Render(fm, "# body\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	wantOrder := []string{"pagetitle:", "title:"}
	idx := 0
	for _, line := range strings.Split(out, "\n") {
		if idx < len(wantOrder) && strings.HasPrefix(line, wantOrder[idx]) {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("keys not in sorted order in output:\n%s", out)
	}
	if !strings.HasPrefix(out, "---\n") {
		t.Fatalf("missing opening fence:\n%s", out)
	}
	if !strings.HasSuffix(out, "# body\n") {
		t.Fatalf("missing body:\n%s", out)
	}
}

func TestRenderEmptyFrontmatterStillFences(t *testing.T) {
	out, err := Render(nil, "content")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "---\n---\ncontent" {
		t.Fatalf("got %q", out)
	}
}
