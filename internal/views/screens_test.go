package views

import (
	"strings"
	"testing"
)

func TestRenderHelpPanelCarriesBindings(t *testing.T) {
	out := RenderHelpPanel(HelpPanelData{
		CurrentView: "Lists",
		Bindings:    []string{"- a: quick add", "- d: delete"},
		HelpView:    "short help",
	})
	for _, want := range []string{"quick add", "delete", "short help"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if got := RenderMarkdown("   "); got != "" {
		t.Fatalf("blank markdown should render empty, got %q", got)
	}
}

func TestRenderListPanelMarksCursorAndDone(t *testing.T) {
	out := RenderListPanel(ListPanelData{
		Title: "Inbox",
		Emoji: "📥",
		Items: []TaskItemData{
			{ID: "t1", Name: "first", Done: true},
			{ID: "t2", Name: "second", DueState: "overdue", DueLabel: "-5m"},
		},
		Cursor: 1,
	})
	if !strings.Contains(out, "[x] first") {
		t.Fatalf("done task not checked:\n%s", out)
	}
	if !strings.Contains(out, "second") || !strings.Contains(out, "due:-5m") {
		t.Fatalf("overdue task not rendered:\n%s", out)
	}
}

func TestRenderBoardPanelColumns(t *testing.T) {
	out := RenderBoardPanel(BoardPanelData{
		Title: "Main Board",
		Emoji: "🗂️",
		Columns: []BoardColumnData{
			{Stage: "backlog", Cards: []CardItemData{{ID: "c1", Name: "design"}}},
			{Stage: "todo"},
		},
		StageCursor: 0,
		CardCursor:  0,
	})
	if !strings.Contains(out, "BACKLOG (1)") || !strings.Contains(out, "TODO (0)") {
		t.Fatalf("columns not rendered:\n%s", out)
	}
	if !strings.Contains(out, "design") {
		t.Fatalf("card missing:\n%s", out)
	}
}
