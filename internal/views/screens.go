package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID       string
	Name     string
	Done     bool
	DueLabel string
	DueState string
	Tone     string
}

type ListPanelData struct {
	Title        string
	Emoji        string
	Filter       string
	QuickAddView string
	Capture      bool
	Items        []TaskItemData
	Cursor       int
}

type CardItemData struct {
	ID   string
	Name string
}

type BoardColumnData struct {
	Stage string
	Cards []CardItemData
}

type BoardPanelData struct {
	Title       string
	Emoji       string
	Columns     []BoardColumnData
	StageCursor int
	CardCursor  int
}

type FeedEntryData struct {
	Title  string
	Body   string
	Urgent bool
}

type SummaryData struct {
	Total     int
	Pending   int
	Overdue   int
	Cards     int
	CardsDone int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", data.Emoji, data.Title))
	if data.Filter != "" && data.Filter != "all" {
		b.WriteString(fmt.Sprintf(" [%s]", data.Filter))
	}
	b.WriteString("\n")
	if data.Capture {
		b.WriteString(data.QuickAddView + "\n")
	}
	b.WriteString("actions: [a]add [space]done [e]edit [d]delete [f]filter\n")
	if len(data.Items) == 0 {
		b.WriteString("  (empty)")
		return strings.TrimSpace(b.String())
	}
	for i, item := range data.Items {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		check := "[ ]"
		if item.Done {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", cursor, check, item.Name)
		if item.DueLabel != "" {
			line += " due:" + item.DueLabel
		}
		if item.Tone != "" {
			line += " ♪" + item.Tone
		}
		b.WriteString(styleTaskLine(line, item) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func styleTaskLine(line string, item TaskItemData) string {
	switch {
	case item.Done:
		return doneStyle.Render(line)
	case item.DueState == "overdue":
		return overdueStyle.Render(line)
	case item.DueState == "due_soon":
		return dueSoonStyle.Render(line)
	default:
		return line
	}
}

func RenderBoardPanel(data BoardPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", data.Emoji, data.Title))
	b.WriteString("actions: [a]add [h/l]stage [j/k]card [H/L]move [d]delete\n")
	for ci, col := range data.Columns {
		marker := " "
		if ci == data.StageCursor {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("\n%s %s (%d):\n", marker, strings.ToUpper(col.Stage), len(col.Cards)))
		if len(col.Cards) == 0 {
			b.WriteString("    (none)\n")
			continue
		}
		for i, card := range col.Cards {
			cursor := " "
			if ci == data.StageCursor && i == data.CardCursor {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", cursor, card.Name))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderFeed(entries []FeedEntryData) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s", e.Title, e.Body)
		if e.Urgent {
			line = overdueStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderSummary(data SummaryData) string {
	return fmt.Sprintf("tasks: %d (%d pending, %d overdue) | cards: %d (%d done)",
		data.Total, data.Pending, data.Overdue, data.Cards, data.CardsDone)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

// RenderHelpPanel renders the key bindings as a markdown document so
// the help screen gets glamour styling, with the bubbles help line
// appended underneath.
func RenderHelpPanel(data HelpPanelData) string {
	md := fmt.Sprintf("# help: %s\n\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
	)
	return RenderMarkdown(md) + "\n" + data.HelpView
}
