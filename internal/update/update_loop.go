package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/scheduler"
	"github.com/sandeepkv93/tingtong/internal/views"
)

// waitForReminderCmd parks until the engine emits a fire, then feeds
// it back into the update loop.
func waitForReminderCmd(ch <-chan scheduler.Fire) tea.Cmd {
	return func() tea.Msg {
		fire, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderFiredMsg{Fire: fire}
	}
}

func feedTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FeedTickMsg{} })
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{feedTickCmd()}
	if m.App != nil {
		cmds = append(cmds, waitForReminderCmd(m.App.Engine().C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.FocusMsg:
		if m.Monitor != nil {
			m.Monitor.OnVisibilityChange(true)
		}
		return m, nil
	case tea.BlurMsg:
		if m.Monitor != nil {
			m.Monitor.OnVisibilityChange(false)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case ReminderFiredMsg:
		if m.App != nil {
			m.App.HandleFire(m.ctx, typed.Fire)
			m.Status = StatusBar{Text: "reminder fired: " + typed.Fire.TaskID}
			return m, waitForReminderCmd(m.App.Engine().C())
		}
		return m, nil
	case FeedTickMsg:
		return m, feedTickCmd()
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Capture {
		return m.handleCaptureKey(msg), nil
	}

	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		if m.Monitor != nil {
			m.Monitor.Shutdown()
		}
		return m, tea.Quit
	case m.Keys.Palette:
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Lists:
		m.CurrentView = ViewLists
		return m, nil
	case m.Keys.Board:
		m.CurrentView = ViewBoard
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "a":
		m.Capture = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		return m, nil
	case "x":
		// Dismiss the oldest active feed entry; Active prunes
		// expired ones first so index 0 is live.
		feed := m.App.Feed()
		if len(feed.Active(m.now())) > 0 {
			feed.Dismiss(0)
		}
		return m, nil
	}

	if m.CurrentView == ViewBoard {
		return m.handleBoardKey(msg), nil
	}
	return m.handleListKey(msg), nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		} else {
			status = "status: " + m.Status.Text
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewBoard:
		leftPane = m.renderBoardView()
	default:
		leftPane = m.renderListView()
	}
	rightPane := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()) + m.renderHelpIfVisible()

	s := m.App.Summarize()
	header := fmt.Sprintf("ting tong | view: %s | %s", m.CurrentView, views.RenderSummary(views.SummaryData{
		Total:     s.Total,
		Pending:   s.Pending,
		Overdue:   s.Overdue,
		Cards:     s.Cards,
		CardsDone: s.CardsDone,
	}))

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Feed:       m.renderFeedView(),
		Footer: fmt.Sprintf("keys: %s lists | %s board | tab next | a add | %s cmd | %s help | %s quit",
			m.Keys.Lists, m.Keys.Board, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderFeedView() string {
	active := m.App.Feed().Active(m.now())
	entries := make([]views.FeedEntryData, 0, len(active))
	for _, e := range active {
		entries = append(entries, views.FeedEntryData{Title: e.Title, Body: e.Body, Urgent: e.Urgent})
	}
	return views.RenderFeed(entries)
}

func dueLabel(t model.Task, now time.Time) string {
	if t.Due == nil {
		return ""
	}
	d := t.Due.Sub(now).Round(time.Minute)
	if d < 0 {
		return fmt.Sprintf("-%s", (-d).String())
	}
	return d.String()
}
