package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tingtong/internal/app"
	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/views"
)

func (m Model) visibleTasks() []model.Task {
	if m.Filter == "" || m.Filter == app.Filter(m.ActiveList) {
		return m.App.FilterTasks(app.Filter(m.ActiveList))
	}
	return m.App.FilterTasks(m.Filter)
}

func (m Model) handleListKey(msg tea.KeyMsg) Model {
	tasks := m.visibleTasks()
	switch msg.String() {
	case "j", "down":
		if m.ListCursor < len(tasks)-1 {
			m.ListCursor++
		}
	case "k", "up":
		if m.ListCursor > 0 {
			m.ListCursor--
		}
	case "tab":
		m.cycleList(1)
	case "shift+tab":
		m.cycleList(-1)
	case " ", "enter":
		if task, ok := m.selectedTask(tasks); ok {
			if err := m.App.ToggleTask(m.ctx, task.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			}
		}
	case "d":
		if task, ok := m.selectedTask(tasks); ok {
			if err := m.App.DeleteTask(m.ctx, task.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: "deleted: " + task.Name}
				if m.ListCursor > 0 {
					m.ListCursor--
				}
			}
		}
	case "e":
		if task, ok := m.selectedTask(tasks); ok {
			m.Capture = true
			m.EditingID = task.ID
			m.quickAddInput.SetValue(task.Name)
			m.quickAddInput.CursorEnd()
			m.quickAddInput.Focus()
		}
	case "f":
		m.cycleFilter()
	}
	return m
}

func (m Model) selectedTask(tasks []model.Task) (model.Task, bool) {
	if m.ListCursor < 0 || m.ListCursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.ListCursor], true
}

func (m *Model) cycleList(dir int) {
	lists := m.App.Lists()
	if len(lists) == 0 {
		return
	}
	idx := 0
	for i, c := range lists {
		if c.Key == m.ActiveList {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(lists)) % len(lists)
	m.ActiveList = lists[idx].Key
	m.ListCursor = 0
	m.Filter = app.Filter(m.ActiveList)
}

func (m *Model) cycleFilter() {
	order := []app.Filter{app.Filter(m.ActiveList), app.FilterAll, app.FilterToday, app.FilterWeek, app.FilterInbox}
	for i, f := range order {
		if m.Filter == f {
			m.Filter = order[(i+1)%len(order)]
			m.ListCursor = 0
			return
		}
	}
	m.Filter = app.FilterAll
	m.ListCursor = 0
}

// handleCaptureKey drives the quick-add input. Enter submits to the
// current view: a task on lists, a card on the board.
func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Capture = false
		m.EditingID = ""
		m.quickAddInput.Blur()
		return m
	case "enter":
		text := strings.TrimSpace(m.quickAddInput.Value())
		m.Capture = false
		m.quickAddInput.Blur()
		if text == "" {
			m.EditingID = ""
			return m
		}
		if m.EditingID != "" {
			id := m.EditingID
			m.EditingID = ""
			return m.submitEdit(id, text)
		}
		if m.CurrentView == ViewBoard {
			return m.submitCard(text)
		}
		return m.submitTask(text)
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	_ = cmd
	return m
}

func (m Model) submitTask(text string) Model {
	args := parseQuickAdd(text, m.ActiveList, m.now())
	task, err := m.App.AddTask(m.ctx, args.Name, args.Due, args.List, args.Tone, "")
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: "added: " + task.Name}
	return m
}

// submitEdit applies the capture text to an existing task using the
// same marker grammar as quick add. Omitting a due: marker keeps the
// task's current deadline.
func (m Model) submitEdit(id, text string) Model {
	existing, ok := m.App.TaskByID(id)
	if !ok {
		m.Status = StatusBar{Text: "task not found", IsError: true}
		return m
	}
	args := parseQuickAdd(text, existing.List, m.now())
	due := args.Due
	if due == nil {
		due = existing.Due
	}
	if err := m.App.EditTask(m.ctx, id, args.Name, due, args.List); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: "updated: " + args.Name}
	return m
}

func (m Model) submitCard(text string) Model {
	card, err := m.App.AddCard(m.ctx, text, m.ActiveBoard)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: "added card: " + card.Name}
	return m
}

func (m Model) renderListView() string {
	now := m.now()
	list, _ := m.listMeta()
	tasks := m.visibleTasks()

	items := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, views.TaskItemData{
			ID:       t.ID,
			Name:     t.Name,
			Done:     t.Completed,
			DueLabel: dueLabel(t, now),
			DueState: string(model.Classify(t, now)),
			Tone:     string(t.Ringtone),
		})
	}
	return views.RenderListPanel(views.ListPanelData{
		Title:        list.Name,
		Emoji:        list.Emoji,
		Filter:       string(m.Filter),
		QuickAddView: m.quickAddInput.View(),
		Capture:      m.Capture,
		Items:        items,
		Cursor:       m.ListCursor,
	})
}

func (m Model) listMeta() (model.Collection, bool) {
	for _, c := range m.App.Lists() {
		if c.Key == m.ActiveList {
			return c, true
		}
	}
	return model.Collection{Name: m.ActiveList, Emoji: "📋"}, false
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := []string{
		fmt.Sprintf("- %s/%s: lists / board", m.Keys.Lists, m.Keys.Board),
		"- tab: next list",
		"- a: quick add",
		"- space: toggle done",
		"- e: edit",
		"- d: delete",
		"- f: cycle filter",
		"- x: dismiss notification",
		"- h/l H/L: board navigation / move card",
		fmt.Sprintf("- %s: command palette", m.Keys.Palette),
		fmt.Sprintf("- %s: quit", m.Keys.Quit),
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    bindings,
		HelpView:    m.helpModel.View(paletteHelpKeys()),
	})
}
