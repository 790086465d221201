package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tingtong/internal/app"
	"github.com/sandeepkv93/tingtong/internal/commands"
	"github.com/sandeepkv93/tingtong/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m = m.executePaletteCommand(m.commandInput.Value())
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) executePaletteCommand(raw string) Model {
	cmd, err := commands.Parse(raw, m.now())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			list := a.List
			if list == "" {
				list = m.ActiveList
			}
			task, err := m.App.AddTask(m.ctx, a.Name, a.Due, list, model.Tone(a.Tone), "")
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("added: %s (%s)", task.Name, task.ID)}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			if err := m.App.ToggleTask(m.ctx, d.ID); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: "toggled: " + d.ID}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			if err := m.App.DeleteTask(m.ctx, d.ID); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: "deleted: " + d.ID}, nil
		},
		Move: func(mv commands.MoveArgs) (commands.Result, error) {
			if err := m.App.MoveCard(m.ctx, mv.ID, model.Stage(mv.Stage)); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("moved %s to %s", mv.ID, mv.Stage)}, nil
		},
		Share: func(s commands.ShareArgs) (commands.Result, error) {
			mode := model.ModeList
			if s.Board {
				mode = model.ModeBoard
			}
			link, err := m.App.ShareLink(s.Key, mode)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: "share link: " + link}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			m.Filter = app.Filter(s.Subject)
			m.ListCursor = 0
			m.CurrentView = ViewLists
			return commands.Result{Message: "showing " + s.Subject}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.Palette.Active = false
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

type parsedAdd struct {
	Name string
	List string
	Due  *time.Time
	Tone model.Tone
}

// parseQuickAdd reuses the palette grammar for the quick-add input by
// parsing the text as an add command. Unparseable input degrades to a
// plain task name.
func parseQuickAdd(text, fallbackList string, now time.Time) parsedAdd {
	cmd, err := commands.Parse("add "+text, now)
	if err != nil || cmd.Add == nil {
		return parsedAdd{Name: strings.TrimSpace(text), List: fallbackList}
	}
	out := parsedAdd{
		Name: cmd.Add.Name,
		List: cmd.Add.List,
		Due:  cmd.Add.Due,
		Tone: model.Tone(cmd.Add.Tone),
	}
	if out.List == "" {
		out.List = fallbackList
	}
	return out
}
