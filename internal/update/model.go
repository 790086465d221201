package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/tingtong/internal/app"
	"github.com/sandeepkv93/tingtong/internal/lifecycle"
	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/scheduler"
)

type View string

const (
	ViewLists View = "Lists"
	ViewBoard View = "Board"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Lists   string
	Board   string
	Help    string
	Quit    string
	Palette string
}

type CommandPaletteState struct {
	Active bool
}

// Model is the bubbletea state. All domain mutations go through the
// App; the model only tracks what is on screen.
type Model struct {
	App     *app.App
	Monitor *lifecycle.Monitor

	CurrentView View
	ActiveList  string
	ActiveBoard string
	ListCursor  int
	StageCursor int
	CardCursor  int
	Filter      app.Filter

	Palette     CommandPaletteState
	HelpVisible bool
	Capture     bool
	// EditingID marks capture input as an edit of an existing task.
	EditingID string
	Status    StatusBar
	Keys      GlobalKeyMap
	Quitting  bool

	quickAddInput textinput.Model
	commandInput  textinput.Model
	helpModel     help.Model

	ctx context.Context
	now func() time.Time
}

type ReminderFiredMsg struct {
	Fire scheduler.Fire
}

// FeedTickMsg drives feed expiry and relative due labels.
type FeedTickMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

func NewModel(a *app.App, monitor *lifecycle.Monitor) Model {
	quickAdd := textinput.New()
	quickAdd.Placeholder = "task name [@list] [due:HH:MM] [tone:bell]"
	quickAdd.CharLimit = 200

	command := textinput.New()
	command.Placeholder = "add | done | delete | move | share | show"
	command.Prompt = "/"
	command.CharLimit = 200

	m := Model{
		App:         a,
		Monitor:     monitor,
		CurrentView: ViewLists,
		ActiveList:  model.DefaultList,
		ActiveBoard: "main",
		Filter:      app.FilterAll,
		Keys: GlobalKeyMap{
			Lists:   "1",
			Board:   "2",
			Help:    "?",
			Quit:    "q",
			Palette: "/",
		},
		quickAddInput: quickAdd,
		commandInput:  command,
		helpModel:     help.New(),
		ctx:           context.Background(),
		now:           time.Now,
	}
	return m
}
