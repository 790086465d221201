package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandeepkv93/tingtong/internal/lifecycle"
	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/notify"
	"github.com/sandeepkv93/tingtong/internal/scheduler"
	"github.com/sandeepkv93/tingtong/internal/storage"
)

var (
	ErrEmptyName          = errors.New("app: name is required")
	ErrTaskNotFound       = errors.New("app: task not found")
	ErrCardNotFound       = errors.New("app: card not found")
	ErrCollectionExists   = errors.New("app: collection already exists")
	ErrCollectionNotFound = errors.New("app: collection not found")
)

// App owns the live task/list/board/card state and wires the store,
// the reminder engine, and the presenter together. All state lives on
// the App, never in package globals, so tests can run isolated
// instances side by side.
//
// Mutations work on the in-memory state first and persist best-effort:
// a storage failure is logged and the operation proceeds, the next
// successful mutation rewrites the full record.
type App struct {
	mu        sync.Mutex
	store     storage.Store
	engine    *scheduler.Engine
	presenter *notify.Presenter
	log       *zap.Logger
	now       func() time.Time
	newID     func() string
	shareBase string

	tasks  []model.Task
	lists  map[string]model.Collection
	boards map[string]model.Collection
	cards  []model.Card
}

type Options struct {
	Store     storage.Store
	Engine    *scheduler.Engine
	Presenter *notify.Presenter
	Monitor   *lifecycle.Monitor
	Logger    *zap.Logger
	ShareBase string
	// Clock overrides time.Now; used by tests.
	Clock func() time.Time
	// NewID overrides uuid generation; used by tests.
	NewID func() string
}

func New(opts Options) *App {
	a := &App{
		store:     opts.Store,
		engine:    opts.Engine,
		presenter: opts.Presenter,
		log:       opts.Logger,
		now:       opts.Clock,
		newID:     opts.NewID,
		shareBase: opts.ShareBase,
		lists:     make(map[string]model.Collection),
		boards:    make(map[string]model.Collection),
	}
	if a.store == nil {
		a.store = storage.NewMemoryStore()
	}
	if a.engine == nil {
		a.engine = scheduler.NewEngine(64)
	}
	if a.presenter == nil {
		a.presenter = notify.NewPresenter(nil, nil, nil, nil, notify.DefaultPolicy(), nil)
	}
	if a.log == nil {
		a.log = zap.NewNop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	if opts.Monitor != nil {
		opts.Monitor.Subscribe(a)
	}
	return a
}

// Load pulls all records from the store and seeds the stock lists and
// board. Unreadable records degrade to empty state rather than
// blocking startup.
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tasks, err := storage.LoadTasks(ctx, a.store)
	if err != nil {
		a.log.Warn("load tasks failed, starting empty", zap.Error(err))
		tasks = make([]model.Task, 0)
	}
	a.tasks = tasks

	lists, err := storage.LoadLists(ctx, a.store)
	if err != nil {
		a.log.Warn("load lists failed, starting empty", zap.Error(err))
		lists = make(map[string]model.Collection)
	}
	model.SeedLists(lists)
	a.lists = lists

	boards, err := storage.LoadBoards(ctx, a.store)
	if err != nil {
		a.log.Warn("load boards failed, starting empty", zap.Error(err))
		boards = make(map[string]model.Collection)
	}
	model.SeedBoards(boards)
	a.boards = boards

	cards, err := storage.LoadCards(ctx, a.store)
	if err != nil {
		a.log.Warn("load cards failed, starting empty", zap.Error(err))
		cards = make([]model.Card, 0)
	}
	a.cards = cards
}

// Run consumes timer fires from the engine until the context ends or
// the engine stops. Meant to run on its own goroutine.
func (a *App) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case fire, ok := <-a.engine.C():
			if !ok {
				return
			}
			a.HandleFire(ctx, fire)
		}
	}
}

func (a *App) Feed() *notify.Feed {
	return a.presenter.Feed()
}

func (a *App) Engine() *scheduler.Engine {
	return a.engine
}

// persistTasks writes the tasks record; failures degrade to in-memory
// state (retried implicitly on the next mutation).
func (a *App) persistTasks(ctx context.Context) {
	if err := storage.SaveTasks(ctx, a.store, a.tasks); err != nil {
		a.log.Warn("persist tasks failed, continuing in memory", zap.Error(err))
	}
}

func (a *App) persistLists(ctx context.Context) {
	if err := storage.SaveLists(ctx, a.store, a.lists); err != nil {
		a.log.Warn("persist lists failed, continuing in memory", zap.Error(err))
	}
}

func (a *App) persistBoards(ctx context.Context) {
	if err := storage.SaveBoards(ctx, a.store, a.boards); err != nil {
		a.log.Warn("persist boards failed, continuing in memory", zap.Error(err))
	}
}

func (a *App) persistCards(ctx context.Context) {
	if err := storage.SaveCards(ctx, a.store, a.cards); err != nil {
		a.log.Warn("persist cards failed, continuing in memory", zap.Error(err))
	}
}

func (a *App) taskIndex(id string) int {
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (a *App) cardIndex(id string) int {
	for i := range a.cards {
		if a.cards[i].ID == id {
			return i
		}
	}
	return -1
}
