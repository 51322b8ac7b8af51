package update

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/celebrate"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/store"
)

type Pane string

const (
	PaneTasks    Pane = "Tasks"
	PaneCalendar Pane = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	AddTask    string
	SwitchPane string
	Palette    string
	Help       string
	Quit       string
}

type FormField int

const (
	FieldText FormField = iota
	FieldDate
)

type FormState struct {
	Active bool
	Field  FormField
}

// OverlayState is the modal day listing. It stays open until closed by key.
type OverlayState struct {
	Active bool
	Date   string
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Focus       Pane
	Month       calendar.Cursor
	SelectedDay int
	TaskCursor  int
	Form        FormState
	Overlay     OverlayState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	Width       int
	Height      int

	store   *store.Store
	cfg     RuntimeConfig
	ctx     context.Context
	now     func() time.Time
	logger  *slog.Logger
	rng     *rand.Rand
	noColor bool
	burst   *celebrate.Burst
	burstID int

	statusSeq int

	textInput    textinput.Model
	dateInput    textinput.Model
	commandInput textinput.Model
	progressBar  progress.Model
	helpModel    help.Model
}

type Option func(*Model)

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithRand seeds the celebration particles, mostly for tests.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rng = r }
}

// WithNoColor disables the celebration the same way NO_COLOR does.
func WithNoColor(v bool) Option {
	return func(m *Model) { m.noColor = v }
}

type ReloadMsg struct{}

type FrameMsg struct {
	ID int
}

// ClearStatusMsg clears the status bar if it still shows status number ID.
type ClearStatusMsg struct {
	ID int
}

type AppErrorMsg struct {
	Err error
}

// NewModel builds the TUI state around an already loaded store.
func NewModel(st *store.Store, cfg RuntimeConfig, opts ...Option) Model {
	m := Model{
		Focus: PaneTasks,
		Keys: GlobalKeyMap{
			AddTask:    "a",
			SwitchPane: "tab",
			Palette:    "/",
			Help:       "?",
			Quit:       "q",
		},
		store:   st,
		cfg:     cfg.normalized(),
		ctx:     context.Background(),
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		noColor: os.Getenv("NO_COLOR") != "",
	}
	for _, opt := range opts {
		opt(&m)
	}
	today := m.now()
	m.Month = calendar.CursorFor(today)
	m.SelectedDay = today.Day()
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.textInput = textinput.New()
	m.textInput.Prompt = "text: "
	m.textInput.Placeholder = "what needs doing"
	m.textInput.CharLimit = 200

	m.dateInput = textinput.New()
	m.dateInput.Prompt = "date: "
	m.dateInput.Placeholder = "YYYY-MM-DD"
	m.dateInput.CharLimit = 10

	m.commandInput = textinput.New()
	m.commandInput.Prompt = ""
	m.commandInput.Placeholder = "add 2024-03-05 buy milk"

	m.progressBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage())
	m.helpModel = help.New()
}

func (m Model) Store() *store.Store { return m.store }

func (m Model) today() string {
	return model.Today(m.now())
}
