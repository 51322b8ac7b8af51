// Package store owns the in-memory task sequence and keeps it mirrored to a
// storage.KV key as a JSON array.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/storage"
)

const DefaultKey = "tasks"

var (
	ErrIndexOutOfRange = errors.New("store: task index out of range")
	ErrTaskNotFound    = errors.New("store: task not found")
)

type Store struct {
	kv     storage.KV
	key    string
	tasks  []model.Task
	newID  func() string
	logger *slog.Logger
	// saveErr is the outcome of the most recent Save.
	saveErr error
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		tasks:  make([]model.Task, 0),
		newID:  uuid.NewString,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory sequence with the persisted one. Missing or
// undecodable data leaves an empty store and is not an error.
func (s *Store) Load(ctx context.Context) error {
	s.tasks = make([]model.Task, 0)
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", s.key, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil
	}
	var decoded []model.Task
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.logger.Warn("discarding unreadable task data", "key", s.key, "err", err)
		return nil
	}
	for i := range decoded {
		if decoded[i].ID == "" {
			decoded[i].ID = s.newID()
		}
	}
	if decoded != nil {
		s.tasks = decoded
	}
	s.logger.Debug("tasks loaded", "key", s.key, "count", len(s.tasks))
	return nil
}

// Save writes the whole sequence in a single Set.
func (s *Store) Save(ctx context.Context) error {
	payload, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, payload); err != nil {
		s.saveErr = fmt.Errorf("save %s: %w", s.key, err)
		return s.saveErr
	}
	s.saveErr = nil
	return nil
}

// Unsaved reports whether memory holds changes the last Save failed to write.
func (s *Store) Unsaved() bool { return s.saveErr != nil }

// Add appends a new open task. Blank text or date is a no-op and reports
// ok=false.
func (s *Store) Add(ctx context.Context, text, date string) (model.Task, bool, error) {
	task := model.Task{
		Text: strings.TrimSpace(text),
		Date: strings.TrimSpace(date),
	}
	if task.Validate() != nil {
		return model.Task{}, false, nil
	}
	task.ID = s.newID()
	s.tasks = append(s.tasks, task)
	s.logger.Info("task added", "id", task.ID, "date", task.Date)
	return task, true, s.Save(ctx)
}

// Toggle flips the completion flag of the task at index.
func (s *Store) Toggle(ctx context.Context, index int) (model.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return model.Task{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.tasks[index].Completed = !s.tasks[index].Completed
	task := s.tasks[index]
	s.logger.Info("task toggled", "id", task.ID, "completed", task.Completed)
	return task, s.Save(ctx)
}

func (s *Store) ToggleByID(ctx context.Context, id string) (model.Task, error) {
	idx, ok := s.IndexOf(id)
	if !ok {
		return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.Toggle(ctx, idx)
}

func (s *Store) IndexOf(id string) (int, bool) {
	for i, t := range s.tasks {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindFirst returns the first position whose text and date both match.
func (s *Store) FindFirst(text, date string) (int, bool) {
	for i, t := range s.tasks {
		if t.Text == text && t.Date == date {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int { return len(s.tasks) }

// KV exposes the backing store, for a second reader of the same data.
func (s *Store) KV() storage.KV { return s.kv }
