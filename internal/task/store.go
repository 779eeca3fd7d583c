package task

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
)

// Persister writes the collection and the counter through to durable storage.
type Persister interface {
	// Save overwrites the persisted collection.
	Save(ctx context.Context, tasks []Task) error

	// SaveCounter overwrites the persisted id counter.
	SaveCounter(ctx context.Context, counter int) error
}

// Store is the sole mutator of the task collection and the id counter.
// Every mutation restores id order and writes through to the Persister.
//
// Mutations never fail: an absent id is a no-op and persistence failures are
// logged and kept for Err until the next mutation. A Store is not safe for
// concurrent use.
type Store struct {
	tasks   []Task
	counter int

	persister Persister
	logger    *slog.Logger
	lastErr   error
}

// NewStore creates an empty store that persists through p.
// A nil logger discards log output.
func NewStore(p Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		persister: p,
		logger:    logger,
	}
}

// Init replaces the in-memory state with a loaded snapshot.
// The counter is raised to the highest loaded id if it lags behind, so ids
// are never reissued after a partial write.
func (s *Store) Init(snap Snapshot) {
	s.tasks = slices.Clone(snap.Tasks)
	s.counter = max(snap.Counter, 0)
	for _, t := range s.tasks {
		if t.ID > s.counter {
			s.logger.Warn("counter behind stored ids, raising", "counter", s.counter, "max_id", t.ID)
			s.counter = t.ID
		}
	}
	s.sort()
}

// Tasks returns a copy of the collection in id order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Counter returns the last issued id.
func (s *Store) Counter() int {
	return s.counter
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Err returns the persistence failure of the most recent mutation, or nil.
// A later mutation whose writes succeed clears it.
func (s *Store) Err() error {
	return s.lastErr
}

// Add creates a ToDo task with the next id.
// An exactly empty title is rejected without touching state.
func (s *Store) Add(ctx context.Context, title string) (Task, bool) {
	if title == "" {
		return Task{}, false
	}

	s.lastErr = nil
	s.counter++
	t := Task{ID: s.counter, Title: title, Status: ToDo}
	s.tasks = append(s.tasks, t)
	s.sort()

	s.save(ctx)
	s.saveCounter(ctx)
	s.logger.Debug("task added", "id", t.ID)
	return t, true
}

// ToggleStatus flips the status of the task with the given id.
// Reports whether the id was found.
func (s *Store) ToggleStatus(ctx context.Context, id int) bool {
	s.lastErr = nil
	i := s.index(id)
	if i >= 0 {
		s.tasks[i].Status = s.tasks[i].Status.Toggle()
	}
	s.sort()
	s.save(ctx)
	return i >= 0
}

// Rename replaces the title of the task with the given id. Any string is
// accepted, including "".
func (s *Store) Rename(ctx context.Context, id int, title string) bool {
	s.lastErr = nil
	i := s.index(id)
	if i >= 0 {
		s.tasks[i].Title = title
	}
	s.sort()
	s.save(ctx)
	return i >= 0
}

// Remove deletes the task with the given id.
func (s *Store) Remove(ctx context.Context, id int) bool {
	s.lastErr = nil
	i := s.index(id)
	if i >= 0 {
		s.tasks = slices.Delete(s.tasks, i, i+1)
	}
	s.sort()
	s.save(ctx)
	return i >= 0
}

// ClearAll empties the collection. The counter keeps its high-water mark.
func (s *Store) ClearAll(ctx context.Context) {
	s.lastErr = nil
	s.tasks = nil
	s.save(ctx)
	s.logger.Debug("tasks cleared", "counter", s.counter)
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func (s *Store) sort() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int { return cmp.Compare(a.ID, b.ID) })
}

func (s *Store) save(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, s.Tasks()); err != nil {
		s.lastErr = err
		s.logger.Error("failed to persist tasks", "error", err)
	}
}

func (s *Store) saveCounter(ctx context.Context) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveCounter(ctx, s.counter); err != nil {
		s.lastErr = err
		s.logger.Error("failed to persist task counter", "error", err)
	}
}
