// Package persist serializes the task collection and the id counter to a
// key-value store and reloads them at startup.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gtodo/internal/storage"
	"gtodo/internal/task"
)

const (
	// ItemsKey holds the JSON array of tasks.
	ItemsKey = "toDoListItems"

	// CounterKey holds the last issued id as a decimal string.
	CounterKey = "taskIdCounter"
)

// Adapter implements task.Persister over a storage.KV.
type Adapter struct {
	kv     storage.KV
	logger *slog.Logger
}

var _ task.Persister = (*Adapter)(nil)

// New creates an adapter over kv. A nil logger discards log output.
func New(kv storage.KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{kv: kv, logger: logger}
}

// Load reads the persisted snapshot.
// An absent or malformed collection loads as empty and an absent or
// malformed counter loads as 0. Only backend read failures are returned.
func (a *Adapter) Load(ctx context.Context) (task.Snapshot, error) {
	var snap task.Snapshot

	raw, ok, err := a.kv.Get(ctx, ItemsKey)
	if err != nil {
		return task.Snapshot{}, fmt.Errorf("read %s: %w", ItemsKey, err)
	}
	if ok {
		snap.Tasks = a.decodeTasks(raw)
	}

	raw, ok, err = a.kv.Get(ctx, CounterKey)
	if err != nil {
		return task.Snapshot{}, fmt.Errorf("read %s: %w", CounterKey, err)
	}
	if ok {
		snap.Counter = a.decodeCounter(raw)
	}

	a.logger.Debug("loaded tasks", "count", len(snap.Tasks), "counter", snap.Counter)
	return snap, nil
}

// Save overwrites the persisted collection.
func (a *Adapter) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := a.kv.Set(ctx, ItemsKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", ItemsKey, err)
	}
	return nil
}

// SaveCounter overwrites the persisted counter.
func (a *Adapter) SaveCounter(ctx context.Context, counter int) error {
	if err := a.kv.Set(ctx, CounterKey, strconv.Itoa(counter)); err != nil {
		return fmt.Errorf("write %s: %w", CounterKey, err)
	}
	return nil
}

func (a *Adapter) decodeTasks(raw string) []task.Task {
	var tasks []task.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		a.logger.Warn("ignoring malformed task collection", "key", ItemsKey, "error", err)
		return nil
	}
	return tasks
}

func (a *Adapter) decodeCounter(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		a.logger.Warn("ignoring malformed task counter", "key", CounterKey, "value", raw)
		return 0
	}
	return n
}
