// Package session models the editor-side view state: tabs, per-tab
// settings, and debounced validation over an abstract text buffer.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcncl/jsonkit/internal/config"
	"github.com/mcncl/jsonkit/internal/diagnose"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/log"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/repair"
)

// Settings holds the per-tab editor settings.
type Settings struct {
	Dialect   models.Dialect
	Indent    int
	SortOrder models.SortOrder
	FontSize  int
}

// DefaultSettings returns the settings applied to a newly opened tab.
func DefaultSettings() Settings {
	return Settings{
		Dialect:   models.DialectJSON,
		Indent:    2,
		SortOrder: models.Ascending,
		FontSize:  14,
	}
}

// Tab is one open document: a buffer, its settings, and the latest
// validation state.
type Tab struct {
	ID     string
	Title  string
	Buffer Buffer

	mu        sync.Mutex
	settings  Settings
	lastError *models.ParseErrorInfo
	validated bool
	debouncer *Debouncer
}

// Settings returns a copy of the tab's settings.
func (t *Tab) Settings() Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings
}

// UpdateSettings applies fn to the tab's settings under the lock.
func (t *Tab) UpdateSettings(fn func(*Settings)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.settings)
}

// LastError returns the most recent validation result: the parse error,
// and whether any validation has completed yet.
func (t *Tab) LastError() (*models.ParseErrorInfo, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastError, t.validated
}

// Validate diagnoses the buffer immediately, bypassing the debounce, and
// records the result.
func (t *Tab) Validate() *models.ParseErrorInfo {
	info := diagnose.Diagnose(t.Buffer.Text(), t.Settings().Dialect)
	t.record(info)
	return info
}

func (t *Tab) record(info *models.ParseErrorInfo) {
	t.mu.Lock()
	t.lastError = info
	t.validated = true
	t.mu.Unlock()
	if info != nil {
		log.Debugf("tab %s: parse error at line %d: %s", t.ID, info.Line, info.Message)
	}
}

// JumpToError reveals the line of the recorded parse error. It refuses
// when there is no error or the error carries no position.
func (t *Tab) JumpToError() error {
	t.mu.Lock()
	info := t.lastError
	t.mu.Unlock()

	if info == nil {
		return errors.NewInputError("document has no recorded parse error", nil)
	}
	if info.Line == 0 {
		return errors.NewInputError("parse error has no known position", errors.ErrLineUnknown)
	}
	return t.Buffer.RevealLine(info.Line)
}

// Repair runs heuristic repair on the buffer and replaces its content as
// a single undoable edit.
func (t *Tab) Repair() error {
	repaired, err := repair.Repair(t.Buffer.Text())
	if err != nil {
		return err
	}
	return t.Buffer.ReplaceAll(repaired)
}

// Close stops the tab's pending validation.
func (t *Tab) Close() {
	if t.debouncer != nil {
		t.debouncer.Stop()
	}
}

// Store owns all open tabs, keyed by tab ID. All mutations go through
// explicit methods; there is no ambient global state.
type Store struct {
	mu       sync.Mutex
	tabs     map[string]*Tab
	order    []string
	activeID string
	delay    time.Duration
}

// NewStore creates a Store whose tabs validate after the given debounce
// delay of edit inactivity.
func NewStore(delay time.Duration) *Store {
	return &Store{
		tabs:  make(map[string]*Tab),
		delay: delay,
	}
}

// NewStoreFromConfig creates a Store whose debounce delay comes from the
// tool configuration.
func NewStoreFromConfig(cfg *config.Config) *Store {
	return NewStore(time.Duration(cfg.DebounceMs) * time.Millisecond)
}

// Open creates a tab around buffer, wires debounced validation to the
// buffer's change notifications, and makes the tab active.
func (s *Store) Open(title string, buffer Buffer, settings Settings) *Tab {
	tab := &Tab{
		ID:       uuid.NewString(),
		Title:    title,
		Buffer:   buffer,
		settings: settings,
	}
	tab.debouncer = NewDebouncer(s.delay, func(text string) {
		tab.record(diagnose.Diagnose(text, tab.Settings().Dialect))
	})
	buffer.OnChange(tab.debouncer.Trigger)

	s.mu.Lock()
	s.tabs[tab.ID] = tab
	s.order = append(s.order, tab.ID)
	s.activeID = tab.ID
	s.mu.Unlock()

	log.Debugf("opened tab %s (%s)", tab.ID, title)
	return tab
}

// Tab returns the tab with the given ID.
func (s *Store) Tab(id string) (*Tab, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab, ok := s.tabs[id]
	return tab, ok
}

// Active returns the currently active tab, or nil when no tab is open.
func (s *Store) Active() *Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tabs[s.activeID]
}

// Activate makes the tab with the given ID active.
func (s *Store) Activate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tabs[id]; !ok {
		return errors.NewInputError(fmt.Sprintf("no tab with id %s", id), nil)
	}
	s.activeID = id
	return nil
}

// Close removes a tab and cancels its pending validation. When the
// active tab is closed, the most recently opened remaining tab becomes
// active.
func (s *Store) Close(id string) error {
	s.mu.Lock()
	tab, ok := s.tabs[id]
	if !ok {
		s.mu.Unlock()
		return errors.NewInputError(fmt.Sprintf("no tab with id %s", id), nil)
	}
	delete(s.tabs, id)
	for i, tabID := range s.order {
		if tabID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.activeID == id {
		s.activeID = ""
		if len(s.order) > 0 {
			s.activeID = s.order[len(s.order)-1]
		}
	}
	s.mu.Unlock()

	tab.Close()
	log.Debugf("closed tab %s", id)
	return nil
}

// Tabs returns all open tabs in opening order.
func (s *Store) Tabs() []*Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	tabs := make([]*Tab, 0, len(s.order))
	for _, id := range s.order {
		tabs = append(tabs, s.tabs[id])
	}
	return tabs
}
