// Package manager hosts multiple concurrent games, each owned by a
// Handle that serializes access to its board. The engine itself is
// single-threaded; this layer is what makes it safe to embed in a
// concurrent host.
package manager

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"fortress_chess/game"
	"fortress_chess/store"
)

// ErrNoSuchGame is returned when an ID is not registered.
var ErrNoSuchGame = errors.New("manager: no such game")

// Manager is a registry of live games, optionally backed by a store
// for snapshot persistence.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Handle
	st    *store.Store
}

// New returns a manager without persistence.
func New() *Manager {
	return &Manager{games: make(map[string]*Handle)}
}

// NewWithStore returns a manager that saves every game's snapshot to
// st on Close, and can resurrect stored games via Load.
func NewWithStore(st *store.Store) *Manager {
	return &Manager{games: make(map[string]*Handle), st: st}
}

// NewGame registers a fresh board and returns its handle.
func (m *Manager) NewGame() *Handle {
	return m.register(uuid.NewString(), game.NewBoard())
}

// NewGameWithPolicy registers a fresh board using the given promotion
// policy.
func (m *Manager) NewGameWithPolicy(policy game.PromotionPolicy) *Handle {
	return m.register(uuid.NewString(), game.NewBoardWithPolicy(policy))
}

// Load resurrects a stored game under its original ID. Loading an ID
// that is already live returns the live handle.
func (m *Manager) Load(id string) (*Handle, error) {
	if m.st == nil {
		return nil, errors.New("manager: no store configured")
	}
	m.mu.RLock()
	h, ok := m.games[id]
	m.mu.RUnlock()
	if ok {
		return h, nil
	}
	board, err := m.st.LoadBoard(id)
	if err != nil {
		return nil, err
	}
	return m.register(id, board), nil
}

func (m *Manager) register(id string, board *game.Board) *Handle {
	h := &Handle{
		id:      id,
		board:   board,
		created: time.Now(),
		updated: time.Now(),
	}
	m.mu.Lock()
	m.games[id] = h
	m.mu.Unlock()
	return h
}

// Get returns the live handle for id.
func (m *Manager) Get(id string) (*Handle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.games[id]
	if !ok {
		return nil, errors.Wrap(ErrNoSuchGame, id)
	}
	return h, nil
}

// IDs returns the IDs of every live game.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}

// Remove drops id from the registry and, when a store is configured,
// deletes its stored snapshot.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	_, ok := m.games[id]
	delete(m.games, id)
	m.mu.Unlock()
	if !ok {
		return errors.Wrap(ErrNoSuchGame, id)
	}
	if m.st != nil {
		return m.st.Delete(id)
	}
	return nil
}

// Save writes the game's current snapshot to the store.
func (m *Manager) Save(id string) error {
	if m.st == nil {
		return errors.New("manager: no store configured")
	}
	h, err := m.Get(id)
	if err != nil {
		return err
	}
	return m.st.SaveSnapshot(id, h.Snapshot())
}

// Close saves every live game when a store is configured, then closes
// the store. All failures are collected; Close keeps going past
// individual save errors.
func (m *Manager) Close() error {
	m.mu.Lock()
	games := m.games
	m.games = make(map[string]*Handle)
	m.mu.Unlock()

	var result *multierror.Error
	if m.st != nil {
		for id, h := range games {
			if err := m.st.SaveSnapshot(id, h.Snapshot()); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "saving %s", id))
			}
		}
		if err := m.st.Close(); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "closing store"))
		}
	}
	return result.ErrorOrNil()
}

// Handle is one live game. All methods serialize on an internal mutex,
// so a handle may be shared across goroutines.
type Handle struct {
	mu      sync.Mutex
	id      string
	board   *game.Board
	created time.Time
	updated time.Time
}

// ID returns the game's registry key.
func (h *Handle) ID() string { return h.id }

// CreatedAt returns when the handle was registered.
func (h *Handle) CreatedAt() time.Time { return h.created }

// UpdatedAt returns the time of the last successful mutation.
func (h *Handle) UpdatedAt() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.updated
}

// Validate checks mv without mutating the game.
func (h *Handle) Validate(mv game.Move) (bool, game.Reason) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.Validate(mv)
}

// Apply validates and executes mv.
func (h *Handle) Apply(mv game.Move) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.board.Apply(mv); err != nil {
		return err
	}
	h.updated = time.Now()
	return nil
}

// Pop undoes the most recent move.
func (h *Handle) Pop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.board.Pop() {
		return false
	}
	h.updated = time.Now()
	return true
}

// NextTurn advances the turn pointer n times, skipping frozen colors.
func (h *Handle) NextTurn(n int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.NextTurn(n)
}

// Turn returns the color to move.
func (h *Handle) Turn() game.Color {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.Turn()
}

// Winner returns the winning team once decided.
func (h *Handle) Winner() (game.Team, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.Winner()
}

// Snapshot captures the game's current state.
func (h *Handle) Snapshot() game.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.board.Snapshot()
}
