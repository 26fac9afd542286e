package registry

import (
	"errors"
	"sync"

	"github.com/abm-games/realestate-backend/app/models"
	"github.com/abm-games/realestate-backend/platform/game"
	log "github.com/sirupsen/logrus"
)

// Session statuses.
const (
	StatusOpen       = "open"
	StatusInProgress = "in progress"
	StatusFinished   = "finished"
)

var (
	ErrGameNotOpen    = errors.New("game is not open for joining")
	ErrGameNotStarted = errors.New("game has not started")
	ErrNotEnough      = errors.New("need at least two players to start")
)

// Registry holds every live game session in the process. The rule engine
// has no internal locking, so each session carries one mutex and every
// mutating call goes through it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func New() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Session is one live match: the rule engine plus lobby bookkeeping. While
// open, joined players are held in a pending list; engine players are only
// created when the game starts, so backing out of a lobby leaves no ghost
// in the match.
type Session struct {
	ID   string
	Name string

	mu       sync.Mutex
	status   string
	game     *game.Game
	pending  []string
	startBal int
	winner   string
}

// Create registers a new session with a freshly built board.
func (r *Registry) Create(id, name string, goPayout int, rents []int, startingBalance int) (*Session, error) {
	g := game.New()
	if err := g.CreateSpaces(goPayout, rents); err != nil {
		return nil, err
	}

	s := &Session{
		ID:       id,
		Name:     name,
		status:   StatusOpen,
		game:     g,
		startBal: startingBalance,
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	log.WithFields(log.Fields{"game": id, "name": name}).Info("game created")
	return s, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Verify reports whether a game id refers to a live session.
func (r *Registry) Verify(id string) bool {
	_, ok := r.Get(id)
	return ok
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Info is the lobby view of a session.
type Info struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Players int    `json:"players"`
}

// ListOpen returns every session still accepting players.
func (r *Registry) ListOpen() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Info, 0, len(r.sessions))
	for _, s := range r.sessions {
		if info := s.info(); info.Status == StatusOpen {
			out = append(out, info)
		}
	}
	return out
}

// Find returns some open session, if any exists.
func (r *Registry) Find() (Info, bool) {
	open := r.ListOpen()
	if len(open) == 0 {
		return Info{}, false
	}
	return open[0], true
}

func (s *Session) info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.pending)
	if s.status != StatusOpen {
		n = len(s.game.Players())
	}
	return Info{Id: s.ID, Name: s.Name, Status: s.status, Players: n}
}

func (s *Session) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Join adds a player to an open lobby. Duplicate names are rejected.
func (s *Session) Join(player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return ErrGameNotOpen
	}
	for _, name := range s.pending {
		if name == player {
			return errors.New("player name already in use")
		}
	}
	s.pending = append(s.pending, player)
	return nil
}

// Leave removes a player from an open lobby. Once the game is in progress
// the engine keeps the player registered; callers drop them from the turn
// rotation instead.
func (s *Session) Leave(player string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return
	}
	for i, name := range s.pending {
		if name == player {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Start moves the session into play, creating the engine players, and
// returns their names in join order.
func (s *Session) Start() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusOpen {
		return nil, ErrGameNotOpen
	}
	if len(s.pending) < 2 {
		return nil, ErrNotEnough
	}

	for _, name := range s.pending {
		s.game.CreatePlayer(name, s.startBal)
	}
	s.pending = nil
	s.status = StatusInProgress

	log.WithFields(log.Fields{"game": s.ID, "players": len(s.game.Players())}).Info("game started")
	return s.game.Players(), nil
}

// MoveResult describes the outcome of one movement call.
type MoveResult struct {
	Position   int    `json:"pos"`
	Balance    int    `json:"balance"`
	Eliminated bool   `json:"eliminated"`
	Winner     string `json:"winner,omitempty"`
}

// Move advances a player and settles rent. When the move leaves only one
// player standing the session is finished and the winner recorded.
func (s *Session) Move(player string, spaces int) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return MoveResult{}, ErrGameNotStarted
	}
	if err := s.game.MovePlayer(player, spaces); err != nil {
		return MoveResult{}, err
	}

	pos, _ := s.game.Position(player)
	bal, err := s.game.AccountBalance(player)
	if err != nil {
		return MoveResult{}, err
	}

	res := MoveResult{Position: pos, Balance: bal, Eliminated: bal == 0}
	if winner := s.game.CheckGameOver(); winner != "" {
		s.status = StatusFinished
		s.winner = winner
		res.Winner = winner
		log.WithFields(log.Fields{"game": s.ID, "winner": winner}).Info("game over")
	}
	return res, nil
}

// Buy attempts to purchase the space the player is standing on.
func (s *Session) Buy(player string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress {
		return false, ErrGameNotStarted
	}
	return s.game.BuySpace(player)
}

func (s *Session) Balance(player string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.AccountBalance(player)
}

func (s *Session) PositionOf(player string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Position(player)
}

func (s *Session) OwnedSpaces(player string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.OwnedSpaces(player)
}

func (s *Session) Winner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner
}

// Snapshot returns the per-player state for broadcasting.
func (s *Session) Snapshot() []models.PlayerDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := s.game.Players()
	out := make([]models.PlayerDto, 0, len(players))
	for _, name := range players {
		bal, _ := s.game.AccountBalance(name)
		pos, _ := s.game.Position(name)
		owned, _ := s.game.OwnedSpaces(name)
		out = append(out, models.PlayerDto{
			Username: name,
			Balance:  bal,
			Pos:      pos,
			Spaces:   owned,
			Active:   bal > 0,
		})
	}
	return out
}
