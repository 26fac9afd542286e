package game

import (
	"errors"

	"github.com/abm-games/realestate-backend/platform/board"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrPlayerNotFound is returned when an operation names an
	// unregistered player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrBoardNotReady is returned when play starts before CreateSpaces.
	ErrBoardNotReady = errors.New("board has not been created")

	// ErrBoardExists is returned when CreateSpaces is called twice.
	ErrBoardExists = errors.New("board already created")
)

// Game is a single match: one board plus a registry of players keyed by
// name. All operations are immediate state transitions with no I/O and no
// internal locking; a caller embedding a Game in a server must serialize
// mutating calls per instance.
type Game struct {
	board   *board.Board
	players map[string]*Player
	order   []string // registration order, for deterministic iteration
}

func New() *Game {
	return &Game{players: make(map[string]*Player)}
}

// CreateSpaces builds the board. Must be called exactly once before play.
func (g *Game) CreateSpaces(goPayout int, rents []int) error {
	if g.board != nil {
		return ErrBoardExists
	}
	b, err := board.New(goPayout, rents)
	if err != nil {
		return err
	}
	g.board = b
	return nil
}

// Board exposes the board for read-only uses such as state snapshots.
func (g *Game) Board() *board.Board { return g.board }

// CreatePlayer registers a new player. A duplicate name is reported with a
// false return and leaves the game untouched; the existing player keeps
// their state.
func (g *Game) CreatePlayer(name string, startingBalance int) bool {
	if _, ok := g.players[name]; ok {
		log.WithField("player", name).Warn("player name already in use")
		return false
	}
	g.players[name] = NewPlayer(name, startingBalance)
	g.order = append(g.order, name)
	return true
}

// Players returns player names in registration order.
func (g *Game) Players() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Game) AccountBalance(name string) (int, error) {
	p, ok := g.players[name]
	if !ok {
		return 0, ErrPlayerNotFound
	}
	return p.Balance(), nil
}

func (g *Game) Position(name string) (int, error) {
	p, ok := g.players[name]
	if !ok {
		return 0, ErrPlayerNotFound
	}
	return p.Position(), nil
}

// OwnedSpaces returns the indices of spaces the player owns, in purchase
// order.
func (g *Game) OwnedSpaces(name string) ([]int, error) {
	p, ok := g.players[name]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return p.OwnedSpaces(), nil
}

// BuySpace attempts to buy the space the player is standing on. It reports
// false, with no state change, when the player is eliminated, the space is
// GO or already owned, or the balance does not strictly exceed the purchase
// price. A player whose balance equals the price cannot buy.
func (g *Game) BuySpace(name string) (bool, error) {
	if g.board == nil {
		return false, ErrBoardNotReady
	}
	p, ok := g.players[name]
	if !ok {
		return false, ErrPlayerNotFound
	}

	sp := g.board.SpaceAt(p.Position())
	if !p.Active() || sp.IsGO() || sp.Owned() || p.Balance() <= sp.PurchasePrice() {
		return false, nil
	}

	p.Withdraw(sp.PurchasePrice())
	p.AddOwnedSpace(sp.Index())
	sp.SetOwner(p.Name())
	return true, nil
}

// MovePlayer advances the player and settles the landing. Eliminated
// players do not move. Passing or landing on GO via wraparound credits the
// GO payout once; landing on a space owned by another player charges rent,
// eliminating the player when the rent meets or exceeds their balance.
func (g *Game) MovePlayer(name string, spacesToMove int) error {
	if g.board == nil {
		return ErrBoardNotReady
	}
	p, ok := g.players[name]
	if !ok {
		return ErrPlayerNotFound
	}
	if !p.Active() {
		return nil
	}

	g.movement(p, spacesToMove)
	g.payRent(p)
	return nil
}

// movement applies the board walk. The walk wraps, and pays out, whenever
// the raw target reaches Size-1, so landing exactly on the last space goes
// through the wraparound branch too.
func (g *Game) movement(p *Player, spacesToMove int) {
	target := p.Position() + spacesToMove
	if target < g.board.Size()-1 {
		p.SetPosition(target)
		return
	}
	p.SetPosition(target % g.board.Size())
	g.passGO(p)
}

func (g *Game) passGO(p *Player) {
	p.Deposit(g.board.GOPayout())
}

// payRent settles the space the player just landed on. Rent equal to the
// balance still drains the whole balance and eliminates; only rent strictly
// below the balance is an ordinary transfer.
func (g *Game) payRent(p *Player) {
	sp := g.board.SpaceAt(p.Position())
	if sp.IsGO() || !sp.Owned() || sp.Owner() == p.Name() {
		return
	}

	owner := g.players[sp.Owner()]
	rent := sp.Rent()
	bal := p.Balance()

	if rent < bal {
		p.Withdraw(rent)
		owner.Deposit(rent)
		return
	}

	p.Withdraw(bal)
	owner.Deposit(bal)
	g.eliminate(p)
}

// eliminate releases every space the player owns and empties their owned
// list. The player stays registered but can never act again.
func (g *Game) eliminate(p *Player) {
	for _, idx := range p.OwnedSpaces() {
		g.board.SpaceAt(idx).ClearOwner()
	}
	p.ClearOwnedSpaces()
	log.WithField("player", p.Name()).Info("player eliminated")
}

// CheckGameOver returns the winner's name once every player but one has
// been eliminated, otherwise "".
func (g *Game) CheckGameOver() string {
	eliminated := 0
	winner := ""
	for _, name := range g.order {
		p := g.players[name]
		if p.Active() {
			winner = p.Name()
		} else {
			eliminated++
		}
	}
	if winner != "" && eliminated == len(g.order)-1 {
		return winner
	}
	return ""
}
