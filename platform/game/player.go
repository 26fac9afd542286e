package game

// Player holds one player's account balance, board position and owned
// spaces. It enforces no rules of its own; the Game decides when deposits
// and withdrawals are legal.
type Player struct {
	name     string
	balance  int
	position int
	owned    []int
}

// NewPlayer creates a player parked on GO with the given starting balance.
func NewPlayer(name string, startingBalance int) *Player {
	return &Player{
		name:    name,
		balance: startingBalance,
	}
}

func (p *Player) Name() string { return p.name }

func (p *Player) Balance() int { return p.balance }

// Active reports whether the player is still in the game. A balance of
// exactly zero means eliminated, permanently.
func (p *Player) Active() bool { return p.balance > 0 }

func (p *Player) Deposit(amount int) { p.balance += amount }

// Withdraw subtracts from the balance without a lower bound. Callers pass
// either an amount covered by the balance or exactly the remaining balance
// for a forced partial payment.
func (p *Player) Withdraw(amount int) { p.balance -= amount }

func (p *Player) Position() int { return p.position }

func (p *Player) SetPosition(index int) { p.position = index }

// AddOwnedSpace records a purchased space. Insertion order is preserved so
// enumeration stays deterministic.
func (p *Player) AddOwnedSpace(index int) { p.owned = append(p.owned, index) }

// OwnedSpaces returns a copy of the owned space indices in purchase order.
func (p *Player) OwnedSpaces() []int {
	out := make([]int, len(p.owned))
	copy(out, p.owned)
	return out
}

func (p *Player) ClearOwnedSpaces() { p.owned = nil }
