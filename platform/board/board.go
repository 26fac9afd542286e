package board

import (
	"fmt"
	"strconv"
)

const (
	// Size is the number of spaces on the board, GO included.
	Size = 25

	// GOIndex is the board position of the GO space.
	GOIndex = 0

	// GOName is the display name of the GO space.
	GOName = "GO"

	// RentCount is how many rent values a board needs, one per non-GO space.
	RentCount = Size - 1

	// priceMultiplier converts a space's rent into its purchase price.
	priceMultiplier = 5
)

// Space is a single position on the board. GO carries the payout amount in
// its rent field and can never be owned or bought.
type Space struct {
	index int
	name  string
	rent  int
	price int
	owner string
}

func (s *Space) Index() int { return s.index }

func (s *Space) Name() string { return s.name }

// Rent is the amount charged when landing on an owned space. For GO it holds
// the payout collected when passing.
func (s *Space) Rent() int { return s.rent }

// PurchasePrice is always 5x the rent. Zero for GO.
func (s *Space) PurchasePrice() int { return s.price }

// Owner returns the owning player's name, or "" when unowned.
func (s *Space) Owner() string { return s.owner }

func (s *Space) Owned() bool { return s.owner != "" }

func (s *Space) IsGO() bool { return s.index == GOIndex }

func (s *Space) SetOwner(player string) { s.owner = player }

func (s *Space) ClearOwner() { s.owner = "" }

// Board is an ordered sequence of 25 spaces. Everything except the per-space
// owner field is fixed at construction.
type Board struct {
	spaces [Size]Space
}

// New builds a board from a GO payout and exactly 24 rent values, applied in
// board order to spaces 1..24. All amounts must be positive.
func New(goPayout int, rents []int) (*Board, error) {
	if goPayout <= 0 {
		return nil, fmt.Errorf("go payout must be positive, got %d", goPayout)
	}
	if len(rents) != RentCount {
		return nil, fmt.Errorf("expected %d rent values, got %d", RentCount, len(rents))
	}

	b := &Board{}
	b.spaces[GOIndex] = Space{index: GOIndex, name: GOName, rent: goPayout}
	for i, rent := range rents {
		if rent <= 0 {
			return nil, fmt.Errorf("rent for space %d must be positive, got %d", i+1, rent)
		}
		idx := i + 1
		b.spaces[idx] = Space{
			index: idx,
			name:  "Space " + strconv.Itoa(idx),
			rent:  rent,
			price: rent * priceMultiplier,
		}
	}
	return b, nil
}

// SpaceAt returns the space at a 0-based position. The index must be in
// [0, Size); callers derive positions modulo Size.
func (b *Board) SpaceAt(index int) *Space {
	return &b.spaces[index]
}

func (b *Board) Size() int { return Size }

// GOPayout is the amount credited when a player passes or lands on GO.
func (b *Board) GOPayout() int { return b.spaces[GOIndex].rent }

// DefaultRents is the stock rent schedule used when a game is created
// without an explicit one: 50 for the first stretch, climbing by 50 every
// four spaces up to 300.
func DefaultRents() []int {
	rents := make([]int, RentCount)
	for i := range rents {
		rents[i] = 50 + (i/4)*50
	}
	return rents
}
