package game

import "testing"

func TestPlayerAccount(t *testing.T) {
	p := NewPlayer("A", 1000)

	if p.Name() != "A" {
		t.Errorf("got name %q, want A", p.Name())
	}
	if p.Balance() != 1000 {
		t.Errorf("got balance %d, want 1000", p.Balance())
	}
	if !p.Active() {
		t.Error("player with positive balance should be active")
	}

	p.Deposit(200)
	if p.Balance() != 1200 {
		t.Errorf("got balance %d, want 1200", p.Balance())
	}

	p.Withdraw(1200)
	if p.Balance() != 0 {
		t.Errorf("got balance %d, want 0", p.Balance())
	}
	if p.Active() {
		t.Error("player with zero balance should be inactive")
	}
}

func TestPlayerPosition(t *testing.T) {
	p := NewPlayer("A", 1000)
	if p.Position() != 0 {
		t.Errorf("players start on GO, got %d", p.Position())
	}
	p.SetPosition(13)
	if p.Position() != 13 {
		t.Errorf("got position %d, want 13", p.Position())
	}
}

func TestPlayerOwnedSpaces(t *testing.T) {
	p := NewPlayer("A", 1000)
	if len(p.OwnedSpaces()) != 0 {
		t.Fatal("new player should own nothing")
	}

	p.AddOwnedSpace(4)
	p.AddOwnedSpace(2)
	p.AddOwnedSpace(9)

	owned := p.OwnedSpaces()
	want := []int{4, 2, 9}
	for i := range want {
		if owned[i] != want[i] {
			t.Fatalf("got %v, want %v (insertion order)", owned, want)
		}
	}

	// The returned slice is a copy.
	owned[0] = 99
	if p.OwnedSpaces()[0] != 4 {
		t.Error("OwnedSpaces leaked internal state")
	}

	p.ClearOwnedSpaces()
	if len(p.OwnedSpaces()) != 0 {
		t.Error("ClearOwnedSpaces left entries behind")
	}
}
