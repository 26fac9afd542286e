package registry

import (
	"testing"

	"github.com/abm-games/realestate-backend/platform/board"
)

func newTestSession(t *testing.T, startBal int) (*Registry, *Session) {
	t.Helper()
	r := New()
	s, err := r.Create("G1", "friday night", 200, board.DefaultRents(), startBal)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return r, s
}

func TestCreateAndVerify(t *testing.T) {
	r, s := newTestSession(t, 1500)

	if !r.Verify("G1") {
		t.Error("Verify should find the created game")
	}
	if r.Verify("nope") {
		t.Error("Verify should reject unknown ids")
	}
	if got, ok := r.Get("G1"); !ok || got != s {
		t.Error("Get returned the wrong session")
	}
	if s.Status() != StatusOpen {
		t.Errorf("got status %q, want %q", s.Status(), StatusOpen)
	}

	r.Delete("G1")
	if r.Verify("G1") {
		t.Error("Verify should fail after Delete")
	}
}

func TestCreateRejectsBadBoard(t *testing.T) {
	r := New()
	if _, err := r.Create("G1", "bad", 200, []int{50}, 1500); err == nil {
		t.Error("expected board construction error")
	}
	if r.Verify("G1") {
		t.Error("failed create should not register a session")
	}
}

func TestListOpenAndFind(t *testing.T) {
	r := New()
	if _, ok := r.Find(); ok {
		t.Error("Find on empty registry should report nothing")
	}

	r.Create("G1", "one", 200, board.DefaultRents(), 1500)

	open := r.ListOpen()
	if len(open) != 1 || open[0].Id != "G1" {
		t.Fatalf("got %v, want just G1", open)
	}
	if open[0].Players != 0 {
		t.Errorf("got %d players, want 0", open[0].Players)
	}

	info, ok := r.Find()
	if !ok || info.Id != "G1" {
		t.Errorf("Find returned %v", info)
	}

	// A started game drops off the open list.
	s, _ := r.Get("G1")
	s.Join("A")
	s.Join("B")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if open := r.ListOpen(); len(open) != 0 {
		t.Errorf("started game still listed: %v", open)
	}
}

func TestJoinAndLeave(t *testing.T) {
	_, s := newTestSession(t, 1500)

	if err := s.Join("A"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if err := s.Join("A"); err == nil {
		t.Error("duplicate name should be rejected")
	}
	if err := s.Join("B"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	s.Leave("A")
	if _, err := s.Start(); err != ErrNotEnough {
		t.Errorf("expected ErrNotEnough after leave, got %v", err)
	}
}

func TestStart(t *testing.T) {
	_, s := newTestSession(t, 1500)

	if _, err := s.Start(); err != ErrNotEnough {
		t.Errorf("empty lobby: expected ErrNotEnough, got %v", err)
	}

	s.Join("A")
	s.Join("B")
	players, err := s.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if len(players) != 2 || players[0] != "A" || players[1] != "B" {
		t.Errorf("got players %v, want [A B] in join order", players)
	}
	if s.Status() != StatusInProgress {
		t.Errorf("got status %q, want %q", s.Status(), StatusInProgress)
	}

	if err := s.Join("C"); err != ErrGameNotOpen {
		t.Errorf("joining a running game: expected ErrGameNotOpen, got %v", err)
	}
	if _, err := s.Start(); err != ErrGameNotOpen {
		t.Errorf("second start: expected ErrGameNotOpen, got %v", err)
	}
}

func TestMoveAndBuy(t *testing.T) {
	_, s := newTestSession(t, 1000)

	if _, err := s.Move("A", 1); err != ErrGameNotStarted {
		t.Errorf("expected ErrGameNotStarted, got %v", err)
	}

	s.Join("A")
	s.Join("B")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	res, err := s.Move("A", 1)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if res.Position != 1 || res.Balance != 1000 || res.Eliminated {
		t.Errorf("unexpected move result: %+v", res)
	}

	ok, err := s.Buy("A")
	if err != nil {
		t.Fatalf("Buy failed: %v", err)
	}
	if !ok {
		t.Fatal("Buy was refused")
	}
	if bal, _ := s.Balance("A"); bal != 750 {
		t.Errorf("got balance %d, want 750", bal)
	}
	if owned, _ := s.OwnedSpaces("A"); len(owned) != 1 || owned[0] != 1 {
		t.Errorf("got owned %v, want [1]", owned)
	}
}

func TestMoveToVictory(t *testing.T) {
	// Rent 300 beats the 200 GO payout, so lapping onto an owned space
	// bleeds 100 per lap.
	rents := make([]int, board.RentCount)
	for i := range rents {
		rents[i] = 300
	}
	r := New()
	s, err := r.Create("G1", "grind", 200, rents, 2000)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	s.Join("A")
	s.Join("B")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// A takes the first space; B grinds down paying rent on it every lap
	// until eliminated.
	s.Move("A", 1)
	if ok, _ := s.Buy("A"); !ok {
		t.Fatal("setup buy failed")
	}
	s.Move("B", 1) // first landing, rent without payout

	var winner string
	for i := 0; i < 200; i++ {
		res, err := s.Move("B", 25) // full lap, lands back on space 1
		if err != nil {
			t.Fatalf("Move failed: %v", err)
		}
		if res.Winner != "" {
			winner = res.Winner
			if !res.Eliminated {
				t.Error("winning move should coincide with B's elimination")
			}
			break
		}
	}

	if winner != "A" {
		t.Fatalf("got winner %q, want A", winner)
	}
	if s.Status() != StatusFinished {
		t.Errorf("got status %q, want %q", s.Status(), StatusFinished)
	}
	if s.Winner() != "A" {
		t.Errorf("got recorded winner %q, want A", s.Winner())
	}
}

func TestSnapshot(t *testing.T) {
	_, s := newTestSession(t, 1000)
	s.Join("A")
	s.Join("B")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	s.Move("A", 3)

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("got %d players, want 2", len(snap))
	}
	if snap[0].Username != "A" || snap[0].Pos != 3 || snap[0].Balance != 1000 || !snap[0].Active {
		t.Errorf("unexpected snapshot for A: %+v", snap[0])
	}
	if snap[1].Username != "B" || snap[1].Pos != 0 {
		t.Errorf("unexpected snapshot for B: %+v", snap[1])
	}
}
