package domain

import (
	"errors"
	"testing"
)

func newTestRound(t *testing.T, n int) *Round {
	t.Helper()
	round, err := StartRound(seeded(), CategoryObjects, NewPositionalPlayers(n), PositionalSettings())
	if err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	return round
}

func TestReveal_Idempotent(t *testing.T) {
	round := newTestRound(t, 4)

	for i := 0; i < 4; i++ {
		first, err := round.Reveal()
		if err != nil {
			t.Fatalf("reveal %d: %v", i, err)
		}
		second, err := round.Reveal()
		if err != nil {
			t.Fatalf("second reveal %d: %v", i, err)
		}
		if first != second {
			t.Fatalf("reveal %d changed between calls: %+v vs %+v", i, first, second)
		}
		if _, err := round.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
}

func TestReveal_RoleView(t *testing.T) {
	round := newTestRound(t, 3)

	for i := range round.Players {
		view, err := round.Reveal()
		if err != nil {
			t.Fatalf("reveal: %v", err)
		}
		if i == round.ImpostorIndex {
			if view.Role != RoleImpostor || view.SecretWord != "" {
				t.Fatalf("impostor view leaked the word: %+v", view)
			}
		} else if view.Role != RoleCivilian || view.SecretWord != round.SecretWord {
			t.Fatalf("civilian view wrong: %+v", view)
		}
		round.Advance()
	}
}

func TestAdvance_Monotonic(t *testing.T) {
	const n = 5
	round := newTestRound(t, n)

	allRevealedSeen := 0
	last := round.CurrentTurn
	for i := 0; i < n; i++ {
		if _, err := round.Reveal(); err != nil {
			t.Fatalf("reveal: %v", err)
		}
		state, err := round.Advance()
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if round.CurrentTurn != last+1 {
			t.Fatalf("turn went from %d to %d", last, round.CurrentTurn)
		}
		last = round.CurrentTurn
		if state.AllRevealed {
			allRevealedSeen++
		}
	}

	if round.CurrentTurn != n {
		t.Fatalf("want turn %d after %d advances, got %d", n, n, round.CurrentTurn)
	}
	if allRevealedSeen != 1 {
		t.Fatalf("AllRevealed reached %d times", allRevealedSeen)
	}
	if got := round.TurnState().String(); got != "AllRevealed" {
		t.Fatalf("want AllRevealed, got %s", got)
	}

	if _, err := round.Advance(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("advance past the end should fail, got %v", err)
	}
	if _, err := round.Reveal(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("reveal past the end should fail, got %v", err)
	}
	if round.CurrentTurn != n {
		t.Fatalf("failed calls moved the turn to %d", round.CurrentTurn)
	}
}

func TestAdvance_RequiresReveal(t *testing.T) {
	round := newTestRound(t, 3)

	if _, err := round.Advance(); !errors.Is(err, ErrOutOfSequence) {
		t.Fatalf("want ErrOutOfSequence, got %v", err)
	}
	if round.CurrentTurn != 0 {
		t.Fatalf("turn moved without a reveal")
	}
	if got := round.TurnState().String(); got != "AwaitingReveal(0)" {
		t.Fatalf("want AwaitingReveal(0), got %s", got)
	}
}
