package domain

import (
	"errors"
	"testing"
)

func TestStartRound_ExactlyOneImpostor(t *testing.T) {
	rng := seeded()
	for n := 3; n <= 12; n++ {
		for i := 0; i < 20; i++ {
			round, err := StartRound(rng, CategorySports, NewPositionalPlayers(n), Settings{MinPlayers: 3})
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}

			impostors, civilians := 0, 0
			for _, p := range round.Players {
				switch p.Role {
				case RoleImpostor:
					impostors++
				case RoleCivilian:
					civilians++
				default:
					t.Fatalf("player %d has no role", p.ID)
				}
			}
			if impostors != 1 || civilians != n-1 {
				t.Fatalf("n=%d: got %d impostors and %d civilians", n, impostors, civilians)
			}
			if round.ImpostorIndex < 0 || round.ImpostorIndex >= n {
				t.Fatalf("n=%d: impostor index %d out of bounds", n, round.ImpostorIndex)
			}
			if round.Players[round.ImpostorIndex].Role != RoleImpostor {
				t.Fatalf("impostor index does not point at the impostor")
			}
			if round.CurrentTurn != 0 || len(round.Votes) != 0 {
				t.Fatalf("fresh round should start at turn 0 with no votes")
			}
		}
	}
}

func TestStartRound_PlayerLimits(t *testing.T) {
	tests := []struct {
		name     string
		players  int
		settings Settings
		wantErr  error
	}{
		{name: "roster minimum enforced", players: 2, settings: RosterSettings(), wantErr: ErrInsufficientPlayers},
		{name: "roster minimum met", players: 3, settings: RosterSettings()},
		{name: "positional allows two", players: 2, settings: PositionalSettings()},
		{name: "no players", players: 0, settings: PositionalSettings(), wantErr: ErrInsufficientPlayers},
		{name: "over maximum", players: 11, settings: PositionalSettings(), wantErr: ErrTooManyPlayers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StartRound(seeded(), CategoryPlaces, NewPositionalPlayers(tt.players), tt.settings)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStartRound_DoesNotAliasPlayers(t *testing.T) {
	players := NewNamedPlayers([]string{"Ana", "Beto", "Caro"})
	if _, err := StartRound(seeded(), CategoryFruits, players, RosterSettings()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range players {
		if p.Role != "" {
			t.Fatalf("caller's slice was modified: %+v", p)
		}
	}
}

func TestStartRound_ScriptedSelection(t *testing.T) {
	rng := &scriptedRand{values: []int{3, 1}}
	round, err := StartRound(rng, CategoryFruits, NewNamedPlayers([]string{"A", "B", "C"}), RosterSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if round.SecretWord != "Mango" {
		t.Fatalf("want Mango, got %q", round.SecretWord)
	}
	if round.ImpostorIndex != 1 || round.ImpostorID() != 2 {
		t.Fatalf("want impostor index 1 (id 2), got %d (id %d)", round.ImpostorIndex, round.ImpostorID())
	}
}
