package domain

import (
	"errors"
	"testing"
)

func votesFor(suspects ...int) []*Vote {
	votes := make([]*Vote, 0, len(suspects))
	for i, s := range suspects {
		votes = append(votes, NewVote(i+1, s))
	}
	return votes
}

func TestTallyVotes(t *testing.T) {
	tests := []struct {
		name     string
		suspects []int
		want     int
	}{
		{name: "tie goes to lowest id", suspects: []int{2, 2, 1, 1}, want: 1},
		{name: "tie in reverse insertion order", suspects: []int{3, 1, 3, 1}, want: 1},
		{name: "clear plurality", suspects: []int{3, 1, 3, 2}, want: 3},
		{name: "single vote", suspects: []int{4}, want: 4},
		{name: "unanimous", suspects: []int{2, 2, 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TallyVotes(votesFor(tt.suspects...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTally_NoVotes(t *testing.T) {
	round := newTestRound(t, 3)
	if _, err := round.Tally(); !errors.Is(err, ErrNoVotesCast) {
		t.Fatalf("want ErrNoVotesCast, got %v", err)
	}
}

func TestCastBallot_ReplicatesChoice(t *testing.T) {
	round := newTestRound(t, 4)

	if err := round.CastBallot(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := round.CastBallot(3); err != nil {
		t.Fatalf("changing the choice should succeed: %v", err)
	}

	if len(round.Votes) != 4 {
		t.Fatalf("want one vote per player, got %d", len(round.Votes))
	}
	for i, v := range round.Votes {
		if v.VoterID != i+1 || v.SuspectID != 3 {
			t.Fatalf("vote %d = %+v, want voter %d for 3", i, v, i+1)
		}
	}

	if err := round.CastBallot(9); !errors.Is(err, ErrInvalidSuspect) {
		t.Fatalf("want ErrInvalidSuspect, got %v", err)
	}
}

func TestCastVote_PerVoter(t *testing.T) {
	round := newTestRound(t, 3)

	if err := round.CastVote(1, 2); err != nil {
		t.Fatalf("first vote should succeed, got: %v", err)
	}
	if err := round.CastVote(1, 3); !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("duplicate vote should be rejected, got %v", err)
	}
	if err := round.CastVote(2, 0); !errors.Is(err, ErrInvalidSuspect) {
		t.Fatalf("want ErrInvalidSuspect, got %v", err)
	}
	if err := round.CastVote(7, 1); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("want ErrPlayerNotFound, got %v", err)
	}
	if len(round.Votes) != 1 {
		t.Fatalf("rejected votes mutated the round, got %d votes", len(round.Votes))
	}
	if round.AllVoted() {
		t.Fatalf("AllVoted with one of three votes")
	}
}

func TestVoteCounts(t *testing.T) {
	round := newTestRound(t, 3)
	round.CastVote(1, 2)
	round.CastVote(2, 2)
	round.CastVote(3, 1)

	counts := round.VoteCounts()
	want := []int{1, 2, 0}
	for i, c := range counts {
		if c.VoteCount != want[i] {
			t.Errorf("player %d: want %d votes, got %d", c.PlayerID, want[i], c.VoteCount)
		}
		if c.IsImpostor != (i == round.ImpostorIndex) {
			t.Errorf("player %d impostor flag wrong", c.PlayerID)
		}
	}
}
