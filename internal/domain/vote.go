package domain

import (
	"sort"
	"time"
)

// Vote represents a vote cast by a player
type Vote struct {
	VoterID   int       `json:"voterId"`
	SuspectID int       `json:"suspectId"`
	Timestamp time.Time `json:"timestamp"`
}

// NewVote creates a new vote
func NewVote(voterID, suspectID int) *Vote {
	return &Vote{
		VoterID:   voterID,
		SuspectID: suspectID,
		Timestamp: time.Now(),
	}
}

// VoteResult represents the voting results for display
type VoteResult struct {
	PlayerID   int    `json:"playerId"`
	Name       string `json:"name"`
	VoteCount  int    `json:"voteCount"`
	IsImpostor bool   `json:"isImpostor"`
}

// CastBallot records one shared decision as every player's vote.
// Choosing again replaces the previous decision.
func (r *Round) CastBallot(suspectID int) error {
	if _, err := r.PlayerByID(suspectID); err != nil {
		return ErrInvalidSuspect
	}

	votes := make([]*Vote, 0, len(r.Players))
	for _, p := range r.Players {
		votes = append(votes, NewVote(p.ID, suspectID))
	}
	r.Votes = votes

	return nil
}

// CastVote records a single player's vote
func (r *Round) CastVote(voterID, suspectID int) error {
	if _, err := r.PlayerByID(voterID); err != nil {
		return err
	}
	if _, err := r.PlayerByID(suspectID); err != nil {
		return ErrInvalidSuspect
	}
	if r.HasPlayerVoted(voterID) {
		return ErrAlreadyVoted
	}

	r.Votes = append(r.Votes, NewVote(voterID, suspectID))
	return nil
}

// HasPlayerVoted checks if a player has already voted
func (r *Round) HasPlayerVoted(playerID int) bool {
	for _, v := range r.Votes {
		if v.VoterID == playerID {
			return true
		}
	}
	return false
}

// AllVoted returns true if every player has voted
func (r *Round) AllVoted() bool {
	return len(r.Votes) >= len(r.Players)
}

// Tally returns the suspect with the most votes. Ties go to the lowest id.
func (r *Round) Tally() (int, error) {
	return TallyVotes(r.Votes)
}

// TallyVotes counts votes per suspect and returns the plurality winner.
// Candidates are scanned in ascending id order and only a strictly greater
// count replaces the leader, so the lowest id wins a tie.
func TallyVotes(votes []*Vote) (int, error) {
	if len(votes) == 0 {
		return 0, ErrNoVotesCast
	}

	voteCounts := make(map[int]int)
	for _, v := range votes {
		voteCounts[v.SuspectID]++
	}

	candidates := make([]int, 0, len(voteCounts))
	for id := range voteCounts {
		candidates = append(candidates, id)
	}
	sort.Ints(candidates)

	maxVotes := 0
	mostVoted := 0
	for _, id := range candidates {
		if voteCounts[id] > maxVotes {
			maxVotes = voteCounts[id]
			mostVoted = id
		}
	}

	return mostVoted, nil
}

// VoteCounts returns one entry per player, in seat order
func (r *Round) VoteCounts() []VoteResult {
	voteCounts := make(map[int]int)
	for _, v := range r.Votes {
		voteCounts[v.SuspectID]++
	}

	results := make([]VoteResult, 0, len(r.Players))
	for i, p := range r.Players {
		results = append(results, VoteResult{
			PlayerID:   p.ID,
			Name:       p.DisplayName(),
			VoteCount:  voteCounts[p.ID],
			IsImpostor: i == r.ImpostorIndex,
		})
	}
	return results
}
