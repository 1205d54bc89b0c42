package domain

// Verdict is the outcome of a round that went to a vote
type Verdict struct {
	SuspectID    int    `json:"suspectId"`
	SuspectName  string `json:"suspectName"`
	CiviliansWin bool   `json:"civiliansWin"`
	Winner       Role   `json:"winner"`
}

// ResultView is everything the results screen shows
type ResultView struct {
	Category     CategoryInfo `json:"category"`
	CategoryName string       `json:"categoryName"`
	SecretWord   string       `json:"secretWord"`
	ImpostorID   int          `json:"impostorId"`
	ImpostorName string       `json:"impostorName"`
	Civilians    []PlayerInfo `json:"civilians"`
	Votes        []VoteResult `json:"votes,omitempty"`
	Verdict      *Verdict     `json:"verdict,omitempty"`
}

// ComposeResults builds the results view. suspectID is nil when the round
// had no vote, in which case only the identities are revealed. The round
// is not modified.
func ComposeResults(r *Round, suspectID *int) ResultView {
	impostor := r.Impostor()

	civilians := make([]PlayerInfo, 0, len(r.Players))
	for _, p := range r.Civilians() {
		civilians = append(civilians, p.ToInfo())
	}

	view := ResultView{
		Category:     r.Category.Info(),
		CategoryName: r.Category.DisplayName(),
		SecretWord:   r.SecretWord,
		ImpostorID:   impostor.ID,
		ImpostorName: impostor.DisplayName(),
		Civilians:    civilians,
	}

	if len(r.Votes) > 0 {
		view.Votes = r.VoteCounts()
	}

	if suspectID != nil {
		verdict := &Verdict{
			SuspectID:    *suspectID,
			CiviliansWin: *suspectID == r.ImpostorID(),
		}
		if suspect, err := r.PlayerByID(*suspectID); err == nil {
			verdict.SuspectName = suspect.DisplayName()
		}
		if verdict.CiviliansWin {
			verdict.Winner = RoleCivilian // civilians caught the impostor
		} else {
			verdict.Winner = RoleImpostor
		}
		view.Verdict = verdict
	}

	return view
}
