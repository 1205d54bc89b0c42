package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"impostor/internal/domain"
)

// Table wraps a game with a presenter, roster persistence and locking.
// All intents run to completion under the table lock.
type Table struct {
	game      *domain.Game
	mu        sync.Mutex
	presenter Presenter
	roster    RosterStore
	owner     string
	logger    *slog.Logger

	// bumps on every reveal or advance so stale delayed renders are skipped
	revealSeq   int
	revealTimer *time.Timer

	lastActive time.Time
	closed     bool
}

// NewTable creates a table around a fresh game
func NewTable(game *domain.Game, roster RosterStore, logger *slog.Logger) *Table {
	return &Table{
		game:       game,
		presenter:  nopPresenter{},
		roster:     roster,
		logger:     logger.With("table", game.ID),
		lastActive: time.Now(),
	}
}

// GetCode returns the table code
func (t *Table) GetCode() string {
	return t.game.ID
}

// GetCreatedAt returns when the table was created
func (t *Table) GetCreatedAt() time.Time {
	return t.game.CreatedAt
}

// GetLastActive returns the time of the last intent
func (t *Table) GetLastActive() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActive
}

// GetPhase returns the current phase
func (t *Table) GetPhase() domain.Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Phase
}

// GetPlayerCount returns the number of seats configured
func (t *Table) GetPlayerCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.game.Players())
}

// IsAttached reports whether a display is connected
func (t *Table) IsAttached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, nop := t.presenter.(nopPresenter)
	return !nop
}

// Attach connects a display. The roster of owner is loaded once, the
// first time an owner attaches; load failures leave the roster empty.
func (t *Table) Attach(ctx context.Context, owner string, p Presenter) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.presenter = p
	t.touch()

	if owner != "" && owner != t.owner {
		t.owner = owner
		if t.game.Settings.UsesRoster() && t.game.Phase == domain.PhaseSetup {
			names, err := t.roster.Load(ctx, owner)
			if err != nil {
				t.logger.Warn("failed to load roster", "device", owner, "error", err)
				names = nil
			}
			t.game.LoadRoster(names)
		}
	}

	t.renderCurrent()
}

// Detach disconnects the display if it is still the attached one
func (t *Table) Detach(p Presenter) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.presenter == p {
		t.presenter = nopPresenter{}
	}
}

// ChooseCategory handles the category selection
func (t *Table) ChooseCategory(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.ChooseCategory(key); err != nil {
		return t.refuse(err)
	}
	t.send(t.presenter.RenderSetup(t.game.SetupView()))
	return nil
}

// ChoosePlayerCount handles the number-of-players selection
func (t *Table) ChoosePlayerCount(n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.ChoosePlayerCount(n); err != nil {
		return t.refuse(err)
	}
	t.send(t.presenter.RenderSetup(t.game.SetupView()))
	return nil
}

// AddPlayer adds a name to the roster and saves it
func (t *Table) AddPlayer(ctx context.Context, name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.AddPlayer(name); err != nil {
		return t.refuse(err)
	}
	t.saveRoster(ctx)
	t.send(t.presenter.RenderSetup(t.game.SetupView()))
	return nil
}

// RemovePlayer removes a name from the roster and saves it
func (t *Table) RemovePlayer(ctx context.Context, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.RemovePlayer(index); err != nil {
		return t.refuse(err)
	}
	t.saveRoster(ctx)
	t.send(t.presenter.RenderSetup(t.game.SetupView()))
	return nil
}

// Start deals a new round and shows the first turn
func (t *Table) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	round, err := t.game.Start()
	if err != nil {
		return t.refuse(err)
	}

	t.logger.Info("round started",
		"round", round.Number,
		"category", round.Category,
		"players", len(round.Players),
	)

	t.revealSeq++
	t.send(t.presenter.ShowScreen(t.game.Phase.Screen()))
	t.send(t.presenter.RenderTurn(t.game.TurnView()))
	return nil
}

// RequestReveal flips the current player's card. The advance control is
// offered after the reveal delay.
func (t *Table) RequestReveal() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	view, err := t.game.Reveal()
	if err != nil {
		return t.refuse(err)
	}

	t.send(t.presenter.RenderReveal(view))

	t.revealSeq++
	t.scheduleAdvanceReady(t.revealSeq)
	return nil
}

// RequestAdvance passes the device to the next player
func (t *Table) RequestAdvance() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	state, err := t.game.Advance()
	if err != nil {
		return t.refuse(err)
	}

	t.revealSeq++
	t.stopRevealTimer()

	if state.AllRevealed {
		t.logger.Debug("all players revealed")
	}
	t.send(t.presenter.RenderTurn(t.game.TurnView()))
	return nil
}

// OpenVoting moves to the voting screen
func (t *Table) OpenVoting() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.OpenVoting(); err != nil {
		return t.refuse(err)
	}

	t.send(t.presenter.ShowScreen(t.game.Phase.Screen()))
	t.send(t.presenter.RenderVoting(t.game.VotingView()))
	return nil
}

// CastVote records a vote. voterID is ignored when all voters agree.
func (t *Table) CastVote(voterID, suspectID int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	if err := t.game.Vote(voterID, suspectID); err != nil {
		return t.refuse(err)
	}
	t.send(t.presenter.RenderVoting(t.game.VotingView()))
	return nil
}

// ShowResults finishes the round and shows the outcome
func (t *Table) ShowResults() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	results, err := t.game.Finish()
	if err != nil {
		return t.refuse(err)
	}

	attrs := []any{"impostor", results.ImpostorName}
	if results.Verdict != nil {
		attrs = append(attrs, "suspect", results.Verdict.SuspectID, "winner", results.Verdict.Winner)
	}
	t.logger.Info("round finished", attrs...)

	t.send(t.presenter.ShowScreen(t.game.Phase.Screen()))
	t.send(t.presenter.RenderResults(results))
	return nil
}

// Replay returns to setup, keeping or clearing the roster per the table rules
func (t *Table) Replay(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touch()

	t.revealSeq++
	t.stopRevealTimer()
	t.game.Reset()

	if t.game.Settings.UsesRoster() && t.game.Settings.ResetClearsRoster {
		t.saveRoster(ctx)
	}

	t.send(t.presenter.ShowScreen(t.game.Phase.Screen()))
	t.send(t.presenter.RenderSetup(t.game.SetupView()))
	return nil
}

// Snapshot returns the current state for a (re)connecting display
func (t *Table) Snapshot() map[string]interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	state := map[string]interface{}{
		"phase":    t.game.Phase,
		"screen":   t.game.Phase.Screen(),
		"settings": t.game.Settings,
		"setup":    t.game.SetupView(),
	}

	switch t.game.Phase {
	case domain.PhaseReveal:
		state["turn"] = t.game.TurnView()
	case domain.PhaseVoting:
		state["voting"] = t.game.VotingView()
	case domain.PhaseResults:
		if results, err := t.game.Results(); err == nil {
			state["results"] = results
		}
	}

	return state
}

// Close stops pending timers and detaches the display
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	t.stopRevealTimer()
	t.presenter = nopPresenter{}
}

// renderCurrent shows the screen for the current phase (caller must hold lock)
func (t *Table) renderCurrent() {
	t.send(t.presenter.ShowScreen(t.game.Phase.Screen()))

	switch t.game.Phase {
	case domain.PhaseSetup:
		t.send(t.presenter.RenderSetup(t.game.SetupView()))
	case domain.PhaseReveal:
		t.send(t.presenter.RenderTurn(t.game.TurnView()))
		if t.game.CurrentRound.HasRevealed() {
			if view, err := t.game.Reveal(); err == nil {
				t.send(t.presenter.RenderReveal(view))
				t.send(t.presenter.RenderAdvanceReady(t.game.TurnView()))
			}
		}
	case domain.PhaseVoting:
		t.send(t.presenter.RenderVoting(t.game.VotingView()))
	case domain.PhaseResults:
		if results, err := t.game.Results(); err == nil {
			t.send(t.presenter.RenderResults(results))
		}
	}
}

// scheduleAdvanceReady offers the next control after the reveal delay
// (caller must hold lock)
func (t *Table) scheduleAdvanceReady(seq int) {
	t.stopRevealTimer()

	delay := t.game.Settings.RevealDelay
	if delay <= 0 {
		t.send(t.presenter.RenderAdvanceReady(t.game.TurnView()))
		return
	}

	t.revealTimer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		if t.closed || t.revealSeq != seq {
			return
		}
		t.send(t.presenter.RenderAdvanceReady(t.game.TurnView()))
	})
}

func (t *Table) stopRevealTimer() {
	if t.revealTimer != nil {
		t.revealTimer.Stop()
		t.revealTimer = nil
	}
}

// saveRoster persists the roster; failures are logged and ignored
func (t *Table) saveRoster(ctx context.Context) {
	if t.owner == "" {
		return
	}
	if err := t.roster.Save(ctx, t.owner, t.game.Roster.Names()); err != nil {
		t.logger.Warn("failed to save roster", "device", t.owner, "error", err)
	}
}

// refuse reports a rejected intent to the display and returns the error
func (t *Table) refuse(err error) error {
	code, message := ErrorCode(err)
	t.logger.Debug("intent refused", "phase", t.game.Phase, "code", code, "error", err)
	t.send(t.presenter.ShowValidation(code, message))
	return err
}

// send logs presenter failures; the game state is already committed
func (t *Table) send(err error) {
	if err != nil {
		t.logger.Debug("failed to render", "error", err)
	}
}

func (t *Table) touch() {
	t.lastActive = time.Now()
}
