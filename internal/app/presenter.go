package app

import "impostor/internal/domain"

// Presenter is the display side of a table. The WebSocket client
// implements it for the browser; tests record calls.
type Presenter interface {
	ShowScreen(screen string) error
	RenderSetup(view domain.SetupView) error
	RenderTurn(view domain.TurnView) error
	RenderReveal(view domain.RoleView) error
	RenderAdvanceReady(view domain.TurnView) error
	RenderVoting(view domain.VotingView) error
	RenderResults(view domain.ResultView) error
	ShowValidation(code, message string) error
}

// nopPresenter discards everything while no display is attached
type nopPresenter struct{}

func (nopPresenter) ShowScreen(string) error { return nil }
func (nopPresenter) RenderSetup(domain.SetupView) error { return nil }
func (nopPresenter) RenderTurn(domain.TurnView) error { return nil }
func (nopPresenter) RenderReveal(domain.RoleView) error { return nil }
func (nopPresenter) RenderAdvanceReady(domain.TurnView) error { return nil }
func (nopPresenter) RenderVoting(domain.VotingView) error { return nil }
func (nopPresenter) RenderResults(domain.ResultView) error { return nil }
func (nopPresenter) ShowValidation(string, string) error { return nil }
