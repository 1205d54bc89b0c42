package app

import "context"

// RosterStore persists the player names of a device between visits
type RosterStore interface {
	Load(ctx context.Context, owner string) ([]string, error)
	Save(ctx context.Context, owner string, names []string) error
}
