package domain

import (
	"fmt"
	"time"
)

// Variant names one of the two table rule sets
type Variant string

const (
	// VariantPositional numbers players 1..n, votes on a shared ballot and
	// wipes everything on replay.
	VariantPositional Variant = "positional"
	// VariantRoster uses typed player names, keeps them across replays and
	// skips voting.
	VariantRoster Variant = "roster"
)

// Settings holds configurable table rules
type Settings struct {
	Variant           Variant       `json:"variant"`
	MinPlayers        int           `json:"minPlayers"`
	MaxPlayers        int           `json:"maxPlayers"` // 0 means no limit
	ResetClearsRoster bool          `json:"resetClearsRoster"`
	Voting            bool          `json:"voting"`
	AllVotersAgree    bool          `json:"allVotersAgree"`
	RevealDelay       time.Duration `json:"revealDelay"`
	AvoidRepeatWords  bool          `json:"avoidRepeatWords"` // skip words already played at the table
}

// PositionalSettings returns the rules of the numbered-players variant.
// It only requires a single seat, unlike the roster variant.
func PositionalSettings() Settings {
	return Settings{
		Variant:           VariantPositional,
		MinPlayers:        1,
		MaxPlayers:        10,
		ResetClearsRoster: true,
		Voting:            true,
		AllVotersAgree:    true,
		RevealDelay:       time.Second,
		AvoidRepeatWords:  false,
	}
}

// RosterSettings returns the rules of the named-players variant
func RosterSettings() Settings {
	return Settings{
		Variant:           VariantRoster,
		MinPlayers:        3,
		MaxPlayers:        20,
		ResetClearsRoster: false,
		Voting:            false,
		AllVotersAgree:    true,
		RevealDelay:       time.Second,
		AvoidRepeatWords:  false,
	}
}

// SettingsFor returns the preset for a variant name
func SettingsFor(variant string) (Settings, error) {
	switch Variant(variant) {
	case VariantPositional:
		return PositionalSettings(), nil
	case VariantRoster:
		return RosterSettings(), nil
	default:
		return Settings{}, fmt.Errorf("unknown variant %q", variant)
	}
}

// UsesRoster reports whether players are named rather than numbered
func (s Settings) UsesRoster() bool {
	return s.Variant == VariantRoster
}
