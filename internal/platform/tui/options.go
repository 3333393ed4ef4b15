package tui

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Journal is the match storage the TUI needs. *storage.Store implements it.
type Journal interface {
	SaveMatch(rec *storage.MatchRecord) (int64, error)
	RecentMatches(player string, limit int) ([]storage.MatchRecord, error)
	Summary(player string) (storage.Summary, error)
}

// Options configures a TUI session.
type Options struct {
	Config  core.RuntimeConfig
	Rules   battle.Rules
	Player  string      // Name recorded in the journal
	Journal Journal     // Optional, history is empty without it
	Logger  *log.Logger // Optional

	src *rand.Rand // Shared by the matches of one session
}

// withRNG returns o with the session RNG created from the configured seed.
// Copies of the result share one RNG.
func (o Options) withRNG() Options {
	if o.src == nil {
		o.src = rand.New(rand.NewSource(o.Config.ResolveSeed()))
	}
	return o
}
