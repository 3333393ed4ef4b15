package storage

import (
	"time"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// NewMatchRecord summarizes a human-vs-computer match for the journal.
// Side 1 is the human. A match that is not over is recorded as abandoned.
func NewMatchRecord(player string, m *battle.Match, started, ended time.Time) *MatchRecord {
	human := m.Stats(battle.Side1)
	cpu := m.Stats(battle.Side2)

	rec := &MatchRecord{
		Player:      player,
		EndReason:   EndAbandoned,
		BoardSize:   m.Combatant(battle.Side1).Fleet().Size(),
		Moves:       m.Moves(),
		HumanShots:  human.Shots,
		HumanHits:   human.Hits,
		CPUShots:    cpu.Shots,
		CPUHits:     cpu.Hits,
		DurationSec: int(ended.Sub(started).Seconds()),
	}

	if m.Over() {
		rec.EndReason = EndCompleted
		if m.Winner() == battle.Side1 {
			rec.Winner = WinnerHuman
		} else {
			rec.Winner = WinnerComputer
		}
	}
	return rec
}
