package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/game"
)

// ScoreRow is one scoreboard line.
type ScoreRow struct {
	ID     uint32
	Name   string
	Color  config.RGB
	Score  int
	Alive  bool
	Leader bool
	Status string // "racing", "winner" or the death cause
}

// Scoreboard returns one row per noodle, highest score first, ties by ID.
func Scoreboard(v *game.View) []ScoreRow {
	leaders := make(map[uint32]bool, len(v.Leaders))
	for _, id := range v.Leaders {
		leaders[id] = true
	}

	rows := make([]ScoreRow, 0, len(v.Noodles))
	for _, n := range v.Noodles {
		status := "racing"
		switch {
		case v.State.Phase == game.AwaitingAdvance && n.ID == v.State.Winner:
			status = "winner"
		case !n.Alive:
			status = n.Cause.String()
		}
		rows = append(rows, ScoreRow{
			ID:     n.ID,
			Name:   n.Name,
			Color:  n.Color,
			Score:  n.Score,
			Alive:  n.Alive,
			Leader: leaders[n.ID],
			Status: status,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

// StatusLine summarizes the round for a title bar.
func StatusLine(v *game.View) string {
	alive := 0
	for _, n := range v.Noodles {
		if n.Alive {
			alive++
		}
	}
	return fmt.Sprintf("Round %d/%d | Alive: %d/%d", v.State.Round, v.State.MaxRounds, alive, len(v.Noodles))
}

// Banner returns the round-over title and the acknowledgment hint. Both are
// empty while the round is running.
func Banner(v *game.View, advanceKey string) (title, hint string) {
	if v.State.Phase != game.AwaitingAdvance {
		return "", ""
	}

	if n, ok := v.Noodle(v.State.Winner); ok {
		title = fmt.Sprintf("%s wins round %d", n.Name, v.State.Round)
	} else {
		title = fmt.Sprintf("Round %d: no survivors", v.State.Round)
	}

	key := strings.ToUpper(advanceKey)
	if v.MatchOver {
		names := make([]string, 0, len(v.Leaders))
		for _, id := range v.Leaders {
			if n, ok := v.Noodle(id); ok {
				names = append(names, n.Name)
			}
		}
		if len(names) > 0 {
			title += " | Match: " + strings.Join(names, ", ")
		}
		return title, fmt.Sprintf("Press %s for a new match", key)
	}
	return title, fmt.Sprintf("Press %s for round %d", key, v.State.Round+1)
}

// ButtonLabel returns the caption of the acknowledgment button.
func ButtonLabel(v *game.View) string {
	if v.MatchOver {
		return "New match"
	}
	return "Next round"
}
