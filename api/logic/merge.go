/* merge.go
 * Folds partial live updates into the existing tournament tree. A scoreboard refresh
 * carries only the games that exist on the live side, keyed by bridge identifier; the
 * merge touches matched games in place and never rebuilds the region/round grouping.
 */

package logic

import (
	"errors"
	"fmt"
	"log/slog"

	"mmtui/api/model"
)

// AdvancementConflictError reports a downstream slot that already holds a different
// team than the one a winner update wants to advance. A data inconsistency between the
// two sources: surfaced as a warning, never fatal, and the first-set slot value wins.
type AdvancementConflictError struct {
	GameID   string
	SlotTeam string
	Winner   string
}

func (e *AdvancementConflictError) Error() string {
	return fmt.Sprintf("game %s: slot already holds %q, refusing to replace with %q",
		e.GameID, e.SlotTeam, e.Winner)
}

// Merge applies partial live updates to the tournament in place. It returns the IDs of
// games that actually changed and any advancement conflicts joined into one error.
//
// An update whose bridge identifier matches no game is dropped silently; the bridge
// may simply not have fired for it yet. Conflicts abort propagation for their own entry
// only; the rest of the batch still applies.
func Merge(t *model.Tournament, updates []model.Game) ([]string, error) {
	var changed []string
	var conflicts []error

	for i := range updates {
		update := &updates[i]
		liveID := update.LiveID
		if liveID == "" {
			liveID = update.ID
		}
		game := t.GameByLiveID(liveID)
		if game == nil {
			slog.Debug("dropping update for unbridged game", "live_id", liveID)
			continue
		}

		if applyGameUpdate(game, update) {
			changed = append(changed, game.ID)
		}

		if game.WinnerID != "" && game.AdvancesTo != "" {
			if err := advanceWinner(t, game); err != nil {
				slog.Warn("advancement conflict", "game", game.ID, "err", err)
				conflicts = append(conflicts, err)
			}
		}
	}
	return changed, errors.Join(conflicts...)
}

// applyGameUpdate copies the live fields of update onto game and reports whether
// anything changed. Topology fields (ID, AdvancesTo, region placement) are never
// touched.
func applyGameUpdate(game, update *model.Game) bool {
	dirty := false

	if update.Status != game.Status {
		game.Status = update.Status
		dirty = true
	}
	if update.HasScore && (game.TopScore != update.TopScore || game.BotScore != update.BotScore || !game.HasScore) {
		game.TopScore = update.TopScore
		game.BotScore = update.BotScore
		game.HasScore = true
		dirty = true
	}
	if update.WinnerID != "" && update.WinnerID != game.WinnerID {
		game.WinnerID = update.WinnerID
		dirty = true
	}
	if update.Period != 0 && update.Period != game.Period {
		game.Period = update.Period
		dirty = true
	}
	if update.Clock != "" && update.Clock != game.Clock {
		game.Clock = update.Clock
		dirty = true
	}

	// Live data can resolve a slot the topology source still shows as TBA.
	if update.Top.Resolved() && !game.Top.Resolved() {
		game.Top = update.Top
		dirty = true
	}
	if update.Bottom.Resolved() && !game.Bottom.Resolved() {
		game.Bottom = update.Bottom
		dirty = true
	}
	return dirty
}

// advanceWinner propagates a decided game's winner into the downstream game named by
// its advancement pointer, filling a placeholder slot only.
func advanceWinner(t *model.Tournament, game *model.Game) error {
	downstream := t.GameByID(game.AdvancesTo)
	if downstream == nil {
		slog.Debug("advancement target not in bracket", "game", game.ID, "target", game.AdvancesTo)
		return nil
	}

	winnerSeed, ok := winnerSeed(game)
	if !ok {
		return nil
	}

	// If a downstream slot already holds one of this game's participants, this feeder
	// has fired before: same team means idempotent re-apply, a different team means the
	// sources disagree and the first-set value stands.
	for _, slot := range []*model.TeamSeed{&downstream.Top, &downstream.Bottom} {
		if slot.Team == nil {
			continue
		}
		if !participates(game, slot.Team.ID) {
			continue
		}
		if slot.Team.ID == winnerSeed.Team.ID {
			return nil
		}
		return &AdvancementConflictError{
			GameID:   downstream.ID,
			SlotTeam: slot.Team.Name,
			Winner:   winnerSeed.Team.Name,
		}
	}

	if !downstream.Top.Resolved() {
		downstream.Top = winnerSeed
		return nil
	}
	if !downstream.Bottom.Resolved() {
		downstream.Bottom = winnerSeed
		return nil
	}
	return &AdvancementConflictError{
		GameID:   downstream.ID,
		SlotTeam: downstream.Bottom.Team.Name,
		Winner:   winnerSeed.Team.Name,
	}
}

// winnerSeed returns the winning side's full seed entry so the seed number travels with
// the team.
func winnerSeed(game *model.Game) (model.TeamSeed, bool) {
	if game.Top.Team != nil && game.Top.Team.ID == game.WinnerID {
		return game.Top, true
	}
	if game.Bottom.Team != nil && game.Bottom.Team.ID == game.WinnerID {
		return game.Bottom, true
	}
	return model.TeamSeed{}, false
}

func participates(game *model.Game, teamID string) bool {
	return (game.Top.Team != nil && game.Top.Team.ID == teamID) ||
		(game.Bottom.Team != nil && game.Bottom.Team.ID == teamID)
}
