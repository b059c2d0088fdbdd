/* bridge.go
 * The identity bridge between the two providers. The topology source keys games by
 * bracket position id, the live source by its own event id, and nothing in either
 * payload links the two. Once both sides know the participants, the pair of normalized
 * team names is enough to associate them: the bridge scans each live game against the
 * unbridged topology games and stamps the live event id onto the first match.
 */

package logic

import (
	"log/slog"
	"strings"

	"mmtui/api/model"
)

// NormalizeTeamName lowercases a team name and strips everything but letters and
// digits, so "St. John's" and "st johns" compare equal. Distinct names stay distinct;
// no alias table, no abbreviation expansion.
func NormalizeTeamName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pairKey builds an order-insensitive key for a game's two participant names. Empty
// when either side is unresolved; an unseeded slot can never form a match.
func pairKey(a, b string) string {
	na, nb := NormalizeTeamName(a), NormalizeTeamName(b)
	if na == "" || nb == "" {
		return ""
	}
	if na > nb {
		na, nb = nb, na
	}
	return na + "|" + nb
}

func gamePairKey(g *model.Game) string {
	if g.Top.Team == nil || g.Bottom.Team == nil {
		return ""
	}
	return pairKey(g.Top.Team.Name, g.Bottom.Team.Name)
}

// Bridge links live provider games to topology games in place and returns the number
// of newly linked games.
//
// Bridging is monotonic and idempotent: a game already carrying a LiveID is never
// re-evaluated, and a live game that matches nothing is skipped silently, expected and
// common before the field is seeded. If two topology games would match the same live
// game the first in region/round iteration order wins; deterministic, not an error.
func Bridge(t *model.Tournament, live []model.Game) int {
	linked := 0
	for _, lg := range live {
		liveID := lg.LiveID
		if liveID == "" {
			liveID = lg.ID
		}
		if liveID == "" || t.GameByLiveID(liveID) != nil {
			continue
		}
		key := gamePairKey(&lg)
		if key == "" {
			continue
		}

		if game := findUnbridged(t, key); game != nil {
			game.LiveID = liveID
			linked++
			slog.Debug("bridged game", "bracket_id", game.ID, "live_id", liveID)
		}
	}
	return linked
}

// findUnbridged returns the first unbridged game whose participant pair matches key,
// walking regions and rounds in order.
func findUnbridged(t *model.Tournament, key string) *model.Game {
	for _, region := range t.Regions {
		for _, round := range region.Rounds {
			for _, game := range round.Games {
				if game.Bridged() {
					continue
				}
				if gamePairKey(game) == key {
					return game
				}
			}
		}
	}
	return nil
}
