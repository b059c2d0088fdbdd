/* search.go
 * Team-name lookup over the current bracket, for jump-to-game navigation in the viewer.
 * Queries are forgiving: quoted multi-word names, partial names and sloppy casing all
 * resolve via fuzzy ranking against the teams actually in the bracket.
 */

package logic

import (
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"mmtui/api/model"
)

// FindGameByTeam returns the latest-round game involving the team best matching query,
// or nil when nothing in the bracket comes close. Checks exact normalized matches
// before falling back to fuzzy ranking so "Duke" never resolves to another team that
// merely contains it.
func FindGameByTeam(t *model.Tournament, query string) *model.Game {
	terms := splitQuery(query)
	if len(terms) == 0 {
		return nil
	}

	names, byName := collectTeamNames(t)
	if len(names) == 0 {
		return nil
	}

	target := NormalizeTeamName(strings.Join(terms, " "))
	if target == "" {
		return nil
	}

	if game, ok := byName[target]; ok {
		return game
	}

	ranked := fuzzy.RankFind(target, names)
	if len(ranked) == 0 {
		return nil
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return byName[best.Target]
}

// splitQuery tokenizes the query, honoring double quotes so "Michigan State" stays one
// term.
func splitQuery(query string) []string {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return strings.Fields(query)
	}
	parts, err := spaceSplitter.Split(query)
	if err != nil {
		return strings.Fields(query)
	}
	var terms []string
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// collectTeamNames gathers every resolved team's normalized name mapped to the
// latest-round game it appears in. Later rounds overwrite earlier ones during the walk,
// so lookups land on the team's current game.
func collectTeamNames(t *model.Tournament) ([]string, map[string]*model.Game) {
	byName := make(map[string]*model.Game)

	for _, kind := range model.RoundOrder {
		for _, region := range t.Regions {
			for _, round := range region.Rounds {
				if round.Kind != kind {
					continue
				}
				for _, game := range round.Games {
					for _, slot := range []model.TeamSeed{game.Top, game.Bottom} {
						if slot.Team == nil {
							continue
						}
						if key := NormalizeTeamName(slot.Team.Name); key != "" {
							byName[key] = game
						}
						if key := NormalizeTeamName(slot.Team.ShortName); key != "" {
							byName[key] = game
						}
					}
				}
			}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names, byName
}
