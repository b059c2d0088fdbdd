/* ncaa_mapper.go
 * Pure mapping from the NCAA bracket wire schema to the domain model. No I/O happens
 * here; the client fetches, this file translates. Structural problems (no games, no
 * position ids) fail with *MappingError, everything else degrades to placeholders so
 * the bracket stays renderable pre-Selection Sunday.
 */

package external

import (
	"fmt"
	"sort"
	"strconv"

	"mmtui/api/model"
)

// nationalSection is the sectionId the NCAA API uses for the Final Four and
// championship games.
const nationalSection = 6

// canonicalRegionOrder is the display order when all four regions are named.
var canonicalRegionOrder = []string{"East", "West", "South", "Midwest"}

// MapChampionship translates an NCAA championship payload into a Tournament.
// Game IDs are bracket position id strings; LiveID is left empty for the identity
// bridge to fill in once the live provider knows about the game.
func MapChampionship(champ NCAAChampionship) (*model.Tournament, error) {
	if len(champ.Games) == 0 {
		return nil, &MappingError{Source: "ncaa", Reason: "championship has no games"}
	}

	// sectionId -> display name, falling back to "Region {n}" pre-Selection Sunday.
	regionNames := make(map[int]string)
	for _, r := range champ.Regions {
		name := r.Title
		if name == "" {
			name = fmt.Sprintf("Region %d", r.SectionID)
		}
		regionNames[r.SectionID] = name
	}

	// Group games by sectionId, then by round derived from the position id.
	sections := make(map[int]map[model.RoundKind][]*model.Game)
	for _, g := range champ.Games {
		if g.BracketPositionID <= 0 {
			return nil, &MappingError{Source: "ncaa", Reason: "game missing bracketPositionId"}
		}
		kind := model.RoundFromPosition(g.BracketPositionID)
		if sections[g.SectionID] == nil {
			sections[g.SectionID] = make(map[model.RoundKind][]*model.Game)
		}
		sections[g.SectionID][kind] = append(sections[g.SectionID][kind], mapNCAAGame(g))
	}

	var regions []*model.Region
	for _, sid := range orderedSectionIDs(sections, regionNames) {
		name, ok := regionNames[sid]
		if !ok {
			name = fmt.Sprintf("Region %d", sid)
		}
		regions = append(regions, &model.Region{
			ID:     fmt.Sprintf("section-%d", sid),
			Name:   name,
			Rounds: buildRounds(sections[sid]),
		})
	}

	// National section always last.
	if rounds, ok := sections[nationalSection]; ok {
		regions = append(regions, &model.Region{
			ID:       "national",
			Name:     "National",
			National: true,
			Rounds:   buildRounds(rounds),
		})
	}

	return model.NewTournament(
		fmt.Sprintf("ncaa-%d", champ.Year),
		champ.Title,
		champ.Year,
		regions,
	), nil
}

// orderedSectionIDs returns the non-national section ids in canonical region order when
// every region is named, otherwise in ascending sectionId order.
func orderedSectionIDs(sections map[int]map[model.RoundKind][]*model.Game, names map[int]string) []int {
	var ids []int
	for sid := range sections {
		if sid != nationalSection {
			ids = append(ids, sid)
		}
	}
	sort.Ints(ids)

	var named []int
	for _, want := range canonicalRegionOrder {
		for _, sid := range ids {
			if names[sid] == want {
				named = append(named, sid)
				break
			}
		}
	}
	if len(named) == len(ids) {
		return named
	}
	return ids
}

func buildRounds(byKind map[model.RoundKind][]*model.Game) []*model.Round {
	var rounds []*model.Round
	for _, kind := range model.RoundOrder {
		if games, ok := byKind[kind]; ok {
			rounds = append(rounds, &model.Round{Kind: kind, Games: games})
		}
	}
	return rounds
}

func mapNCAAGame(g NCAAGame) *model.Game {
	game := &model.Game{
		ID:     strconv.Itoa(g.BracketPositionID),
		Top:    mapNCAATeamSlot(g.Teams, 0),
		Bottom: mapNCAATeamSlot(g.Teams, 1),
		Status: mapNCAAState(g.GameState),
	}
	if g.VictorBracketPositionID > 0 {
		game.AdvancesTo = strconv.Itoa(g.VictorBracketPositionID)
	}
	for _, t := range g.Teams {
		if t.Winner && t.TeamID != "" {
			game.WinnerID = t.TeamID
		}
	}
	return game
}

// mapNCAATeamSlot maps the i-th team of a game, or a TBA placeholder when the slot is
// not filled yet. Unresolved slots are expected pre-seeding, never an error.
func mapNCAATeamSlot(teams []NCAATeam, i int) model.TeamSeed {
	if i >= len(teams) {
		return model.TeamSeed{Placeholder: "TBA"}
	}
	t := teams[i]
	if t.TeamID == "" {
		placeholder := t.Description
		if placeholder == "" {
			placeholder = "TBA"
		}
		return model.TeamSeed{Seed: t.Seed, Placeholder: placeholder}
	}
	name := t.Name
	short := t.ShortName
	if short == "" {
		short = name
	}
	return model.TeamSeed{
		Seed: t.Seed,
		Team: &model.Team{ID: t.TeamID, Name: name, ShortName: short},
	}
}

func mapNCAAState(state string) model.GameStatus {
	switch state {
	case "L":
		return model.StatusInProgress
	case "F":
		return model.StatusFinal
	default:
		return model.StatusScheduled
	}
}
