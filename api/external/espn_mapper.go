/* espn_mapper.go
 * Pure mapping from the ESPN wire schema to the domain model. ESPN is the live source,
 * so every game mapped here is born bridged: its LiveID is its own event id. When ESPN
 * serves as the fallback topology source the same id doubles as the game's stable ID;
 * those ids mean something different from bracket position ids and are only unique
 * within an ESPN-sourced session.
 */

package external

import (
	"strconv"
	"strings"
	"time"

	"mmtui/api/model"
)

// SelectTournamentEntry picks the NCAA tournament out of an ESPN tournaments payload,
// which also lists the NIT and assorted invitationals. Prefers an entry with a populated
// bracket whose name looks like the national championship; settles for any entry with a
// bracket.
func SelectTournamentEntry(entries []ESPNTournamentEntry, year int) (ESPNTournamentEntry, error) {
	if len(entries) == 0 {
		return ESPNTournamentEntry{}, &MappingError{
			Source: "espn",
			Reason: "no tournaments returned for year " + strconv.Itoa(year),
		}
	}

	hasBracket := func(e ESPNTournamentEntry) bool {
		return len(e.Bracket.Rounds) > 0
	}
	nameMatch := func(e ESPNTournamentEntry) bool {
		n := strings.ToLower(e.Name)
		wanted := strings.Contains(n, "ncaa") || strings.Contains(n, "march") ||
			strings.Contains(n, "championship") || strings.Contains(n, "tournament")
		unwanted := strings.Contains(n, "nit") || strings.Contains(n, "invitational")
		return wanted && !unwanted
	}

	for _, e := range entries {
		if hasBracket(e) && nameMatch(e) {
			return e, nil
		}
	}
	for _, e := range entries {
		if hasBracket(e) {
			return e, nil
		}
	}
	return ESPNTournamentEntry{}, &MappingError{
		Source: "espn",
		Reason: "no tournament bracket found for year " + strconv.Itoa(year),
	}
}

// MapTournamentEntry translates an ESPN tournament entry into a Tournament. Regular
// rounds are split into regions by each matchup's note field; Final Four and
// championship matchups all belong to the National segment.
func MapTournamentEntry(entry ESPNTournamentEntry, year int) (*model.Tournament, error) {
	if len(entry.Bracket.Rounds) == 0 {
		return nil, &MappingError{Source: "espn", Reason: "tournament entry has no bracket rounds"}
	}

	regionRounds := make(map[string][]*model.Round)

	for _, wireRound := range entry.Bracket.Rounds {
		number := wireRound.Number
		if number == 0 {
			number = int(model.RoundFirst)
		}
		kind := model.RoundFromNumber(number)

		if kind.IsFinalFour() {
			var games []*model.Game
			for _, m := range wireRound.AllMatchups() {
				games = append(games, mapMatchup(m))
			}
			if len(games) > 0 {
				regionRounds["National"] = append(regionRounds["National"], &model.Round{Kind: kind, Games: games})
			}
			continue
		}

		byRegion := make(map[string][]*model.Game)
		for _, m := range wireRound.AllMatchups() {
			name := toTitleCase(m.Note)
			if name == "" {
				name = "Region"
			}
			byRegion[name] = append(byRegion[name], mapMatchup(m))
		}
		for name, games := range byRegion {
			regionRounds[name] = append(regionRounds[name], &model.Round{Kind: kind, Games: games})
		}
	}

	order := []string{"East", "West", "South", "Midwest", "National", "Region"}
	var regions []*model.Region
	for _, name := range order {
		if rounds, ok := regionRounds[name]; ok {
			regions = append(regions, &model.Region{
				ID:       strings.ToLower(name),
				Name:     name,
				National: name == "National",
				Rounds:   rounds,
			})
			delete(regionRounds, name)
		}
	}
	for name, rounds := range regionRounds {
		regions = append(regions, &model.Region{
			ID:     strings.ToLower(name),
			Name:   name,
			Rounds: rounds,
		})
	}

	name := entry.Name
	if name == "" {
		name = "NCAA Tournament"
	}
	t := model.NewTournament(entry.ID, name, year, regions)
	if !t.Valid() {
		return nil, &MappingError{Source: "espn", Reason: "tournament entry mapped to an empty bracket"}
	}
	return t, nil
}

// MapScoreboardEvent translates one scoreboard event into a partial-update Game.
func MapScoreboardEvent(event ESPNEvent) model.Game {
	return *mapEvent(event)
}

func mapMatchup(m ESPNMatchup) *model.Game {
	if m.Event != nil {
		return mapEvent(*m.Event)
	}

	top, bottom := splitCompetitors(m.Competitors)
	game := &model.Game{
		ID:     m.ID,
		LiveID: m.ID,
		Top:    mapCompetitor(top),
		Bottom: mapCompetitor(bottom),
		Status: model.StatusScheduled,
	}

	if ts, bs, ok := competitorScores(top, bottom); ok {
		game.TopScore, game.BotScore, game.HasScore = ts, bs, true
		game.Status = model.StatusFinal
	}
	for _, c := range m.Competitors {
		if c.Winner && c.ID != "" {
			game.WinnerID = c.ID
		}
	}
	return game
}

func mapEvent(event ESPNEvent) *model.Game {
	game := &model.Game{
		ID:     event.ID,
		LiveID: event.ID,
		Status: model.StatusScheduled,
	}

	if event.Status != nil {
		if event.Status.Type != nil {
			game.Status = parseStatus(event.Status.Type.Name)
		}
		game.Period = event.Status.Period
		game.Clock = event.Status.DisplayClock
	}

	if event.Venue != nil {
		switch {
		case event.Venue.FullName != "":
			game.Location = event.Venue.FullName
		case event.Venue.City != "" && event.Venue.State != "":
			game.Location = event.Venue.City + ", " + event.Venue.State
		}
	}

	if event.Date != "" {
		// ESPN omits seconds from event dates ("2025-03-20T17:15Z"), which strict
		// RFC 3339 parsing rejects.
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
			if ts, err := time.Parse(layout, event.Date); err == nil {
				game.StartTime = ts.UTC()
				break
			}
		}
	}

	var competitors []ESPNCompetitor
	for _, comp := range event.Competitions {
		competitors = append(competitors, comp.Competitors...)
	}
	top, bottom := splitCompetitors(competitors)
	game.Top = mapCompetitor(top)
	game.Bottom = mapCompetitor(bottom)

	if ts, bs, ok := competitorScores(top, bottom); ok {
		game.TopScore, game.BotScore, game.HasScore = ts, bs, true
	}
	for _, c := range competitors {
		if c.Winner && c.ID != "" {
			game.WinnerID = c.ID
		}
	}
	return game
}

// splitCompetitors picks the home side as top and away as bottom, falling back to
// index order when ESPN omits the homeAway flag.
func splitCompetitors(competitors []ESPNCompetitor) (ESPNCompetitor, ESPNCompetitor) {
	var top, bottom ESPNCompetitor
	var haveTop, haveBottom bool
	for _, c := range competitors {
		switch c.HomeAway {
		case "home":
			top, haveTop = c, true
		case "away":
			bottom, haveBottom = c, true
		}
	}
	if !haveTop && len(competitors) > 0 {
		top = competitors[0]
	}
	if !haveBottom && len(competitors) > 1 {
		bottom = competitors[1]
	}
	return top, bottom
}

func competitorScores(top, bottom ESPNCompetitor) (int, int, bool) {
	ts, errT := strconv.Atoi(top.Score)
	bs, errB := strconv.Atoi(bottom.Score)
	if errT != nil || errB != nil {
		return 0, 0, false
	}
	return ts, bs, true
}

func mapCompetitor(c ESPNCompetitor) model.TeamSeed {
	seed := 0
	if c.CuratedRank != nil {
		seed = c.CuratedRank.Current
	}
	if c.Team == nil {
		placeholder := c.Placeholder
		if placeholder == "" {
			placeholder = "TBA"
		}
		return model.TeamSeed{Seed: seed, Placeholder: placeholder}
	}
	short := c.Team.ShortDisplayName
	if short == "" {
		short = c.Team.DisplayName
	}
	return model.TeamSeed{
		Seed: seed,
		Team: &model.Team{
			ID:        c.Team.ID,
			Name:      c.Team.DisplayName,
			ShortName: short,
			Abbrev:    c.Team.Abbreviation,
			Color:     c.Team.Color,
		},
	}
}

func parseStatus(name string) model.GameStatus {
	switch name {
	case "STATUS_IN_PROGRESS", "STATUS_HALFTIME":
		return model.StatusInProgress
	case "STATUS_FINAL", "STATUS_FINAL_OT":
		return model.StatusFinal
	case "STATUS_POSTPONED", "STATUS_CANCELLED", "STATUS_SUSPENDED":
		return model.StatusPostponed
	default:
		return model.StatusScheduled
	}
}

// MapSummary translates a summary payload into a GameDetail keyed by the bridge
// identifier it was fetched with.
func MapSummary(liveID string, raw ESPNSummaryResponse) *model.GameDetail {
	detail := &model.GameDetail{LiveID: liveID}

	for _, p := range raw.Plays {
		play := model.Play{
			Description: p.Text,
			HomeScore:   p.HomeScore,
			AwayScore:   p.AwayScore,
		}
		if p.Period != nil {
			play.Period = p.Period.Number
		}
		if p.Clock != nil {
			play.Clock = p.Clock.DisplayValue
		}
		detail.Plays = append(detail.Plays, play)
	}

	if raw.Boxscore != nil {
		for i, teamPlayers := range raw.Boxscore.Players {
			box := buildBoxScore(teamPlayers)
			if i == 0 {
				detail.HomeBox = box
			} else {
				detail.AwayBox = box
			}
		}
	}
	return detail
}

func buildBoxScore(tp ESPNTeamPlayers) model.BoxScore {
	var box model.BoxScore
	if tp.Team != nil {
		box.Team = &model.Team{
			ID:        tp.Team.ID,
			Name:      tp.Team.DisplayName,
			ShortName: tp.Team.ShortDisplayName,
			Abbrev:    tp.Team.Abbreviation,
			Color:     tp.Team.Color,
		}
	}

	for _, category := range tp.Statistics {
		if category.Name != "athletes" {
			continue
		}
		for _, a := range category.Athletes {
			name := ""
			if a.Athlete != nil {
				name = a.Athlete.DisplayName
			}
			box.Players = append(box.Players, parsePlayerLine(name, a.Stats, category.Keys))
		}
		box.Totals = parsePlayerLine("TOTALS", category.Totals, category.Keys)
		break
	}
	return box
}

// parsePlayerLine aligns a stats slice with the category's parallel keys slice.
func parsePlayerLine(name string, stats, keys []string) model.PlayerLine {
	get := func(key string) string {
		for i, k := range keys {
			if k == key && i < len(stats) {
				return stats[i]
			}
		}
		return ""
	}
	atoi := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}
	return model.PlayerLine{
		Name:     name,
		Points:   atoi("PTS"),
		Rebounds: atoi("REB"),
		Assists:  atoi("AST"),
		Minutes:  get("MIN"),
		FG:       get("FG"),
		FG3:      get("3PT"),
	}
}

func toTitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
