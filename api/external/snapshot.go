/* snapshot.go
 * Offline bracket sources: a local override file named by MMTUI_BRACKET_JSON, and the
 * embedded 2025 bracket compiled into the binary. Both use the ESPN tournaments schema.
 * The embedded snapshot is the last rung of the fetch chain and guarantees the viewer
 * always has some renderable bracket, even fully offline.
 */

package external

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "embed"

	"mmtui/api/model"
)

// BracketOverrideEnv names a local ESPN-format JSON snapshot consulted before any
// network source.
const BracketOverrideEnv = "MMTUI_BRACKET_JSON"

//go:embed 2025_bracket.json
var embeddedBracketJSON []byte

// LoadEmbeddedBracket maps the bundled 2025 bracket snapshot.
func LoadEmbeddedBracket() (*model.Tournament, error) {
	return mapSnapshotJSON(embeddedBracketJSON, snapshotYear)
}

// LoadBracketFile reads and maps a local ESPN-format bracket snapshot. The tournament
// year is inferred from a four-digit token in the path, falling back to the current
// season.
func LoadBracketFile(path string, now time.Time) (*model.Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bracket override %s: %w", path, err)
	}
	year := inferYearFromPath(path)
	if year == 0 {
		year = SeasonYear(now)
	}
	return mapSnapshotJSON(data, year)
}

func mapSnapshotJSON(data []byte, year int) (*model.Tournament, error) {
	var raw ESPNTournamentsResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MappingError{Source: "snapshot", Reason: fmt.Sprintf("invalid json: %v", err)}
	}
	entry, err := SelectTournamentEntry(raw.Tournaments, year)
	if err != nil {
		return nil, err
	}
	return MapTournamentEntry(entry, year)
}

func inferYearFromPath(path string) int {
	start := -1
	for i := 0; i <= len(path); i++ {
		digit := i < len(path) && path[i] >= '0' && path[i] <= '9'
		if digit && start == -1 {
			start = i
		}
		if !digit && start != -1 {
			if i-start == 4 {
				if y, err := strconv.Atoi(path[start:i]); err == nil && y >= 2000 && y <= 2100 {
					return y
				}
			}
			start = -1
		}
	}
	return 0
}
