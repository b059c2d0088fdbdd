/* messages.go
 * The async message contract between the synchronization engine and its callers (the
 * UI event loop and the refresh scheduler). Requests go in over Submit, responses come
 * out over a channel; the engine never calls back into the UI.
 */

package engine

import "mmtui/api/model"

// Request is a message asking the engine to do work.
type Request interface{ isRequest() }

// LoadBracket asks for a full fetch through the source chain, replacing the current
// tournament wholesale on success.
type LoadBracket struct{}

// RefreshScores asks for a scoreboard fetch followed by a bridge and merge pass. Never
// fatal: a failed refresh leaves the current bracket untouched.
type RefreshScores struct{}

// LoadGameDetail asks for one game's box score and play-by-play. LiveID may be empty
// when the game has not been bridged yet; that yields a soft DetailUnavailable, not an
// error and not a network call.
type LoadGameDetail struct {
	BracketID string
	LiveID    string
}

func (LoadBracket) isRequest()    {}
func (RefreshScores) isRequest()  {}
func (LoadGameDetail) isRequest() {}

// Response is a message reporting the outcome of a request.
type Response interface{ isResponse() }

// BracketLoaded delivers a freshly constructed tournament. Seq identifies this bracket
// instance; results computed against an older Seq are stale.
type BracketLoaded struct {
	Tournament *model.Tournament
	Seq        uint64
}

// ScoresRefreshed reports a refresh pass. Zero bridged games and zero changes is a
// normal pre-seeding outcome. SoftError carries a non-fatal failure (live source
// unreachable, stale result discarded); Warning carries merge anomalies such as
// advancement conflicts. In both cases the current bracket remains valid.
type ScoresRefreshed struct {
	Bridged   int
	Changed   []string
	Warning   error
	SoftError string
}

// GameDetailLoaded delivers a fetched game detail.
type GameDetailLoaded struct {
	BracketID string
	Detail    *model.GameDetail
}

// DetailUnavailable is the documented pre-seeding degradation for a game without a
// bridge identifier.
type DetailUnavailable struct {
	BracketID string
	Reason    string
}

// LoadFailed reports a LoadBracket whose every source failed. Any previously loaded
// tournament is retained untouched.
type LoadFailed struct {
	Err error
}

func (BracketLoaded) isResponse()     {}
func (ScoresRefreshed) isResponse()   {}
func (GameDetailLoaded) isResponse()  {}
func (DetailUnavailable) isResponse() {}
func (LoadFailed) isResponse()        {}

// State is the engine's lifecycle state, visible to callers for busy indicators.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateReady
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateRefreshing:
		return "refreshing"
	default:
		return "idle"
	}
}
