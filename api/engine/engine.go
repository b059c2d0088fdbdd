/* engine.go
 * The synchronization engine: exclusive owner of the tournament. One worker goroutine
 * serializes every mutation (construction, bridging, merging), so concurrent fetch and
 * refresh can never interleave; the UI only ever reads the snapshot reference between
 * update boundaries. The engine holds no timers; periodic refresh is driven by an
 * external scheduler through the same Submit door as everything else.
 */

package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mmtui/api/logic"
	"mmtui/api/model"
)

// LiveClient is the slice of the live provider the engine needs for refreshes and
// detail loads.
type LiveClient interface {
	FetchScoreboard(ctx context.Context) ([]model.Game, error)
	FetchGameDetail(ctx context.Context, liveID string) (*model.GameDetail, error)
}

// Engine owns the bracket and processes requests one at a time.
type Engine struct {
	sources []Source
	live    LiveClient
	timeout time.Duration

	requests  chan Request
	responses chan Response

	mu         sync.RWMutex
	tournament *model.Tournament
	seq        uint64
	state      State

	inflightMu     sync.Mutex
	cancelInflight context.CancelFunc
}

// New creates an engine over the given source chain and live client. timeout bounds
// each network request; zero means 15 seconds.
func New(sources []Source, live LiveClient, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Engine{
		sources:   sources,
		live:      live,
		timeout:   timeout,
		requests:  make(chan Request, 1),
		responses: make(chan Response, 8),
	}
}

// Responses returns the channel responses are delivered on.
func (e *Engine) Responses() <-chan Response { return e.responses }

// Snapshot returns the current tournament reference for read-only use, or nil before
// the first successful load. The reference is stable between update boundaries.
func (e *Engine) Snapshot() *model.Tournament {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tournament
}

// State reports the engine's lifecycle state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Seq returns the sequence stamp of the current tournament instance.
func (e *Engine) Seq() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seq
}

// Submit hands a request to the engine without blocking. It reports whether the
// request was accepted; false means the engine is busy and the caller should retry on
// the next tick. A LoadBracket additionally cancels any in-flight refresh so a stale
// result can never apply over the new bracket.
func (e *Engine) Submit(request Request) bool {
	if _, ok := request.(LoadBracket); ok {
		e.cancelRefresh()
	}
	select {
	case e.requests <- request:
		return true
	default:
		return false
	}
}

// Run processes requests until ctx is cancelled. It must only be called once.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case request := <-e.requests:
			e.dispatch(ctx, request)
		}
	}
}

func (e *Engine) dispatch(ctx context.Context, request Request) {
	switch req := request.(type) {
	case LoadBracket:
		e.respond(ctx, e.handleLoadBracket(ctx))
	case RefreshScores:
		e.respond(ctx, e.handleRefreshScores(ctx))
	case LoadGameDetail:
		e.respond(ctx, e.handleLoadGameDetail(ctx, req))
	}
}

func (e *Engine) respond(ctx context.Context, response Response) {
	select {
	case e.responses <- response:
	case <-ctx.Done():
	}
}

func (e *Engine) handleLoadBracket(ctx context.Context) Response {
	e.setState(StateFetching)

	callCtx, cancel := e.trackInflight(ctx)
	defer cancel()

	tournament, err := FetchTournament(callCtx, e.sources)
	if err != nil {
		slog.Error("bracket load failed", "err", err)
		// Previous tournament, if any, stays untouched.
		e.mu.Lock()
		if e.tournament == nil {
			e.state = StateIdle
		} else {
			e.state = StateReady
		}
		e.mu.Unlock()
		return LoadFailed{Err: err}
	}

	e.mu.Lock()
	e.tournament = tournament
	e.seq++
	seq := e.seq
	e.state = StateReady
	e.mu.Unlock()

	return BracketLoaded{Tournament: tournament, Seq: seq}
}

func (e *Engine) handleRefreshScores(ctx context.Context) Response {
	e.mu.RLock()
	tournament := e.tournament
	seq := e.seq
	e.mu.RUnlock()

	if tournament == nil {
		return ScoresRefreshed{SoftError: "no bracket loaded yet"}
	}
	e.setState(StateRefreshing)
	defer e.setState(StateReady)

	callCtx, cancel := e.trackInflight(ctx)
	defer cancel()

	games, err := e.live.FetchScoreboard(callCtx)
	if err != nil {
		// Soft failure: the current bracket stays as-is, the next tick retries.
		slog.Warn("score refresh failed", "err", err)
		return ScoresRefreshed{SoftError: err.Error()}
	}

	return e.applyRefresh(seq, games)
}

// applyRefresh bridges and merges a scoreboard result against the tournament instance
// identified by seq. A result computed against a superseded instance is discarded:
// merges must apply in receipt order against the bracket they were computed for.
func (e *Engine) applyRefresh(seq uint64, games []model.Game) ScoresRefreshed {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tournament == nil || e.seq != seq {
		slog.Debug("discarding stale refresh result", "computed_seq", seq, "current_seq", e.seq)
		return ScoresRefreshed{SoftError: "bracket reloaded, refresh discarded"}
	}

	bridged := logic.Bridge(e.tournament, games)
	changed, warning := logic.Merge(e.tournament, games)
	return ScoresRefreshed{Bridged: bridged, Changed: changed, Warning: warning}
}

func (e *Engine) handleLoadGameDetail(ctx context.Context, req LoadGameDetail) Response {
	if req.LiveID == "" {
		// Expected pre-seeding: the bridge has not linked this game yet. No network
		// call, no error.
		return DetailUnavailable{
			BracketID: req.BracketID,
			Reason:    "game detail not yet available, check back after Selection Sunday",
		}
	}

	callCtx, cancel := e.trackInflight(ctx)
	defer cancel()

	detail, err := e.live.FetchGameDetail(callCtx, req.LiveID)
	if err != nil {
		slog.Warn("game detail load failed", "live_id", req.LiveID, "err", err)
		return DetailUnavailable{BracketID: req.BracketID, Reason: err.Error()}
	}
	return GameDetailLoaded{BracketID: req.BracketID, Detail: detail}
}

// trackInflight derives a bounded, cancellable context for one network operation and
// registers its cancel func so a superseding LoadBracket can abandon it.
func (e *Engine) trackInflight(ctx context.Context) (context.Context, context.CancelFunc) {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)

	e.inflightMu.Lock()
	e.cancelInflight = cancel
	e.inflightMu.Unlock()

	return callCtx, func() {
		e.inflightMu.Lock()
		if e.cancelInflight != nil {
			e.cancelInflight = nil
		}
		e.inflightMu.Unlock()
		cancel()
	}
}

func (e *Engine) cancelRefresh() {
	e.inflightMu.Lock()
	cancel := e.cancelInflight
	e.cancelInflight = nil
	e.inflightMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}
