/* fetch.go
 * The ordered multi-source fetch chain. Sources are tried in a fixed priority order and
 * the first structurally valid tournament wins: the NCAA API is structurally
 * authoritative and must beat ESPN whenever reachable, while the embedded snapshot
 * guarantees the chain never comes back empty-handed. Every per-source failure is
 * absorbed here; only total exhaustion surfaces.
 */

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mmtui/api/external"
	"mmtui/api/model"
)

// Source is one rung of the fetch chain: a full request+map cycle producing either a
// tournament or a reason to fall through.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*model.Tournament, error)
}

// SourceError records why one source was unavailable.
type SourceError struct {
	Source string
	Err    error
}

// AllSourcesFailedError is the terminal failure of a single LoadBracket: every source
// in the chain was unavailable. It aggregates the per-source errors for diagnostics.
type AllSourcesFailedError struct {
	Attempts []SourceError
}

func (e *AllSourcesFailedError) Error() string {
	var b strings.Builder
	b.WriteString("all bracket sources failed:")
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, " %s: %v;", a.Source, a.Err)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// FetchTournament tries each source in order and returns the first structurally valid
// tournament. Transport failures, timeouts and malformed payloads all mean "next
// source"; nothing short of full exhaustion is an error.
func FetchTournament(ctx context.Context, sources []Source) (*model.Tournament, error) {
	var attempts []SourceError

	for _, source := range sources {
		tournament, err := source.Fetch(ctx)
		if err != nil {
			slog.Debug("bracket source unavailable", "source", source.Name(), "err", err)
			attempts = append(attempts, SourceError{Source: source.Name(), Err: err})
			continue
		}
		if !tournament.Valid() {
			slog.Debug("bracket source returned empty bracket", "source", source.Name())
			attempts = append(attempts, SourceError{
				Source: source.Name(),
				Err:    fmt.Errorf("structurally empty bracket"),
			})
			continue
		}
		slog.Info("bracket loaded",
			"source", source.Name(), "year", tournament.Year, "games", tournament.GameCount())
		return tournament, nil
	}
	return nil, &AllSourcesFailedError{Attempts: attempts}
}

// DefaultSources assembles the production chain: local override (when configured), the
// NCAA bracket API, the ESPN tournaments API across candidate years, and the embedded
// snapshot.
func DefaultSources(client *external.Client, overridePath string, now time.Time) []Source {
	var sources []Source
	if overridePath != "" {
		sources = append(sources, overrideSource{path: overridePath, now: now})
	}
	sources = append(sources,
		ncaaSource{client: client, year: external.SeasonYear(now)},
		espnSource{client: client, years: external.CandidateYears(now)},
		embeddedSource{},
	)
	return sources
}

type overrideSource struct {
	path string
	now  time.Time
}

func (s overrideSource) Name() string { return "override" }

func (s overrideSource) Fetch(context.Context) (*model.Tournament, error) {
	return external.LoadBracketFile(s.path, s.now)
}

type ncaaSource struct {
	client *external.Client
	year   int
}

func (s ncaaSource) Name() string { return "ncaa" }

func (s ncaaSource) Fetch(ctx context.Context) (*model.Tournament, error) {
	return s.client.FetchNCAABracket(ctx, s.year)
}

// espnSource tries candidate years nearest-first and keeps the first year that maps.
type espnSource struct {
	client *external.Client
	years  []int
}

func (s espnSource) Name() string { return "espn" }

func (s espnSource) Fetch(ctx context.Context) (*model.Tournament, error) {
	var lastErr error
	for _, year := range s.years {
		tournament, err := s.client.FetchESPNBracket(ctx, year)
		if err == nil {
			return tournament, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no candidate years to try")
	}
	return nil, lastErr
}

type embeddedSource struct{}

func (embeddedSource) Name() string { return "embedded" }

func (embeddedSource) Fetch(context.Context) (*model.Tournament, error) {
	return external.LoadEmbeddedBracket()
}
