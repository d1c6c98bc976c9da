package animals

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"critter-collector/internal/platform/metrics"
)

// DefaultLookupTimeout bounds one encyclopedia lookup (search + thumbnail).
const DefaultLookupTimeout = 8 * time.Second

// Encyclopedia resolves a scientific name to its entry. ok=false means
// "no entry": not found, upstream failure and timeout all look the same.
type Encyclopedia interface {
	Lookup(ctx context.Context, scientificName string) (entry Enrichment, ok bool)
}

// Enricher fans lookups out concurrently and joins them in input order.
type Enricher struct {
	enc     Encyclopedia
	timeout time.Duration
}

func NewEnricher(enc Encyclopedia, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	return &Enricher{enc: enc, timeout: timeout}
}

type lookupResult struct {
	entry Enrichment
	ok    bool
}

// gather runs one lookup per stub and waits for all of them. A failing
// lookup never cancels its siblings.
func (e *Enricher) gather(ctx context.Context, stubs []Stub) []lookupResult {
	results := make([]lookupResult, len(stubs))

	var g errgroup.Group
	for i, s := range stubs {
		g.Go(func() error {
			lctx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			entry, ok := e.enc.Lookup(lctx, s.ScientificName)
			results[i] = lookupResult{entry: entry, ok: ok}
			if !ok {
				zerolog.Ctx(ctx).Debug().
					Str("scientific_name", s.ScientificName).
					Msg("no encyclopedia entry")
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ForSpawn drops stubs without an entry; order of the survivors is kept.
func (e *Enricher) ForSpawn(ctx context.Context, stubs []Stub) []Enriched {
	results := e.gather(ctx, stubs)

	out := make([]Enriched, 0, len(stubs))
	for i, r := range results {
		if !r.ok {
			metrics.EnrichmentDropped.Inc()
			continue
		}
		out = append(out, Enriched{Stub: stubs[i], Enrichment: r.entry})
	}
	return out
}

// ForProfile keeps every stub, filling misses with the NoData placeholder.
func (e *Enricher) ForProfile(ctx context.Context, stubs []Stub) []Enriched {
	results := e.gather(ctx, stubs)

	out := make([]Enriched, len(stubs))
	for i, r := range results {
		entry := r.entry
		if !r.ok {
			metrics.EnrichmentPlaceholders.Inc()
			entry = Placeholder()
		}
		out[i] = Enriched{Stub: stubs[i], Enrichment: entry}
	}
	return out
}
