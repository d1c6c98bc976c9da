package mol

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/platform/breaker"
	"critter-collector/internal/platform/httpclient"
	"critter-collector/internal/platform/metrics"
)

const (
	upstreamName = "species"
	listPath     = "/spatial/species/list"

	DefaultRadius  = 5000
	DefaultTimeout = 10 * time.Second
)

// TaxonGroup is one entry of the species-list response.
type TaxonGroup struct {
	Taxa    string    `json:"taxa"`
	Species []Species `json:"species"`
}

// Species carries the per-species name fields. The upstream sends more
// (family, redlist, images); they are ignored.
type Species struct {
	ScientificName string `json:"scientificname"`
	Common         string `json:"common"`
}

type Options struct {
	Radius       int      // meters
	ExcludedTaxa []string // matched case-insensitively against TaxonGroup.Taxa
	Timeout      time.Duration
	Breaker      breaker.Options
	Logger       zerolog.Logger
}

// Client talks to the Map of Life species-list API. BaseURL of the
// underlying httpclient must point at the API root (…/1.x).
type Client struct {
	http     *httpclient.Client
	radius   int
	excluded []string
	timeout  time.Duration
	cb       *gobreaker.CircuitBreaker[[]TaxonGroup]
}

func New(hc *httpclient.Client, opts Options) *Client {
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		http:     hc,
		radius:   opts.Radius,
		excluded: append([]string(nil), opts.ExcludedTaxa...),
		timeout:  opts.Timeout,
		cb:       breaker.New[[]TaxonGroup]("species-api", opts.Breaker, opts.Logger),
	}
}

// GetAnimals fetches the raw grouped species list around a coordinate.
// Failures are returned unchanged; there is no retry.
func (c *Client) GetAnimals(ctx context.Context, longitude, latitude float64) ([]TaxonGroup, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(c.radius))

	groups, err := c.cb.Execute(func() ([]TaxonGroup, error) {
		cctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		var out []TaxonGroup
		if err := c.http.DoJSON(cctx, http.MethodGet, listPath, q, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		outcome := "error"
		if breaker.Rejected(err) {
			outcome = "rejected"
		}
		metrics.RecordUpstream(upstreamName, outcome)
		return nil, fmt.Errorf("species list: %w", err)
	}

	metrics.RecordUpstream(upstreamName, "ok")
	return groups, nil
}

// Nearby is GetAnimals followed by FilterAnimalTypes with the configured
// exclusion list.
func (c *Client) Nearby(ctx context.Context, longitude, latitude float64) ([]animals.Stub, error) {
	groups, err := c.GetAnimals(ctx, longitude, latitude)
	if err != nil {
		return nil, err
	}
	return FilterAnimalTypes(groups, c.excluded), nil
}

// FilterAnimalTypes flattens every group whose taxon is not excluded into
// stubs, keeping group order and then species order. It does not modify
// its input.
func FilterAnimalTypes(groups []TaxonGroup, excluded []string) []animals.Stub {
	skip := make(map[string]struct{}, len(excluded))
	for _, t := range excluded {
		skip[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	out := make([]animals.Stub, 0)
	for _, g := range groups {
		if _, ok := skip[strings.ToLower(strings.TrimSpace(g.Taxa))]; ok {
			continue
		}
		for _, s := range g.Species {
			out = append(out, animals.Stub{
				CommonName:     s.Common,
				ScientificName: s.ScientificName,
			})
		}
	}
	return out
}
