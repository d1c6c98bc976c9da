package wikipedia

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/platform/breaker"
	"critter-collector/internal/platform/httpclient"
	"critter-collector/internal/platform/metrics"
)

const (
	upstreamName = "encyclopedia"

	DefaultThumbnailSize = 300
)

// missingPageID is the key the API uses for a title it could not resolve.
const missingPageID = "-1"

type Options struct {
	Endpoint          string // full api.php URL
	ThumbnailSize     int
	RequestsPerSecond float64
	Burst             int
	Breaker           breaker.Options
	Logger            zerolog.Logger
}

// Client resolves scientific names to a page thumbnail and intro extract.
// It implements animals.Encyclopedia.
type Client struct {
	http     *httpclient.Client
	endpoint string
	thumb    int
	limiter  *rate.Limiter
	cb       *gobreaker.CircuitBreaker[page]
	log      zerolog.Logger
}

func New(hc *httpclient.Client, opts Options) *Client {
	if opts.ThumbnailSize <= 0 {
		opts.ThumbnailSize = DefaultThumbnailSize
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	return &Client{
		http:     hc,
		endpoint: opts.Endpoint,
		thumb:    opts.ThumbnailSize,
		limiter:  rate.NewLimiter(limit, opts.Burst),
		cb:       breaker.New[page]("encyclopedia-api", opts.Breaker, opts.Logger),
		log:      opts.Logger,
	}
}

// Lookup never returns an error: every failure is a miss.
func (c *Client) Lookup(ctx context.Context, scientificName string) (animals.Enrichment, bool) {
	name := strings.TrimSpace(scientificName)
	if name == "" {
		return animals.Enrichment{}, false
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordUpstream(upstreamName, "error")
		return animals.Enrichment{}, false
	}

	p, err := c.cb.Execute(func() (page, error) {
		return c.fetch(ctx, name)
	})
	if err != nil {
		outcome := "error"
		if breaker.Rejected(err) {
			outcome = "rejected"
		}
		metrics.RecordUpstream(upstreamName, outcome)
		c.log.Debug().Err(err).Str("scientific_name", name).Msg("encyclopedia lookup failed")
		return animals.Enrichment{}, false
	}

	found, ok := p.(foundPage)
	if !ok {
		metrics.RecordUpstream(upstreamName, "miss")
		return animals.Enrichment{}, false
	}

	metrics.RecordUpstream(upstreamName, "ok")
	return animals.Enrichment{
		ImageBase64: found.imageData,
		ImageLink:   found.thumbnailURL,
		Description: found.extract,
	}, true
}

// fetch resolves the page and, when it has a thumbnail, downloads it.
// A missing page is a result, not an error, so it does not count against
// the breaker.
func (c *Client) fetch(ctx context.Context, title string) (page, error) {
	var resp queryResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, c.endpoint, c.query(title), nil, &resp); err != nil {
		return nil, err
	}

	p := resp.resolve()
	found, ok := p.(foundPage)
	if !ok {
		return p, nil
	}

	blob, err := c.http.GetBlob(ctx, found.thumbnailURL)
	if err != nil {
		return nil, err
	}
	found.imageData = DataURI(blob.ContentType, blob.Data)
	return found, nil
}

func (c *Client) query(title string) url.Values {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("prop", "pageimages|extracts")
	q.Set("titles", title)
	q.Set("redirects", "1")
	q.Set("pithumbsize", strconv.Itoa(c.thumb))
	q.Set("exintro", "1")
	q.Set("explaintext", "1")
	return q
}

// DataURI renders data as data:<mime>;base64,<payload>. Media type
// parameters (charset etc.) are dropped.
func DataURI(contentType string, data []byte) string {
	mime := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// page is either foundPage or missingPage.
type page interface {
	isPage()
}

type foundPage struct {
	title        string
	thumbnailURL string
	extract      string
	imageData    string
}

type missingPage struct {
	title  string
	reason string
}

func (foundPage) isPage()   {}
func (missingPage) isPage() {}

type queryResponse struct {
	Query struct {
		Pages map[string]rawPage `json:"pages"`
	} `json:"query"`
}

type rawPage struct {
	PageID    int    `json:"pageid"`
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// resolve maps the id-keyed response onto the sum type. Titles are queried
// one at a time, so only the first page is considered.
func (r queryResponse) resolve() page {
	for id, p := range r.Query.Pages {
		switch {
		case id == missingPageID:
			return missingPage{title: p.Title, reason: "not found"}
		case p.Thumbnail == nil || strings.TrimSpace(p.Thumbnail.Source) == "":
			return missingPage{title: p.Title, reason: "no thumbnail"}
		default:
			return foundPage{
				title:        p.Title,
				thumbnailURL: p.Thumbnail.Source,
				extract:      strings.TrimSpace(p.Extract),
			}
		}
	}
	return missingPage{reason: "empty response"}
}
