package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"critter-collector/internal/platform/httpclient"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

type fakeWiki struct {
	srv    *httptest.Server
	thumbs int
}

// pages: title -> json body of the "pages" object; {{URL}} is the server URL
func newFakeWiki(t *testing.T, pages map[string]string) *fakeWiki {
	t.Helper()
	f := &fakeWiki{}
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "query" || q.Get("redirects") != "1" || q.Get("prop") != "pageimages|extracts" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		body, ok := pages[q.Get("titles")]
		if !ok {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"batchcomplete":"","query":{"pages":%s}}`, strings.ReplaceAll(body, "{{URL}}", f.srv.URL))
	})
	mux.HandleFunc("/thumb/ok.png", func(w http.ResponseWriter, r *http.Request) {
		f.thumbs++
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	})
	mux.HandleFunc("/thumb/gone.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeWiki) client() *Client {
	return New(httpclient.New(time.Second), Options{Endpoint: f.srv.URL + "/w/api.php"})
}

func TestLookup_Found(t *testing.T) {
	f := newFakeWiki(t, map[string]string{
		"Alligator mississippiensis": `{"1234":{"pageid":1234,"ns":0,"title":"American alligator",
			"thumbnail":{"source":"{{URL}}/thumb/ok.png","width":300,"height":200},
			"extract":"The American alligator is a large crocodilian reptile. "}}`,
	})

	got, ok := f.client().Lookup(context.Background(), "Alligator mississippiensis")
	if !ok {
		t.Fatalf("expected entry")
	}
	if got.ImageBase64 != "data:image/png;base64,iVBORw0KGgo=" {
		t.Fatalf("unexpected data uri %q", got.ImageBase64)
	}
	if got.ImageLink != f.srv.URL+"/thumb/ok.png" {
		t.Fatalf("unexpected image link %q", got.ImageLink)
	}
	if got.Description != "The American alligator is a large crocodilian reptile." {
		t.Fatalf("unexpected description %q", got.Description)
	}
}

func TestLookup_Misses(t *testing.T) {
	f := newFakeWiki(t, map[string]string{
		"Nonexistus fabulosus": `{"-1":{"ns":0,"title":"Nonexistus fabulosus","missing":""}}`,
		"Bare page":            `{"77":{"pageid":77,"ns":0,"title":"Bare page","extract":"text"}}`,
		"Broken thumb":         `{"78":{"pageid":78,"title":"Broken thumb","thumbnail":{"source":"{{URL}}/thumb/gone.png"}}}`,
		"Empty":                `{}`,
	})
	c := f.client()

	cases := []string{
		"Nonexistus fabulosus", // sentinel page id
		"Bare page",            // no thumbnail
		"Broken thumb",         // thumbnail fetch fails
		"Empty",                // no pages
		"Upstream error",       // search returns 500
		"   ",                  // blank name never hits the network
	}
	for _, name := range cases {
		if got, ok := c.Lookup(context.Background(), name); ok {
			t.Fatalf("%q: expected miss, got %#v", name, got)
		}
	}
	if f.thumbs != 0 {
		t.Fatalf("no successful thumbnail download expected, got %d", f.thumbs)
	}
}

func TestLookup_CancelledContextIsMiss(t *testing.T) {
	f := newFakeWiki(t, map[string]string{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok := f.client().Lookup(ctx, "Ardea herodias"); ok {
		t.Fatalf("expected miss on cancelled context")
	}
}

func TestDataURI(t *testing.T) {
	cases := []struct {
		ct   string
		want string
	}{
		{"image/jpeg", "data:image/jpeg;base64,AQI="},
		{"image/svg+xml; charset=utf-8", "data:image/svg+xml;base64,AQI="},
		{"", "data:application/octet-stream;base64,AQI="},
	}
	for _, tc := range cases {
		if got := DataURI(tc.ct, []byte{1, 2}); got != tc.want {
			t.Fatalf("DataURI(%q) = %q, want %q", tc.ct, got, tc.want)
		}
	}
}
