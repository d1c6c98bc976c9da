package router_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/router"
)

type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

type fixedSpecies struct {
	stubs []animals.Stub
}

func (f fixedSpecies) Nearby(ctx context.Context, lon, lat float64) ([]animals.Stub, error) {
	return f.stubs, nil
}

// knownEncyclopedia has an entry for every name except the ones in missing.
type knownEncyclopedia struct {
	missing map[string]bool
}

func (e knownEncyclopedia) Lookup(ctx context.Context, name string) (animals.Enrichment, bool) {
	if e.missing[name] {
		return animals.Enrichment{}, false
	}
	return animals.Enrichment{
		ImageBase64: "data:image/png;base64,AAAA",
		ImageLink:   "https://upload.wikimedia.org/" + strings.ReplaceAll(name, " ", "_") + ".png",
		Description: name + " is an animal.",
	}, true
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := router.NewRouter(router.Options{
		Logger: zerolog.Nop(),
		Species: fixedSpecies{stubs: []animals.Stub{
			{CommonName: "American alligator", ScientificName: "Alligator mississippiensis"},
			{CommonName: "Unicorn", ScientificName: "Nonexistus fabulosus"},
			{CommonName: "Great blue heron", ScientificName: "Ardea herodias"},
		}},
		Encyclopedia: knownEncyclopedia{missing: map[string]bool{"Nonexistus fabulosus": true}},
		Sampler:      animals.NewSampler(zeroSource{}),
	})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

type spawn struct {
	ID          string     `json:"id"`
	Location    string     `json:"location"`
	Coordinates [2]float64 `json:"coordinates"`
	Animals     []struct {
		CommonName     string `json:"common_name"`
		ScientificName string `json:"scientific_name"`
		Description    string `json:"description"`
	} `json:"animals"`
}

func TestHTTP_EndToEnd_SpawnCatchBox(t *testing.T) {
	ts := newServer(t)

	// 1) nothing spawned yet
	{
		st, body := doReq(t, ts.URL, "GET", "/spawner?distance=1000&longitude=-82.3615&latitude=29.6435", nil)
		if st != http.StatusOK || string(bytes.TrimSpace(body)) != `"Spawn Point Not Found"` {
			t.Fatalf("expected not-found string, got %d %s", st, body)
		}
	}

	// 2) regular spawn drops animals without encyclopedia data
	var created spawn
	{
		st, body := doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": -82.3615, "latitude": 29.6435})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create, got %d %s", st, body)
		}
		if err := json.Unmarshal(body, &created); err != nil {
			t.Fatalf("decode spawn: %v", err)
		}
		if created.ID == "" || len(created.Animals) != 2 {
			t.Fatalf("unexpected spawn %+v", created)
		}
		for _, a := range created.Animals {
			if a.ScientificName == "Nonexistus fabulosus" {
				t.Fatalf("animal without entry kept: %+v", a)
			}
		}
	}

	// 3) it is found nearby and by id
	{
		st, body := doReq(t, ts.URL, "GET", "/spawner?distance=500&longitude=-82.3610&latitude=29.6435", nil)
		var list []spawn
		if st != http.StatusOK || json.Unmarshal(body, &list) != nil || len(list) != 1 || list[0].ID != created.ID {
			t.Fatalf("expected the created spawn, got %d %s", st, body)
		}

		st, _ = doReq(t, ts.URL, "GET", "/spawner/"+created.ID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 by id, got %d", st)
		}
	}

	// 4) player catches twice, then reads the box
	{
		st, body := doReq(t, ts.URL, "POST", "/player", map[string]any{"username": "ash", "email": "ash@example.com"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 player, got %d %s", st, body)
		}

		catch := map[string]any{
			"username":          "ash",
			"common_animal":     created.Animals[0].CommonName,
			"scientific_animal": created.Animals[0].ScientificName,
		}
		for i := 0; i < 2; i++ {
			if st, body := doReq(t, ts.URL, "PUT", "/player/box", catch); st != http.StatusOK {
				t.Fatalf("catch %d: %d %s", i, st, body)
			}
		}
		st, body = doReq(t, ts.URL, "PUT", "/player/box", map[string]any{
			"username":          "ash",
			"common_animal":     "Unicorn",
			"scientific_animal": "Nonexistus fabulosus",
		})
		if st != http.StatusOK {
			t.Fatalf("catch unicorn: %d %s", st, body)
		}

		st, body = doReq(t, ts.URL, "GET", "/player/box?username=ash", nil)
		var box []struct {
			ScientificName string `json:"scientific_name"`
			Description    string `json:"description"`
			Count          int    `json:"count"`
		}
		if st != http.StatusOK || json.Unmarshal(body, &box) != nil {
			t.Fatalf("box: %d %s", st, body)
		}
		if len(box) != 2 || box[0].Count != 2 || box[1].Description != animals.NoData {
			t.Fatalf("unexpected box %+v", box)
		}
	}
}

func TestHTTP_EndToEnd_SpecialLocation(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/location", map[string]any{
		"name": "Lake Alice",
		"region": [][][]float64{{
			{-82.3650, 29.6410}, {-82.3580, 29.6410}, {-82.3580, 29.6460},
			{-82.3650, 29.6460}, {-82.3650, 29.6410},
		}},
		"animals": []map[string]string{
			{"common_name": "American alligator", "scientific_name": "Alligator mississippiensis"},
			{"common_name": "Unicorn", "scientific_name": "Nonexistus fabulosus"},
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 location, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/location?longitude=-82.3615&latitude=29.6435", nil)
	if st != http.StatusOK || string(bytes.TrimSpace(body)) != `"Lake Alice"` {
		t.Fatalf("expected Lake Alice, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/special-spawner", map[string]any{
		"location":  "Lake Alice",
		"longitude": -82.3615,
		"latitude":  29.6435,
	})
	var sp spawn
	if st != http.StatusOK || json.Unmarshal(body, &sp) != nil {
		t.Fatalf("special spawn: %d %s", st, body)
	}
	if sp.Location != "Lake Alice" || len(sp.Animals) != 1 || sp.Animals[0].ScientificName != "Alligator mississippiensis" {
		t.Fatalf("unexpected special spawn %+v", sp)
	}

	// regular and special spawns are stored apart
	st, body = doReq(t, ts.URL, "GET", "/spawner/"+sp.ID, nil)
	if st != http.StatusNotFound {
		t.Fatalf("special spawn visible as regular: %d %s", st, body)
	}
}

func TestHTTP_Infrastructure(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "critter_api_requests_total") {
		t.Fatalf("metrics: %d", st)
	}

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestHTTP_SpeciesNotConfigured(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: zerolog.Nop()}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": -82.3615, "latitude": 29.6435})
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502 without a species provider, got %d", st)
	}
}
