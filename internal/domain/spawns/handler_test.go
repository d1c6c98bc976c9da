package spawns

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func newTestServer(t *testing.T, f *fixture) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, f.svc)
	ts := httptest.NewServer(r)
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

func decodeErrors(t *testing.T, body []byte) []string {
	t.Helper()
	var resp errorsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode errors: %v body=%s", err, body)
	}
	out := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		out = append(out, e.Msg)
	}
	return out
}

func TestHTTP_SpawnerSearch(t *testing.T) {
	f := newFixture()
	ts := newTestServer(t, f)

	// missing parameter
	if st, body := doReq(t, ts.URL, "GET", "/spawner?distance=100&longitude=1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, body)
	}

	// every field invalid: messages in fixed order
	st, body := doReq(t, ts.URL, "GET", "/spawner?distance=0&longitude=181&latitude=-91", nil)
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", st)
	}
	got := decodeErrors(t, body)
	want := []string{"Invalid distance", "Invalid longitude", "Invalid latitude"}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// not a number
	st, body = doReq(t, ts.URL, "GET", "/spawner?distance=abc&longitude=1&latitude=1", nil)
	if st != http.StatusUnprocessableEntity || decodeErrors(t, body)[0] != "Invalid distance" {
		t.Fatalf("expected 422 invalid distance, got %d body=%s", st, body)
	}

	// nothing stored yet
	st, body = doReq(t, ts.URL, "GET", "/spawner?distance=100&longitude=1&latitude=1", nil)
	if st != http.StatusOK || string(bytes.TrimSpace(body)) != `"Spawn Point Not Found"` {
		t.Fatalf("expected not-found string, got %d body=%s", st, body)
	}
	st, body = doReq(t, ts.URL, "GET", "/special-spawner?distance=100&longitude=1&latitude=1", nil)
	if st != http.StatusOK || string(bytes.TrimSpace(body)) != `"Special Spawn Point Not Found"` {
		t.Fatalf("expected special not-found string, got %d body=%s", st, body)
	}
}

func TestHTTP_SpawnerCreateAndRead(t *testing.T) {
	f := newFixture()
	f.species.stubs = stubsN(3)
	ts := newTestServer(t, f)

	if st, _ := doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": 1.0}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing latitude, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": 200.0, "latitude": 95.0})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", st)
	}
	if got := decodeErrors(t, body); len(got) != 2 || got[0] != "Invalid longitude" {
		t.Fatalf("unexpected errors %v", got)
	}

	st, body = doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": -82.3612, "latitude": 29.6436})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, body)
	}
	var created spawnResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || len(created.Animals) != 3 || created.Coordinates != [2]float64{-82.3612, 29.6436} {
		t.Fatalf("unexpected spawn %+v", created)
	}

	st, body = doReq(t, ts.URL, "GET", "/spawner?distance=50&longitude=-82.3612&latitude=29.6436", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var list []spawnResponse
	if err := json.Unmarshal(body, &list); err != nil || len(list) != 1 {
		t.Fatalf("expected one spawn, got %s", body)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/spawner/"+created.ID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 get by id, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/spawner/nope", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 get by id, got %d", st)
	}
}

func TestHTTP_SpawnerSpeciesDown(t *testing.T) {
	f := newFixture()
	f.species.err = errors.New("connection refused")
	ts := newTestServer(t, f)

	st, _ := doReq(t, ts.URL, "POST", "/spawner", map[string]any{"longitude": 1.0, "latitude": 1.0})
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", st)
	}
}

func TestHTTP_SpecialSpawner(t *testing.T) {
	f := newFixture()
	ts := newTestServer(t, f)

	if st, _ := doReq(t, ts.URL, "POST", "/special-spawner", map[string]any{"longitude": 1.0, "latitude": 1.0}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 without location, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/special-spawner", map[string]any{
		"location": "Atlantis", "longitude": 1.0, "latitude": 1.0,
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown location, got %d body=%s", st, body)
	}

	// '$' is stripped before the lookup
	st, body = doReq(t, ts.URL, "POST", "/special-spawner", map[string]any{
		"location": "Lake $Alice", "longitude": -82.3615, "latitude": 29.6432,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, body)
	}
	var created spawnResponse
	_ = json.Unmarshal(body, &created)
	if created.Location != "Lake Alice" || len(created.Animals) != 2 {
		t.Fatalf("unexpected special spawn %+v", created)
	}
}
