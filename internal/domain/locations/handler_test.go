package locations

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func newTestServer(t *testing.T, svc *Service) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc)
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

func msgOf(t *testing.T, body []byte) string {
	t.Helper()
	var m messageResponse
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("decode msg: %v body=%s", err, body)
	}
	return m.Msg
}

func TestHTTP_LocationLookup(t *testing.T) {
	svc, _ := seeded(t)
	ts := newTestServer(t, svc)

	cases := []struct {
		query string
		want  string
	}{
		{"?longitude=-82.3615&latitude=29.6435", `"Center of Lake Alice"`},
		{"?longitude=-82.3640&latitude=29.6415", `"Lake Alice"`},
		{"?longitude=-82.3400&latitude=29.6500", `"Special Location Not Found"`},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, "GET", "/location"+tc.query, nil)
		if st != http.StatusOK || string(bytes.TrimSpace(body)) != tc.want {
			t.Fatalf("%s: got %d %s, want %s", tc.query, st, body, tc.want)
		}
	}

	if st, _ := doReq(t, ts.URL, "GET", "/location?longitude=1", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/location?longitude=1&latitude=100", nil); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", st)
	}
}

func TestHTTP_AnimalConflict(t *testing.T) {
	svc, repo := seeded(t)
	ts := newTestServer(t, svc)

	st, body := doReq(t, ts.URL, "POST", "/animal", map[string]any{
		"location":          "Lake Alice",
		"common_animal":     "American alligator",
		"scientific_animal": "Alligator mississippiensis",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", st, body)
	}
	if msgOf(t, body) != MsgAnimalExists {
		t.Fatalf("unexpected message %s", body)
	}
	if repo.pushes != 0 {
		t.Fatalf("conflict must not mutate the store")
	}
}

func TestHTTP_AnimalAddRemove(t *testing.T) {
	svc, _ := seeded(t)
	ts := newTestServer(t, svc)

	if st, _ := doReq(t, ts.URL, "POST", "/animal", map[string]any{"location": "Lake Alice"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/animal", map[string]any{
		"location":          "Lake Alice",
		"common_animal":     "Great blue heron",
		"scientific_animal": "Ardea herodias",
	})
	if st != http.StatusOK || msgOf(t, body) != MsgAnimalInserted {
		t.Fatalf("expected insert success, got %d %s", st, body)
	}

	// unknown location: the store reports no modification
	st, body = doReq(t, ts.URL, "POST", "/animal", map[string]any{
		"location":          "Nowhere",
		"common_animal":     "Great blue heron",
		"scientific_animal": "Ardea herodias",
	})
	if st != http.StatusUnprocessableEntity || msgOf(t, body) != MsgAnimalInsertFailed {
		t.Fatalf("expected 422 insert failure, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/animal", map[string]any{
		"location":          "Lake Alice",
		"scientific_animal": "Ardea herodias",
	})
	if st != http.StatusOK || msgOf(t, body) != MsgAnimalDeleted {
		t.Fatalf("expected delete success, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/animal", map[string]any{
		"location":          "Lake Alice",
		"scientific_animal": "Ardea herodias",
	})
	if st != http.StatusConflict || msgOf(t, body) != MsgAnimalMissing {
		t.Fatalf("expected 409 on second delete, got %d %s", st, body)
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/animal", map[string]any{"scientific_animal": "x"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
}

func TestHTTP_LocationCreateListDelete(t *testing.T) {
	svc, _ := seeded(t)
	ts := newTestServer(t, svc)

	prairie := map[string]any{
		"name": "Payne's $Prairie",
		"region": [][][]float64{{
			{-82.33, 29.55}, {-82.25, 29.55}, {-82.25, 29.62}, {-82.33, 29.62}, {-82.33, 29.55},
		}},
		"animals": []map[string]string{
			{"common_name": "American bison", "scientific_name": "Bison bison"},
		},
	}

	st, body := doReq(t, ts.URL, "POST", "/location", prairie)
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", st, body)
	}
	var created locationResponse
	_ = json.Unmarshal(body, &created)
	if created.Name != "Payne's Prairie" || len(created.Animals) != 1 {
		t.Fatalf("unexpected location %+v", created)
	}

	if st, _ := doReq(t, ts.URL, "POST", "/location", prairie); st != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d", st)
	}

	// open ring and unnamed animal
	st, body = doReq(t, ts.URL, "POST", "/location", map[string]any{
		"name":    "Broken",
		"region":  [][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},
		"animals": []map[string]string{{"common_name": "x"}},
	})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", st)
	}
	var errs errorsResponse
	_ = json.Unmarshal(body, &errs)
	if len(errs.Errors) != 2 || errs.Errors[0].Msg != "Invalid polygon coordinates" || errs.Errors[1].Msg != "Invalid animal array" {
		t.Fatalf("unexpected errors %+v", errs.Errors)
	}

	st, body = doReq(t, ts.URL, "GET", "/location/animals?location=Payne's%20Prairie", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 roster, got %d %s", st, body)
	}

	st, _ = doReq(t, ts.URL, "DELETE", "/location", map[string]any{"name": "Payne's Prairie"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/location/animals?location=Payne's%20Prairie", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/location", map[string]any{"name": "Payne's Prairie"}); st != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", st)
	}
}
