package players

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

func TestHTTP_PlayerLifecycle(t *testing.T) {
	svc, _, _ := newTestService(t)
	ts := newTestServer(t, svc)

	st, body := doReq(t, ts.URL, "POST", "/player", map[string]any{"username": "ash$", "email": "ash@example.com"})
	if st != http.StatusCreated || msgOf(t, body) != MsgPlayerCreated {
		t.Fatalf("expected 201, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/player", map[string]any{"username": "ash", "email": "ash@example.com"})
	if st != http.StatusConflict || msgOf(t, body) != MsgPlayerExists {
		t.Fatalf("expected 409, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/player?username=ash", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", st, body)
	}
	var got playerResponse
	_ = json.Unmarshal(body, &got)
	if !got.Exists || got.UserEmail != "ash@example.com" {
		t.Fatalf("unexpected profile %+v", got)
	}

	st, body = doReq(t, ts.URL, "PUT", "/player", map[string]any{"username": "ash", "email": "ketchum@example.com"})
	if st != http.StatusOK || msgOf(t, body) != MsgPlayerUpdated {
		t.Fatalf("expected update, got %d %s", st, body)
	}
	st, body = doReq(t, ts.URL, "PUT", "/player", map[string]any{"username": "ash", "email": "ketchum@example.com"})
	if st != http.StatusUnprocessableEntity || msgOf(t, body) != MsgPlayerUpdateFailed {
		t.Fatalf("expected 422 on unchanged email, got %d %s", st, body)
	}
	st, _ = doReq(t, ts.URL, "PUT", "/player", map[string]any{"username": "misty", "email": "misty@example.com"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/player", map[string]any{"username": "ash"})
	if st != http.StatusOK || msgOf(t, body) != MsgPlayerDeleted {
		t.Fatalf("expected delete, got %d %s", st, body)
	}
	st, body = doReq(t, ts.URL, "GET", "/player?username=ash", nil)
	if st != http.StatusNotFound || msgOf(t, body) != MsgPlayerNotFound {
		t.Fatalf("expected 404, got %d %s", st, body)
	}
}

func TestHTTP_PlayerValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ts := newTestServer(t, svc)

	st, body := doReq(t, ts.URL, "POST", "/player", map[string]any{"username": "ash"})
	if st != http.StatusBadRequest || msgOf(t, body) != "Missing required fields: email" {
		t.Fatalf("expected 400, got %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "POST", "/player", map[string]any{"username": "ash", "email": "not-an-email"})
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %s", st, body)
	}
	var errs errorsResponse
	_ = json.Unmarshal(body, &errs)
	if len(errs.Errors) != 1 || errs.Errors[0].Msg != "Invalid email" {
		t.Fatalf("unexpected errors %+v", errs.Errors)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/player", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
}

func TestHTTP_CatchAndBox(t *testing.T) {
	svc, _, _ := newTestService(t)
	ts := newTestServer(t, svc)

	catch := map[string]any{
		"username":          "trainer",
		"common_animal":     "American alligator",
		"scientific_animal": "Alligator mississippiensis",
	}
	for want := 1; want <= 2; want++ {
		st, body := doReq(t, ts.URL, "PUT", "/player/box", catch)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", st, body)
		}
		var res catchResponse
		_ = json.Unmarshal(body, &res)
		if res.Msg != MsgAnimalCaught || res.Animal.Count != want {
			t.Fatalf("unexpected catch response %+v", res)
		}
	}

	st, body := doReq(t, ts.URL, "PUT", "/player/box", map[string]any{"username": "trainer", "common_animal": "x"})
	if st != http.StatusBadRequest || msgOf(t, body) != "Missing required fields: scientific_animal" {
		t.Fatalf("expected 400, got %d %s", st, body)
	}

	catch["username"] = "nobody"
	if st, _ := doReq(t, ts.URL, "PUT", "/player/box", catch); st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/player/box?username=trainer", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", st, body)
	}
	var box []struct {
		CommonName  string `json:"common_name"`
		ImageLink   string `json:"image_link"`
		Description string `json:"description"`
		Count       int    `json:"count"`
	}
	if err := json.Unmarshal(body, &box); err != nil {
		t.Fatalf("decode box: %v", err)
	}
	if len(box) != 1 || box[0].Count != 2 || box[0].ImageLink != alligatorEntry.ImageLink {
		t.Fatalf("unexpected box %+v", box)
	}
}
