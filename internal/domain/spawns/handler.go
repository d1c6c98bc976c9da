package spawns

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/validation"
)

const (
	MsgSpawnNotFound           = "Spawn Point Not Found"
	MsgSpecialSpawnNotFound    = "Special Spawn Point Not Found"
	MsgSpecialLocationNotFound = "Special Location Not Found"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/spawner", func(sr chi.Router) {
		sr.Get("/", listSpawnsHandler(svc))
		sr.Post("/", createSpawnHandler(svc))
		sr.Get("/{spawnID}", getSpawnHandler(svc.GetSpawn, MsgSpawnNotFound))
	})

	r.Route("/special-spawner", func(sr chi.Router) {
		sr.Get("/", listSpecialSpawnsHandler(svc))
		sr.Post("/", createSpecialSpawnHandler(svc))
		sr.Get("/{spawnID}", getSpawnHandler(svc.GetSpecialSpawn, MsgSpecialSpawnNotFound))
	})
}

type createSpawnRequest struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

type createSpecialSpawnRequest struct {
	Location  *string  `json:"location"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

type spawnResponse struct {
	ID          string             `json:"id"`
	Location    string             `json:"location,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Coordinates [2]float64         `json:"coordinates"`
	Animals     []animals.Enriched `json:"animals"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []validation.Message `json:"errors"`
}

// listSpawnsHandler godoc
// @Summary List spawners near a point
// @Tags spawner
// @Produce json
// @Param distance query number true "Search radius in meters (0, 10000]"
// @Param longitude query number true "Longitude"
// @Param latitude query number true "Latitude"
// @Success 200 {array} spawnResponse "or the string \"Spawn Point Not Found\""
// @Failure 400 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Router /spawner [get]
func listSpawnsHandler(svc *Service) http.HandlerFunc {
	return searchHandler(svc.SpawnList, MsgSpawnNotFound)
}

// listSpecialSpawnsHandler godoc
// @Summary List special spawners near a point
// @Tags special-spawner
// @Produce json
// @Param distance query number true "Search radius in meters (0, 10000]"
// @Param longitude query number true "Longitude"
// @Param latitude query number true "Latitude"
// @Success 200 {array} spawnResponse "or the string \"Special Spawn Point Not Found\""
// @Failure 400 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Router /special-spawner [get]
func listSpecialSpawnsHandler(svc *Service) http.HandlerFunc {
	return searchHandler(svc.SpecialSpawnList, MsgSpecialSpawnNotFound)
}

type searchFunc func(ctx context.Context, maxDistance, longitude, latitude float64) ([]Spawn, error)

func searchHandler(search searchFunc, notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if missing := missingParams(q.Get, "distance", "longitude", "latitude"); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required parameters: " + strings.Join(missing, ", ")})
			return
		}

		distance := parseNumber(q.Get("distance"))
		lon := parseNumber(q.Get("longitude"))
		lat := parseNumber(q.Get("latitude"))

		if errs := validation.CheckSearch(distance, lon, lat, nil); len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
			return
		}

		items, err := search(r.Context(), distance, lon, lat)
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("spawn search failed")
			writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "internal error"})
			return
		}
		if len(items) == 0 {
			writeJSON(w, http.StatusOK, notFound)
			return
		}

		out := make([]spawnResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toSpawnResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createSpawnHandler godoc
// @Summary Create a spawner at a point
// @Description Samples up to 10 species recorded near the point and enriches them with encyclopedia data.
// @Tags spawner
// @Accept json
// @Produce json
// @Param payload body createSpawnRequest true "Coordinates"
// @Success 200 {object} spawnResponse
// @Failure 400 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Failure 502 {object} messageResponse "species service unavailable"
// @Router /spawner [post]
func createSpawnHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSpawnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}

		var missing []string
		if req.Longitude == nil {
			missing = append(missing, "longitude")
		}
		if req.Latitude == nil {
			missing = append(missing, "latitude")
		}
		if len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		if errs := validation.CheckPoint(*req.Longitude, *req.Latitude, nil); len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
			return
		}

		sp, err := svc.CreateSpawn(r.Context(), *req.Longitude, *req.Latitude)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSpawnResponse(sp))
	}
}

// createSpecialSpawnHandler godoc
// @Summary Create a special spawner
// @Description Samples up to 10 animals from the special location's roster.
// @Tags special-spawner
// @Accept json
// @Produce json
// @Param payload body createSpecialSpawnRequest true "Location name and coordinates"
// @Success 200 {object} spawnResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse "Special Location Not Found"
// @Failure 422 {object} errorsResponse
// @Router /special-spawner [post]
func createSpecialSpawnHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSpecialSpawnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}

		var missing []string
		if req.Location == nil || strings.TrimSpace(*req.Location) == "" {
			missing = append(missing, "location")
		}
		if req.Longitude == nil {
			missing = append(missing, "longitude")
		}
		if req.Latitude == nil {
			missing = append(missing, "latitude")
		}
		if len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		if errs := validation.CheckPoint(*req.Longitude, *req.Latitude, nil); len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
			return
		}

		location := validation.Sanitize(*req.Location)
		sp, err := svc.CreateSpecialSpawn(r.Context(), location, *req.Longitude, *req.Latitude)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toSpawnResponse(sp))
	}
}

// getSpawnHandler godoc
// @Summary Get a spawner by id
// @Tags spawner
// @Produce json
// @Param spawnID path string true "Spawn id"
// @Success 200 {object} spawnResponse
// @Failure 404 {object} messageResponse
// @Router /spawner/{spawnID} [get]
// @Router /special-spawner/{spawnID} [get]
func getSpawnHandler(get func(ctx context.Context, id string) (Spawn, error), notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := get(r.Context(), chi.URLParam(r, "spawnID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{Msg: notFound})
				return
			}
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("get spawn failed")
			writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, toSpawnResponse(sp))
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := zerolog.Ctx(r.Context())
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Msg: err.Error()})
	case errors.Is(err, ErrLocationNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgSpecialLocationNotFound})
	case errors.Is(err, ErrSpeciesUnavailable):
		log.Error().Err(err).Msg("species provider failed")
		writeJSON(w, http.StatusBadGateway, messageResponse{Msg: "species service unavailable"})
	default:
		log.Error().Err(err).Msg("spawn creation failed")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "internal error"})
	}
}

func toSpawnResponse(s Spawn) spawnResponse {
	a := s.Animals
	if a == nil {
		a = []animals.Enriched{}
	}
	return spawnResponse{
		ID:          s.ID,
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		Coordinates: s.Coordinates,
		Animals:     a,
	}
}

// missingParams lists the names whose value is blank, in argument order.
func missingParams(get func(string) string, names ...string) []string {
	var out []string
	for _, n := range names {
		if strings.TrimSpace(get(n)) == "" {
			out = append(out, n)
		}
	}
	return out
}

// parseNumber returns NaN for anything that is not a number, which every
// range predicate rejects.
func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
