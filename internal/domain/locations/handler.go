package locations

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/validation"
)

const (
	MsgLocationNotFound = "Special Location Not Found"
	MsgLocationExists   = "Special Location already exists"
	MsgLocationDeleted  = "Special Location deleted successfully"

	MsgAnimalInserted     = "Animal inserted successfully"
	MsgAnimalInsertFailed = "Animal failed to insert"
	MsgAnimalExists       = "Animal already exists at location"
	MsgAnimalDeleted      = "Animal deleted successfully"
	MsgAnimalDeleteFailed = "Animal failed to delete"
	MsgAnimalMissing      = "Animal does not exist at location"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/location", func(lr chi.Router) {
		lr.Get("/", findLocationHandler(svc))
		lr.Post("/", createLocationHandler(svc))
		lr.Delete("/", deleteLocationHandler(svc))
		lr.Get("/animals", listAnimalsHandler(svc))
	})

	r.Post("/animal", addAnimalHandler(svc))
	r.Delete("/animal", removeAnimalHandler(svc))
}

type createLocationRequest struct {
	Name    *string        `json:"name"`
	Region  [][][]float64  `json:"region"`
	Animals []animals.Stub `json:"animals"`
}

type deleteLocationRequest struct {
	Name *string `json:"name"`
}

type addAnimalRequest struct {
	Location         *string `json:"location"`
	CommonAnimal     *string `json:"common_animal"`
	ScientificAnimal *string `json:"scientific_animal"`
}

type removeAnimalRequest struct {
	Location         *string `json:"location"`
	ScientificAnimal *string `json:"scientific_animal"`
}

type locationResponse struct {
	Name    string         `json:"name"`
	Region  [][][]float64  `json:"region"`
	Animals []animals.Stub `json:"animals"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []validation.Message `json:"errors"`
}

// findLocationHandler godoc
// @Summary Special location at a point
// @Description Returns the name of the innermost special location containing the point.
// @Tags location
// @Produce json
// @Param longitude query number true "Longitude"
// @Param latitude query number true "Latitude"
// @Success 200 {string} string "location name or \"Special Location Not Found\""
// @Failure 400 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Router /location [get]
func findLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if missing := blank(q.Get("longitude"), "longitude", q.Get("latitude"), "latitude"); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required parameters: " + strings.Join(missing, ", ")})
			return
		}

		lon, lat := parseNumber(q.Get("longitude")), parseNumber(q.Get("latitude"))
		if errs := validation.CheckPoint(lon, lat, nil); len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
			return
		}

		l, ok, err := svc.Find(r.Context(), lon, lat)
		if err != nil {
			internalError(w, r, err, "find location")
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, MsgLocationNotFound)
			return
		}
		writeJSON(w, http.StatusOK, l.Name)
	}
}

// createLocationHandler godoc
// @Summary Create a special location
// @Tags location
// @Accept json
// @Produce json
// @Param payload body createLocationRequest true "Name, polygon rings and roster"
// @Success 201 {object} locationResponse
// @Failure 400 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Router /location [post]
func createLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}

		var missing []string
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			missing = append(missing, "name")
		}
		if req.Region == nil {
			missing = append(missing, "region")
		}
		if req.Animals == nil {
			missing = append(missing, "animals")
		}
		if len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		errs := validation.CheckPolygon(req.Region, nil)
		errs = validation.CheckAnimalArray(req.Animals, errs)
		if len(errs) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
			return
		}

		roster := make([]animals.Stub, 0, len(req.Animals))
		for _, a := range req.Animals {
			clean := validation.SanitizeStrings(a.CommonName, a.ScientificName)
			roster = append(roster, animals.Stub{CommonName: clean[0], ScientificName: clean[1]})
		}

		l, err := svc.Create(r.Context(), CreateInput{
			Name:    validation.Sanitize(*req.Name),
			Region:  req.Region,
			Animals: roster,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrLocationExists):
				writeJSON(w, http.StatusConflict, messageResponse{Msg: MsgLocationExists})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, messageResponse{Msg: err.Error()})
			default:
				internalError(w, r, err, "create location")
			}
			return
		}

		writeJSON(w, http.StatusCreated, toLocationResponse(l))
	}
}

// deleteLocationHandler godoc
// @Summary Delete a special location
// @Tags location
// @Accept json
// @Produce json
// @Param payload body deleteLocationRequest true "Location name"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /location [delete]
func deleteLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: name"})
			return
		}

		res, err := svc.Delete(r.Context(), validation.Sanitize(*req.Name))
		if err != nil {
			internalError(w, r, err, "delete location")
			return
		}
		if res.Deleted == 0 {
			writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgLocationNotFound})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Msg: MsgLocationDeleted})
	}
}

// listAnimalsHandler godoc
// @Summary Roster of a special location
// @Tags location
// @Produce json
// @Param location query string true "Location name"
// @Success 200 {array} animals.Stub
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /location/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("location"))
		if name == "" {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required parameters: location"})
			return
		}

		roster, ok, err := svc.Animals(r.Context(), validation.Sanitize(name))
		if err != nil {
			internalError(w, r, err, "list location animals")
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgLocationNotFound})
			return
		}
		writeJSON(w, http.StatusOK, roster)
	}
}

// addAnimalHandler godoc
// @Summary Add an animal to a special location
// @Tags animal
// @Accept json
// @Produce json
// @Param payload body addAnimalRequest true "Location and animal names"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Failure 422 {object} messageResponse
// @Router /animal [post]
func addAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}
		if missing := blank(deref(req.Location), "location", deref(req.CommonAnimal), "common_animal", deref(req.ScientificAnimal), "scientific_animal"); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		clean := validation.SanitizeStrings(*req.Location, *req.CommonAnimal, *req.ScientificAnimal)
		res, err := svc.AddAnimal(r.Context(), clean[0], animals.Stub{CommonName: clean[1], ScientificName: clean[2]})
		if err != nil {
			switch {
			case errors.Is(err, ErrAnimalExists):
				writeJSON(w, http.StatusConflict, messageResponse{Msg: MsgAnimalExists})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, messageResponse{Msg: err.Error()})
			default:
				internalError(w, r, err, "add animal")
			}
			return
		}
		if !res.Changed() {
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Msg: MsgAnimalInsertFailed})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Msg: MsgAnimalInserted})
	}
}

// removeAnimalHandler godoc
// @Summary Remove an animal from a special location
// @Tags animal
// @Accept json
// @Produce json
// @Param payload body removeAnimalRequest true "Location and scientific name"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Failure 422 {object} messageResponse
// @Router /animal [delete]
func removeAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req removeAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}
		if missing := blank(deref(req.Location), "location", deref(req.ScientificAnimal), "scientific_animal"); len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		clean := validation.SanitizeStrings(*req.Location, *req.ScientificAnimal)
		res, err := svc.RemoveAnimal(r.Context(), clean[0], clean[1])
		if err != nil {
			switch {
			case errors.Is(err, ErrAnimalMissing):
				writeJSON(w, http.StatusConflict, messageResponse{Msg: MsgAnimalMissing})
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, messageResponse{Msg: err.Error()})
			default:
				internalError(w, r, err, "remove animal")
			}
			return
		}
		if !res.Changed() {
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Msg: MsgAnimalDeleteFailed})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Msg: MsgAnimalDeleted})
	}
}

func toLocationResponse(l Location) locationResponse {
	roster := l.Animals
	if roster == nil {
		roster = []animals.Stub{}
	}
	return locationResponse{
		Name:    l.Name,
		Region:  l.Region.Coordinates(),
		Animals: roster,
	}
}

func internalError(w http.ResponseWriter, r *http.Request, err error, op string) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("location request failed")
	writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "internal error"})
}

// blank takes (value, name) pairs and returns the names of blank values.
func blank(pairs ...string) []string {
	var out []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i]) == "" {
			out = append(out, pairs[i+1])
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

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
