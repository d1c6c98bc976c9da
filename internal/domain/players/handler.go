package players

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"critter-collector/internal/domain/animals"
	"critter-collector/internal/validation"
)

const (
	MsgPlayerNotFound     = "Player Not Found"
	MsgPlayerExists       = "Player already exists"
	MsgPlayerCreated      = "Player created successfully"
	MsgPlayerUpdated      = "Player updated successfully"
	MsgPlayerUpdateFailed = "Player failed to update"
	MsgPlayerDeleted      = "Player deleted successfully"
	MsgAnimalCaught       = "Animal caught successfully"
	MsgAnimalCatchFailed  = "Animal failed to update"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/player", func(pr chi.Router) {
		pr.Get("/", getPlayerHandler(svc))
		pr.Post("/", createPlayerHandler(svc))
		pr.Put("/", updatePlayerHandler(svc))
		pr.Delete("/", deletePlayerHandler(svc))

		pr.Get("/box", getBoxHandler(svc))
		pr.Put("/box", catchHandler(svc))
	})
}

type playerRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type catchRequest struct {
	Username         *string `json:"username"`
	CommonAnimal     *string `json:"common_animal"`
	ScientificAnimal *string `json:"scientific_animal"`
}

type playerResponse struct {
	Msg       string `json:"msg"`
	Exists    bool   `json:"exists"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	Animals   int    `json:"animals"`
}

type catchResponse struct {
	Msg    string          `json:"msg"`
	Animal CollectedAnimal `json:"animal"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []validation.Message `json:"errors"`
}

// getPlayerHandler godoc
// @Summary Check whether a player profile exists
// @Tags player
// @Produce json
// @Param username query string true "User name"
// @Success 200 {object} playerResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} playerResponse
// @Router /player [get]
func getPlayerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName := validation.Sanitize(strings.TrimSpace(r.URL.Query().Get("username")))
		if userName == "" {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required parameters: username"})
			return
		}

		p, err := svc.Get(r.Context(), userName)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, playerResponse{Msg: MsgPlayerNotFound})
				return
			}
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, playerResponse{
			Msg:       "Player exists",
			Exists:    true,
			UserName:  p.UserName,
			UserEmail: p.UserEmail,
			Animals:   len(p.Collection),
		})
	}
}

// createPlayerHandler godoc
// @Summary Create a player profile
// @Tags player
// @Accept json
// @Produce json
// @Param payload body playerRequest true "User name and e-mail"
// @Success 201 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Failure 422 {object} errorsResponse
// @Router /player [post]
func createPlayerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName, email, ok := decodePlayer(w, r)
		if !ok {
			return
		}

		if _, err := svc.Create(r.Context(), userName, email); err != nil {
			if errors.Is(err, ErrPlayerExists) {
				writeJSON(w, http.StatusConflict, messageResponse{Msg: MsgPlayerExists})
				return
			}
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, messageResponse{Msg: MsgPlayerCreated})
	}
}

// updatePlayerHandler godoc
// @Summary Update a player's e-mail
// @Tags player
// @Accept json
// @Produce json
// @Param payload body playerRequest true "User name and new e-mail"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 422 {object} messageResponse
// @Router /player [put]
func updatePlayerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName, email, ok := decodePlayer(w, r)
		if !ok {
			return
		}

		res, err := svc.UpdateEmail(r.Context(), userName, email)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		switch {
		case res.NotFound():
			writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgPlayerNotFound})
		case !res.Changed():
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Msg: MsgPlayerUpdateFailed})
		default:
			writeJSON(w, http.StatusOK, messageResponse{Msg: MsgPlayerUpdated})
		}
	}
}

// deletePlayerHandler godoc
// @Summary Delete a player profile
// @Tags player
// @Accept json
// @Produce json
// @Param payload body playerRequest true "User name"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /player [delete]
func deletePlayerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}
		if req.Username == nil || strings.TrimSpace(*req.Username) == "" {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: username"})
			return
		}

		res, err := svc.Delete(r.Context(), validation.Sanitize(*req.Username))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if res.Deleted == 0 {
			writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgPlayerNotFound})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Msg: MsgPlayerDeleted})
	}
}

// getBoxHandler godoc
// @Summary A player's caught animals
// @Description Every entry is enriched with encyclopedia data; entries without data carry "no data".
// @Tags player
// @Produce json
// @Param username query string true "User name"
// @Success 200 {array} BoxAnimal
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /player/box [get]
func getBoxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userName := validation.Sanitize(strings.TrimSpace(r.URL.Query().Get("username")))
		if userName == "" {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required parameters: username"})
			return
		}

		box, err := svc.Box(r.Context(), userName)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, box)
	}
}

// catchHandler godoc
// @Summary Catch an animal
// @Description Adds the animal to the player's box or increments its count.
// @Tags player
// @Accept json
// @Produce json
// @Param payload body catchRequest true "User name and animal names"
// @Success 200 {object} catchResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 422 {object} messageResponse
// @Router /player/box [put]
func catchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
			return
		}

		var missing []string
		for _, f := range []struct {
			name string
			v    *string
		}{
			{"username", req.Username},
			{"common_animal", req.CommonAnimal},
			{"scientific_animal", req.ScientificAnimal},
		} {
			if f.v == nil || strings.TrimSpace(*f.v) == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
			return
		}

		clean := validation.SanitizeStrings(*req.Username, *req.CommonAnimal, *req.ScientificAnimal)
		caught, err := svc.Catch(r.Context(), clean[0], animals.Stub{CommonName: clean[1], ScientificName: clean[2]})
		if err != nil {
			if errors.Is(err, ErrNotModified) {
				writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Msg: MsgAnimalCatchFailed})
				return
			}
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, catchResponse{Msg: MsgAnimalCaught, Animal: caught})
	}
}

// decodePlayer reads {username, email}, answering 400/422 itself when the
// body is unusable.
func decodePlayer(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "invalid json"})
		return "", "", false
	}

	var missing []string
	if req.Username == nil || strings.TrimSpace(*req.Username) == "" {
		missing = append(missing, "username")
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Missing required fields: " + strings.Join(missing, ", ")})
		return "", "", false
	}

	clean := validation.SanitizeStrings(*req.Username, *req.Email)
	if errs := validation.CheckEmail(strings.TrimSpace(clean[1]), nil); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})
		return "", "", false
	}
	return clean[0], clean[1], true
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Msg: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Msg: MsgPlayerNotFound})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("player request failed")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
