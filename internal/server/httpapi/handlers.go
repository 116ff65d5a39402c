package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.logger.Warn(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: token})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, common.ErrorUnauthorized)
		return
	}

	id, err := claims.UserID()
	if err != nil {
		h.writeError(w, r, common.ErrorUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{ID: id, Email: claims.Email})
}

func (h *handlers) createAnimal(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	animal, err := h.animals.Create(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "animal created", "id", animal.ID, "tipo", animal.Tipo)
	writeJSON(w, http.StatusCreated, animal)
}

func (h *handlers) listAnimals(w http.ResponseWriter, r *http.Request) {
	list, err := h.animals.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *handlers) getAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := animalID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	animal, err := h.animals.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, animal)
}

func (h *handlers) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	id, err := animalID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.animals.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.logger.Info(r.Context(), "animal deleted", "id", id)
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) presignImage(w http.ResponseWriter, r *http.Request) {
	var req imageUploadRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	upload, err := h.images.PresignUpload(r.Context(), req.ContentType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, upload)
}

func animalID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad animal id %q", common.ErrorInvalidInput, raw)
	}
	return id, nil
}
