package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lazypower/lovewhisper/internal/catalog"
	"github.com/lazypower/lovewhisper/internal/session"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleInitialSet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.InitialLoad(r.Context()))
}

// handleNewSet answers 200 for both outcomes; a gate denial is a normal
// result the page turns into the upsell.
func (s *Server) handleNewSet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.RequestNewSet(r.Context()))
}

func (s *Server) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req session.Filters
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.session.SetFilters(r.Context(), req); err != nil {
		if errors.Is(err, session.ErrInvalidFilter) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot().Filters)
}

func (s *Server) handleCatalogOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tones":     catalog.ToneOptions(),
		"occasions": catalog.OccasionOptions(),
	})
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"favorites": s.session.Favorites(),
	})
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assetID")
	ok, err := s.session.Copy(r.Context(), id)
	s.interactionResponse(w, r, id, "copied", ok, err)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assetID")
	ok, err := s.session.Share(r.Context(), id)
	s.interactionResponse(w, r, id, "shared", ok, err)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assetID")
	added, err := s.session.ToggleFavorite(r.Context(), id)
	s.interactionResponse(w, r, id, "favorite", added, err)
}

func (s *Server) interactionResponse(w http.ResponseWriter, r *http.Request, id, field string, ok bool, err error) {
	if err != nil {
		if errors.Is(err, session.ErrUnknownAsset) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.log.Error(r.Context(), "interaction failed", "asset", id, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	snap := s.session.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"id":        id,
		field:       ok,
		"careScore": snap.CareScore,
		"toasts":    s.session.Toasts(),
	})
}

func (s *Server) handleSetSubscription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subscribed *bool `json:"subscribed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Subscribed == nil {
		writeError(w, http.StatusBadRequest, "subscribed required")
		return
	}

	s.session.SetSubscribed(r.Context(), *req.Subscribed)
	writeJSON(w, http.StatusOK, map[string]bool{"subscribed": *req.Subscribed})
}

func (s *Server) handleAcceptTrial(w http.ResponseWriter, r *http.Request) {
	s.session.AcceptTrial(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"subscribed": true})
}

func (s *Server) handleDismissUpsell(w http.ResponseWriter, r *http.Request) {
	s.session.DismissUpsell()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToasts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"toasts": s.session.Toasts(),
	})
}

func (s *Server) handleDismissToast(w http.ResponseWriter, r *http.Request) {
	if !s.session.DismissToast(chi.URLParam(r, "toastID")) {
		writeError(w, http.StatusNotFound, "toast not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
