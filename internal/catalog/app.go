package catalog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"LearnHub/pkg/kit"
)

type Server struct {
	Engine *Engine
	Log    *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Engine.Repo.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/courses", s.search)
	r.Get("/courses/featured", s.featured)
	r.Get("/courses/popular", s.popular)
	r.Get("/courses/new", s.newest)
	r.Get("/courses/meta/categories", s.categories)
	r.Get("/courses/meta/levels", s.levels)
	r.Get("/courses/{id}", s.get)

	return r
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilters(r.URL.Query())
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad filter", map[string]any{"cause": err.Error()})
		return
	}

	courses, err := s.Engine.Search(r.Context(), f)
	if err != nil {
		s.serverError(w, r, "search failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, courses)
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	courses, err := s.Engine.Featured(r.Context())
	if err != nil {
		s.serverError(w, r, "featured failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, courses)
}

func (s *Server) popular(w http.ResponseWriter, r *http.Request) {
	n, err := limitParam(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad limit", nil)
		return
	}

	courses, err := s.Engine.Popular(r.Context(), n)
	if err != nil {
		s.serverError(w, r, "popular failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, courses)
}

func (s *Server) newest(w http.ResponseWriter, r *http.Request) {
	n, err := limitParam(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad limit", nil)
		return
	}

	courses, err := s.Engine.Newest(r.Context(), n)
	if err != nil {
		s.serverError(w, r, "newest failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, courses)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, ok, err := s.Engine.Repo.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get course failed", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	out, err := s.Engine.Categories(r.Context())
	if err != nil {
		s.serverError(w, r, "categories failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) levels(w http.ResponseWriter, r *http.Request) {
	out, err := s.Engine.Levels(r.Context())
	if err != nil {
		s.serverError(w, r, "levels failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func limitParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
