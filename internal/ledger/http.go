package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"LearnHub/pkg/kit"
)

// Server exposes one user's ledger over HTTP. Identity arrives via
// middleware (gateway headers or a bearer token).
type Server struct {
	Ledgers  *Set
	Courses  CourseSource
	Checkout *Checkout
	Log      *zap.Logger
}

type cartResp struct {
	CourseIDs []string `json:"course_ids"`
	Total     string   `json:"total"`
}

type toggleResp struct {
	CourseID string `json:"course_id"`
	Saved    bool   `json:"saved"`
}

type progressResp struct {
	CourseID  string   `json:"course_id"`
	Completed []string `json:"completed"`
	Total     int      `json:"total"`
	Percent   float64  `json:"percent"`
}

type themeReq struct {
	Theme string `json:"theme"`
}

func (s *Server) userLedger(r *http.Request) (*Ledger, bool) {
	u, ok := UserFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return s.Ledgers.For(r.Context(), u.ID), true
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}
	s.writeCart(w, r, l)
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	l.AddToCart(r.Context(), chi.URLParam(r, "courseID"))
	s.writeCart(w, r, l)
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	l.RemoveFromCart(r.Context(), chi.URLParam(r, "courseID"))
	s.writeCart(w, r, l)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	l.ClearCart(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeCart(w http.ResponseWriter, r *http.Request, l *Ledger) {
	total, err := l.TotalPrice(r.Context(), PriceVia(s.Courses))
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("cart total failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusBadGateway, "catalog error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, cartResp{
		CourseIDs: l.CartIDs(),
		Total:     total.String(),
	})
}

func (s *Server) getSaved(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, l.SavedIDs())
}

func (s *Server) toggleSaved(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	id := chi.URLParam(r, "courseID")
	saved := l.ToggleSave(r.Context(), id)
	kit.WriteJSON(w, http.StatusOK, toggleResp{CourseID: id, Saved: saved})
}

func (s *Server) getPurchased(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, l.PurchasedIDs())
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var form PaymentForm
	if err := kit.DecodeJSON(w, r, &form); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	order, err := s.Checkout.Process(r.Context(), l, form)
	if err != nil {
		s.writeCheckoutError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, order)
}

func (s *Server) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBadPaymentForm):
		kit.WriteError(w, r, http.StatusBadRequest, "invalid payment details", map[string]any{"cause": err.Error()})
	case errors.Is(err, ErrEmptyCart):
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
	case errors.Is(err, ErrUnknownCourse):
		kit.WriteError(w, r, http.StatusBadRequest, "unknown course in cart", nil)
	case errors.Is(err, ErrCatalogUnavailable):
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog unavailable", nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kit.WriteError(w, r, http.StatusGatewayTimeout, "timeout", nil)
	default:
		if s.Log != nil {
			s.Log.Error("checkout failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func (s *Server) getOrders(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	orders := l.Orders(r.Context())
	if orders == nil {
		orders = []Order{}
	}
	kit.WriteJSON(w, http.StatusOK, orders)
}

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	courseID := chi.URLParam(r, "courseID")
	s.writeProgress(w, r, l, courseID)
}

func (s *Server) toggleProgress(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	courseID := chi.URLParam(r, "courseID")
	l.ToggleLesson(r.Context(), courseID, chi.URLParam(r, "lessonID"))
	s.writeProgress(w, r, l, courseID)
}

func (s *Server) writeProgress(w http.ResponseWriter, r *http.Request, l *Ledger, courseID string) {
	info, err := s.Courses.GetCourse(r.Context(), courseID)
	if errors.Is(err, ErrCourseNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": courseID})
		return
	}
	if err != nil {
		kit.WriteError(w, r, http.StatusBadGateway, "catalog error", nil)
		return
	}

	done := l.CompletedLessons(r.Context(), courseID)
	if done == nil {
		done = []string{}
	}
	kit.WriteJSON(w, http.StatusOK, progressResp{
		CourseID:  courseID,
		Completed: done,
		Total:     info.LessonCount(),
		Percent:   ProgressPercent(len(done), info.LessonCount()),
	})
}

func (s *Server) getTheme(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, themeReq{Theme: l.Theme(r.Context())})
}

func (s *Server) putTheme(w http.ResponseWriter, r *http.Request) {
	l, ok := s.userLedger(r)
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no user", nil)
		return
	}

	var req themeReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	l.SetTheme(r.Context(), req.Theme)
	w.WriteHeader(http.StatusNoContent)
}
