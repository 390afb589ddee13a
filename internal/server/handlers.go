package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonathan/ytj-lookup/internal/businessid"
	"github.com/jonathan/ytj-lookup/internal/rendering"
	"github.com/jonathan/ytj-lookup/internal/server/middleware"
	"github.com/jonathan/ytj-lookup/internal/types"
)

// businessIDField is the form field holding the user's input.
const businessIDField = "business_id"

// handleIndex renders the empty lookup form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, rendering.PageData{})
}

// handleLookupForm looks up the submitted business ID and renders the result.
// Every lookup outcome, including registry failures, renders with 200.
func (s *Server) handleLookupForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := strings.TrimSpace(r.PostForm.Get(businessIDField))
	if input == "" {
		s.renderPage(w, r, rendering.PageData{})
		return
	}

	businessID := s.normalize(r.Context(), input)
	result, _ := s.lookupResult(r.Context(), businessID)
	s.renderPage(w, r, rendering.PageData{Input: input, Result: result})
}

// handleAPICompany returns the lookup result as JSON.
func (s *Server) handleAPICompany(w http.ResponseWriter, r *http.Request) {
	input := strings.TrimSpace(r.PathValue("businessId"))
	if input == "" {
		s.errorResponse(w, http.StatusBadRequest, "business ID is required")
		return
	}

	businessID := s.normalize(r.Context(), input)
	result, err := s.lookupResult(r.Context(), businessID)

	status := http.StatusOK
	switch result.Status {
	case types.StatusNotFound:
		status = http.StatusNotFound
	case types.StatusError:
		status = http.StatusInternalServerError
		if err != nil {
			status = HTTPStatus(err)
		}
	}
	s.jsonResponse(w, status, result)
}

func (s *Server) normalize(ctx context.Context, input string) string {
	businessID := businessid.Normalize(input)
	s.logger.InfoContext(ctx, "lookup request received",
		"request_id", middleware.GetRequestID(ctx),
		"input", input,
		"business_id", businessID,
		"canonical", businessid.IsCanonical(businessID))
	return businessID
}

// lookupResult runs the registry lookup and converts its outcome. The error is
// returned only so callers can pick a status code.
func (s *Server) lookupResult(ctx context.Context, businessID string) (*types.LookupResult, error) {
	outcome, err := s.lookup.Lookup(ctx, businessID)
	if err != nil {
		s.logger.WarnContext(ctx, "lookup failed",
			"request_id", middleware.GetRequestID(ctx),
			"business_id", businessID,
			"error", err)
	}
	return ResultFromLookup(businessID, outcome, err), err
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, data rendering.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, data); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to render page",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
