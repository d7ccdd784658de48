// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/presenter"
	"github.com/tomtom215/cinequiz/internal/session"
)

// HeaderCredential is the alternative to the api_key body field.
const HeaderCredential = "X-TMDB-API-Key"

// recommendationRequest is the body of POST /api/v1/recommendations.
type recommendationRequest struct {
	Answers []*string `json:"answers" validate:"omitempty,dive,omitnil,genretag"`
	APIKey  string    `json:"api_key" validate:"omitempty,max=256"`
}

// Recommendations handles POST /api/v1/recommendations.
//
// Each request runs its own session: answers are validated, the genre is
// resolved, and up to five popular movies of that genre are fetched with
// the caller's TMDB key. The key is used for that one catalog call only.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logging.Ctx(r.Context()).Debug().Msg("Rejected recommendation body")
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", nil)
		return
	}

	answers, apiErr := h.parseAnswers(req.Answers, &req)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	source := "body"
	credential := strings.TrimSpace(req.APIKey)
	if credential == "" {
		source = "header"
		credential = strings.TrimSpace(r.Header.Get(HeaderCredential))
	}
	logging.Ctx(r.Context()).Debug().
		Str("credential_source", source).
		Str("credential", logging.RedactCredential(credential)).
		Msg("Recommendation requested")

	s := session.New(h.bank, h.catalog)
	if err := s.SetAnswers(answers); err != nil {
		// parseAnswers already enforced length and tag validity
		respondError(w, http.StatusBadRequest, "INVALID_ANSWER", "Invalid answers", err)
		return
	}

	start := time.Now()
	if err := s.Submit(r.Context(), credential); err != nil {
		respondFailure(w, err)
		return
	}

	res := s.Result()
	respondSuccess(w, presenter.Present(res.Genre, res.Movies), time.Since(start))
}

// respondFailure maps a session failure onto the error envelope.
func respondFailure(w http.ResponseWriter, err error) {
	var f *session.Failure
	if !errors.As(err, &f) {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
		return
	}

	switch {
	case errors.Is(f.Kind, session.ErrMissingCredential):
		respondError(w, http.StatusBadRequest, "MISSING_CREDENTIAL", f.Message, nil)

	case errors.Is(f.Kind, session.ErrIncompleteAnswers):
		respondErrorDetails(w, http.StatusBadRequest, "INCOMPLETE_ANSWERS", f.Message,
			map[string]interface{}{"missing": f.Missing}, nil)

	default:
		details := map[string]interface{}{}
		var ue *catalog.UnavailableError
		if errors.As(f.Cause, &ue) {
			details["reason"] = ue.Reason
			if ue.StatusCode != 0 {
				details["upstream_status"] = ue.StatusCode
			}
		}
		respondErrorDetails(w, http.StatusBadGateway, "CATALOG_UNAVAILABLE", f.Message, details, nil)
	}
}
