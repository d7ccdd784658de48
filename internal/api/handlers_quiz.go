// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/models"
	"github.com/tomtom215/cinequiz/internal/presenter"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// answersRequest is the body of POST /api/v1/resolve. A null entry is an
// unanswered question; a short array leaves the trailing questions
// unanswered.
type answersRequest struct {
	Answers []*string `json:"answers" validate:"omitempty,dive,omitnil,genretag"`
}

// Questions handles GET /api/v1/questions.
// Returns the page copy and every question with its options.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, presenter.PresentQuestionnaire(h.bank), 0)
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, quiz.Genres(), 0)
}

// Resolve handles POST /api/v1/resolve.
// Runs the genre resolver only: no credential, no catalog call.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Rejected resolve body")
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", nil)
		return
	}

	answers, apiErr := h.parseAnswers(req.Answers, &req)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	tag := quiz.Resolve(answers)
	entry := quiz.Lookup(tag)

	counts := make(map[string]int)
	for t, n := range quiz.Tally(answers) {
		counts[string(t)] = n
	}

	respondSuccess(w, models.ResolveResult{
		Genre:    string(entry.Tag),
		Label:    entry.Label,
		Category: entry.CategoryID,
		Counts:   counts,
	}, 0)
}

// parseAnswers validates req and converts raw answers into one entry per
// question of the bank.
func (h *Handler) parseAnswers(raw []*string, req interface{}) ([]*quiz.GenreTag, *models.APIError) {
	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	if len(raw) > h.bank.Len() {
		return nil, &models.APIError{
			Code:    "INVALID_ANSWER",
			Message: fmt.Sprintf("answers must contain at most %d items", h.bank.Len()),
			Details: map[string]interface{}{"field": "answers"},
		}
	}

	answers := make([]*quiz.GenreTag, h.bank.Len())
	for i, a := range raw {
		if a != nil {
			answers[i] = quiz.GenreTag(*a).Ptr()
		}
	}
	return answers, nil
}
