// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package session runs one questionnaire submission from answer collection
// to a presented result or a user-facing failure.
//
// A Session is owned by a single caller and is not safe for concurrent use.
// Create one per submission; nothing is shared between sessions except the
// read-only question bank and the catalog client.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/metrics"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// State is a step of the submission state machine.
type State int

const (
	Collecting State = iota
	Validating
	Fetching
	Presenting
	Failed
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Validating:
		return "validating"
	case Fetching:
		return "fetching"
	case Presenting:
		return "presenting"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Sentinel errors for the user-facing failure kinds.
var (
	ErrMissingCredential  = errors.New("missing credential")
	ErrIncompleteAnswers  = errors.New("incomplete answers")
	ErrCatalogUnavailable = catalog.ErrCatalogUnavailable

	// ErrNotCollecting is returned by Submit outside the Collecting state.
	ErrNotCollecting = errors.New("session is not collecting answers")
)

// User-facing messages, one per failure kind.
const (
	MessageMissingCredential  = "TMDB API Key를 입력해주세요."
	MessageIncompleteAnswers  = "모든 질문에 답해주세요."
	MessageCatalogUnavailable = "TMDB 데이터를 불러오지 못했습니다. API Key를 확인해주세요."
)

// Failure is the outcome of a submission that ended in Failed.
type Failure struct {
	// Kind is one of the sentinel errors above; test with errors.Is.
	Kind error

	// Message is shown to the user as-is.
	Message string

	// Missing lists unanswered question indexes for ErrIncompleteAnswers.
	Missing []int

	// Cause is the underlying error, if any. It never contains the credential.
	Cause error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%v: %v", f.Kind, f.Cause)
	}
	return f.Kind.Error()
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

// Result is produced only by a successful submission.
type Result struct {
	Genre  quiz.GenreEntry
	Movies []catalog.MovieRecord
}

// Session accumulates answers and runs a submission.
type Session struct {
	bank    *quiz.Bank
	fetcher catalog.Discoverer

	state   State
	answers []*quiz.GenreTag
	result  *Result
	failure *Failure
}

// New starts a session in Collecting with no answers.
func New(bank *quiz.Bank, fetcher catalog.Discoverer) *Session {
	s := &Session{bank: bank, fetcher: fetcher}
	s.Reset()
	return s
}

// Reset returns to Collecting and discards answers and any outcome.
func (s *Session) Reset() {
	s.state = Collecting
	s.answers = make([]*quiz.GenreTag, s.bank.Len())
	s.result = nil
	s.failure = nil
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Answers returns a copy of the current answer set; nil entries are unanswered.
func (s *Session) Answers() []*quiz.GenreTag {
	out := make([]*quiz.GenreTag, len(s.answers))
	for i, a := range s.answers {
		if a != nil {
			out[i] = a.Ptr()
		}
	}
	return out
}

// Result returns the result in Presenting, nil otherwise.
func (s *Session) Result() *Result {
	return s.result
}

// Failure returns the failure in Failed, nil otherwise.
func (s *Session) Failure() *Failure {
	return s.failure
}

// beginInteraction starts a new session when the previous one has finished.
func (s *Session) beginInteraction() {
	if s.state == Presenting || s.state == Failed {
		s.Reset()
	}
}

// Select records tag as the answer to question questionIdx.
func (s *Session) Select(questionIdx int, tag quiz.GenreTag) error {
	if questionIdx < 0 || questionIdx >= s.bank.Len() {
		return fmt.Errorf("question index %d out of range [0, %d)", questionIdx, s.bank.Len())
	}
	if !tag.IsValid() {
		return fmt.Errorf("unknown genre tag %q", tag)
	}
	s.beginInteraction()
	s.answers[questionIdx] = tag.Ptr()
	return nil
}

// SelectOption records option optionIdx of question questionIdx.
func (s *Session) SelectOption(questionIdx, optionIdx int) error {
	tag, err := s.bank.OptionGenre(questionIdx, optionIdx)
	if err != nil {
		return err
	}
	return s.Select(questionIdx, tag)
}

// Clear removes the answer to question questionIdx.
func (s *Session) Clear(questionIdx int) error {
	if questionIdx < 0 || questionIdx >= s.bank.Len() {
		return fmt.Errorf("question index %d out of range [0, %d)", questionIdx, s.bank.Len())
	}
	s.beginInteraction()
	s.answers[questionIdx] = nil
	return nil
}

// SetAnswers replaces the whole answer set, as delivered atomically by a form
// submit. answers must have one entry per question; nil means unanswered.
func (s *Session) SetAnswers(answers []*quiz.GenreTag) error {
	if len(answers) != s.bank.Len() {
		return fmt.Errorf("got %d answers for %d questions", len(answers), s.bank.Len())
	}
	for i, a := range answers {
		if a != nil && !a.IsValid() {
			return fmt.Errorf("answer %d: unknown genre tag %q", i, *a)
		}
	}
	s.beginInteraction()
	for i, a := range answers {
		s.answers[i] = nil
		if a != nil {
			s.answers[i] = a.Ptr()
		}
	}
	return nil
}

// Submit validates the answers and credential, resolves the genre and
// fetches movies. It always ends in Presenting or Failed and returns the
// Failure (as error) in the latter case. The credential is used for the
// catalog call only and is neither stored nor logged.
func (s *Session) Submit(ctx context.Context, credential string) error {
	if s.state != Collecting {
		return fmt.Errorf("%w: state is %s", ErrNotCollecting, s.state)
	}
	log := logging.Ctx(ctx)

	s.state = Validating
	if strings.TrimSpace(credential) == "" {
		return s.fail(ctx, &Failure{Kind: ErrMissingCredential, Message: MessageMissingCredential})
	}
	if missing := s.unanswered(); len(missing) > 0 {
		return s.fail(ctx, &Failure{Kind: ErrIncompleteAnswers, Message: MessageIncompleteAnswers, Missing: missing})
	}

	s.state = Fetching
	tag := quiz.Resolve(s.answers)
	entry := quiz.Lookup(tag)
	metrics.RecordGenreResolved(string(tag))
	log.Debug().Str("genre", string(tag)).Int("category_id", entry.CategoryID).Msg("Genre resolved")

	movies, err := s.fetcher.Discover(ctx, credential, entry.CategoryID)
	if err != nil {
		return s.fail(ctx, &Failure{Kind: ErrCatalogUnavailable, Message: MessageCatalogUnavailable, Cause: err})
	}

	s.result = &Result{Genre: entry, Movies: movies}
	s.state = Presenting
	metrics.RecordSubmission("presented")
	log.Info().Str("genre", string(tag)).Int("movies", len(movies)).Msg("Recommendation ready")
	return nil
}

func (s *Session) unanswered() []int {
	var missing []int
	for i, a := range s.answers {
		if a == nil {
			missing = append(missing, i)
		}
	}
	return missing
}

func (s *Session) fail(ctx context.Context, f *Failure) error {
	from := s.state
	s.state = Failed
	s.failure = f
	s.result = nil

	metrics.RecordSubmission(outcomeLabel(f.Kind))
	ev := logging.Ctx(ctx).Info()
	if f.Cause != nil {
		ev = logging.Ctx(ctx).Warn().Err(f.Cause)
	}
	ev.Str("from", from.String()).Str("kind", f.Kind.Error()).Msg("Submission failed")
	return f
}

func outcomeLabel(kind error) string {
	switch {
	case errors.Is(kind, ErrMissingCredential):
		return "missing_credential"
	case errors.Is(kind, ErrIncompleteAnswers):
		return "incomplete_answers"
	default:
		return "catalog_unavailable"
	}
}
