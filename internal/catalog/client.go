// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package catalog fetches popular movies for a genre from the TMDB discover
// endpoint and shapes them into display-ready records.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinequiz/internal/config"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/metrics"
)

const (
	discoverPath = "/3/discover/movie"

	// Language and SortBy are fixed query parameters of every discovery.
	Language = "ko-KR"
	SortBy   = "popularity.desc"

	// MaxResults caps the records returned by Discover.
	MaxResults = 5

	// DefaultTimeout bounds a single discovery when config leaves it unset.
	DefaultTimeout = config.CatalogTimeout

	PlaceholderPosterURL = "https://via.placeholder.com/500x750?text=No+Image"
	PlaceholderOverview  = "줄거리 정보가 없습니다."
	PlaceholderTitle     = "제목 없음"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 64 * 1024

// Discoverer is implemented by Client and BreakerClient.
type Discoverer interface {
	Discover(ctx context.Context, credential string, categoryID int) ([]MovieRecord, error)
}

// Client performs TMDB discovery lookups. It never retries; a failed call
// is reported to the caller as-is.
type Client struct {
	baseURL      string
	imageBaseURL string
	timeout      time.Duration
	client       *http.Client
	limiter      *rate.Limiter
	logger       zerolog.Logger
}

// NewClient creates a client from catalog configuration.
func NewClient(cfg *config.CatalogConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimitPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		timeout:      timeout,
		client:       &http.Client{Timeout: timeout},
		limiter:      limiter,
		logger:       logging.WithComponent("catalog"),
	}
}

// discoverResponse is the subset of the TMDB discover payload we read.
// Results is a pointer so a body without the key counts as malformed.
type discoverResponse struct {
	Page    int               `json:"page"`
	Results *[]discoverResult `json:"results"`
}

type discoverResult struct {
	ID          int64    `json:"id"`
	Title       *string  `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	Overview    *string  `json:"overview"`
}

// tmdbError is the error envelope TMDB returns with non-2xx statuses.
type tmdbError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// Discover returns up to MaxResults movies in the TMDB genre categoryID,
// most popular first. It makes exactly one HTTP request bounded by the
// configured timeout. Every failure matches ErrCatalogUnavailable.
func (c *Client) Discover(ctx context.Context, credential string, categoryID int) ([]MovieRecord, error) {
	start := time.Now()
	log := c.logger.With().Int("category_id", categoryID).Logger()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		log = log.With().Str("request_id", id).Logger()
	}

	records, err := c.discover(ctx, credential, categoryID)
	elapsed := time.Since(start)

	if err != nil {
		reason := ReasonTransport
		var ue *UnavailableError
		if errors.As(err, &ue) {
			reason = ue.Reason
		}
		metrics.RecordCatalogRequest(reason, elapsed, 0)
		log.Warn().Err(err).Str("reason", reason).Dur("duration", elapsed).Msg("Catalog discovery failed")
		return nil, err
	}

	metrics.RecordCatalogRequest("success", elapsed, len(records))
	log.Debug().Int("records", len(records)).Dur("duration", elapsed).Msg("Catalog discovery complete")
	return records, nil
}

func (c *Client) discover(ctx context.Context, credential string, categoryID int) ([]MovieRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			reason := ReasonTimeout
			if errors.Is(ctx.Err(), context.Canceled) {
				reason = ReasonCanceled
			}
			return nil, &UnavailableError{Reason: reason, Detail: "rate limiter: " + err.Error()}
		}
	}

	reqURL := c.buildURL(credential, categoryID)
	c.logger.Trace().Str("url", logging.RedactURL(reqURL)).Msg("Catalog request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &UnavailableError{Reason: ReasonTransport, Detail: logging.RedactError(err, credential)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		reason := ReasonTransport
		switch {
		case errors.Is(err, context.Canceled):
			reason = ReasonCanceled
		case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
			reason = ReasonTimeout
		}
		return nil, &UnavailableError{Reason: reason, Detail: logging.RedactError(err, credential)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UnavailableError{
			Reason:     ReasonStatus,
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(readBodyForError(resp.Body)),
		}
	}

	var payload discoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UnavailableError{Reason: ReasonDecode, Detail: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if payload.Results == nil {
		return nil, &UnavailableError{Reason: ReasonDecode, Detail: "response has no results field"}
	}

	results := *payload.Results
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	records := make([]MovieRecord, 0, len(results))
	for i := range results {
		records = append(records, c.toRecord(&results[i]))
	}
	return records, nil
}

func (c *Client) buildURL(credential string, categoryID int) string {
	params := url.Values{}
	params.Set("api_key", credential)
	params.Set("with_genres", strconv.Itoa(categoryID))
	params.Set("language", Language)
	params.Set("sort_by", SortBy)
	return c.baseURL + discoverPath + "?" + params.Encode()
}

func (c *Client) toRecord(r *discoverResult) MovieRecord {
	rec := MovieRecord{
		ID:        r.ID,
		Title:     PlaceholderTitle,
		PosterURL: PlaceholderPosterURL,
		Overview:  PlaceholderOverview,
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) != "" {
		rec.Title = *r.Title
	}
	if r.PosterPath != nil && *r.PosterPath != "" {
		rec.PosterPath = *r.PosterPath
		rec.PosterURL = c.posterURL(*r.PosterPath)
	}
	if r.VoteAverage != nil {
		rec.VoteAverage = *r.VoteAverage
	}
	if r.Overview != nil && strings.TrimSpace(*r.Overview) != "" {
		rec.Overview = *r.Overview
	}
	return rec
}

func (c *Client) posterURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.imageBaseURL + path
}

// readBodyForError reads at most maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

// errorDetail prefers TMDB's status_message over the raw body.
func errorDetail(body []byte) string {
	var te tmdbError
	if err := json.Unmarshal(body, &te); err == nil && te.StatusMessage != "" {
		return te.StatusMessage
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
