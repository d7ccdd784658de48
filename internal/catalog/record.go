// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

// MovieRecord is one movie as shown to the user. Missing optional fields
// are already replaced by placeholders.
type MovieRecord struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	// PosterPath is the raw TMDB path, empty when the movie has no poster.
	PosterPath string `json:"poster_path,omitempty"`

	// PosterURL is the full image URL, or PlaceholderPosterURL.
	PosterURL string `json:"poster_url"`

	// VoteAverage is 0 when TMDB reports none.
	VoteAverage float64 `json:"vote_average"`

	Overview string `json:"overview"`
}

// HasPoster reports whether the record carries a real poster image.
func (m MovieRecord) HasPoster() bool {
	return m.PosterPath != ""
}
