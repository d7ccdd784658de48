// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package presenter turns a resolved genre and its movies into the
// rendering-ready view model served to the UI. It produces strings and
// layout hints only; markup is the UI's concern.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// GridColumns is the number of columns movie cards are laid out in.
const GridColumns = 3

// GenreView is the public part of a genre catalog entry.
type GenreView struct {
	Tag        quiz.GenreTag `json:"tag"`
	Label      string        `json:"label"`
	CategoryID int           `json:"category_id"`
	Reason     string        `json:"reason"`
}

// MovieCard is one rendered movie.
type MovieCard struct {
	Rank        int     `json:"rank"`   // 1-based, popularity order
	Column      int     `json:"column"` // 0-based grid column
	Title       string  `json:"title"`
	PosterURL   string  `json:"poster_url"`
	HasPoster   bool    `json:"has_poster"`
	VoteAverage float64 `json:"vote_average"`
	RatingText  string  `json:"rating_text"`
	Overview    string  `json:"overview"`
	Reason      string  `json:"reason"`
}

// Recommendation is the full result payload.
type Recommendation struct {
	Genre    GenreView   `json:"genre"`
	Headline string      `json:"headline"`
	Badge    string      `json:"badge"`
	Summary  string      `json:"summary"`
	Columns  int         `json:"columns"`
	Movies   []MovieCard `json:"movies"`
}

// Present builds the result view. Movie order is preserved.
func Present(entry quiz.GenreEntry, movies []catalog.MovieRecord) Recommendation {
	cards := make([]MovieCard, len(movies))
	for i, m := range movies {
		cards[i] = MovieCard{
			Rank:        i + 1,
			Column:      i % GridColumns,
			Title:       m.Title,
			PosterURL:   m.PosterURL,
			HasPoster:   m.HasPoster(),
			VoteAverage: m.VoteAverage,
			RatingText:  FormatRating(m.VoteAverage),
			Overview:    m.Overview,
			Reason:      "이 영화를 추천하는 이유: " + entry.Reason,
		}
	}

	return Recommendation{
		Genre: GenreView{
			Tag:        entry.Tag,
			Label:      entry.Label,
			CategoryID: entry.CategoryID,
			Reason:     entry.Reason,
		},
		Headline: fmt.Sprintf("당신에게 딱인 장르는: %s!", entry.Label),
		Badge:    fmt.Sprintf("#%s 추천", entry.Label),
		Summary:  fmt.Sprintf("당신의 답변을 분석한 결과 %s 성향이 가장 두드러졌어요.\n%s", entry.Label, entry.Reason),
		Columns:  GridColumns,
		Movies:   cards,
	}
}

// FormatRating renders a vote average with one decimal, e.g. "⭐ 7.3".
func FormatRating(v float64) string {
	return "⭐ " + strconv.FormatFloat(v, 'f', 1, 64)
}
