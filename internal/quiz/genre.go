// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package quiz holds the static questionnaire data and the answer-to-genre
// resolution rule. Everything here is pure and safe for concurrent reads.
package quiz

import (
	"fmt"
	"strings"
)

// GenreTag identifies one of the six genres a questionnaire can resolve to.
// The set is closed; ParseGenreTag rejects anything else.
type GenreTag string

const (
	Action  GenreTag = "action"
	Comedy  GenreTag = "comedy"
	Drama   GenreTag = "drama"
	Fantasy GenreTag = "fantasy"
	Romance GenreTag = "romance"
	SciFi   GenreTag = "sci-fi"
)

// DefaultGenre is returned when no question has been answered.
const DefaultGenre = Drama

// IsValid reports whether t is a member of the closed set.
func (t GenreTag) IsValid() bool {
	_, ok := genreCatalog[t]
	return ok
}

func (t GenreTag) String() string {
	return string(t)
}

// Ptr returns a pointer to a copy of t, for building answer sets.
func (t GenreTag) Ptr() *GenreTag {
	return &t
}

// ParseGenreTag converts s to a GenreTag. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseGenreTag(s string) (GenreTag, error) {
	t := GenreTag(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("unknown genre tag %q", s)
	}
	return t, nil
}

// GenreEntry is the catalog row for one genre.
type GenreEntry struct {
	Tag GenreTag `json:"tag"`

	// Label is the Korean display name, e.g. "액션".
	Label string `json:"label"`

	// CategoryID is the TMDB genre id passed as with_genres.
	CategoryID int `json:"category_id"`

	// Reason is the one-sentence justification shown with the result.
	Reason string `json:"reason"`
}

// catalogOrder is the display order of the genre catalog.
var catalogOrder = []GenreTag{Action, Comedy, Drama, SciFi, Romance, Fantasy}

var genreCatalog = map[GenreTag]GenreEntry{
	Action: {
		Tag:        Action,
		Label:      "액션",
		CategoryID: 28,
		Reason:     "에너지 넘치는 도전을 즐기는 성향이 강해요.",
	},
	Comedy: {
		Tag:        Comedy,
		Label:      "코미디",
		CategoryID: 35,
		Reason:     "웃음과 활기를 통해 기분 전환을 원해요.",
	},
	Drama: {
		Tag:        Drama,
		Label:      "드라마",
		CategoryID: 18,
		Reason:     "깊이 있는 감정선을 통해 공감을 찾는 편이에요.",
	},
	SciFi: {
		Tag:        SciFi,
		Label:      "SF",
		CategoryID: 878,
		Reason:     "미래적 상상력과 새로운 세계관에 끌려요.",
	},
	Romance: {
		Tag:        Romance,
		Label:      "로맨스",
		CategoryID: 10749,
		Reason:     "설레는 관계의 흐름에서 힐링을 느껴요.",
	},
	Fantasy: {
		Tag:        Fantasy,
		Label:      "판타지",
		CategoryID: 14,
		Reason:     "현실을 넘어선 이야기에 몰입하는 것을 좋아해요.",
	},
}

// Lookup returns the catalog entry for tag. An unknown tag is a programming
// error (the set is closed and checked at startup by Validate), so Lookup
// panics rather than returning an error.
func Lookup(tag GenreTag) GenreEntry {
	entry, ok := genreCatalog[tag]
	if !ok {
		panic(fmt.Sprintf("quiz: genre tag %q is not in the catalog", tag))
	}
	return entry
}

// LookupOK is Lookup for boundary code that handles untrusted tags.
func LookupOK(tag GenreTag) (GenreEntry, bool) {
	entry, ok := genreCatalog[tag]
	return entry, ok
}

// Genres returns every catalog entry in display order.
func Genres() []GenreEntry {
	out := make([]GenreEntry, 0, len(catalogOrder))
	for _, tag := range catalogOrder {
		out = append(out, genreCatalog[tag])
	}
	return out
}
