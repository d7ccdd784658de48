// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package quiz

// Tally counts the non-nil answers per genre.
func Tally(answers []*GenreTag) map[GenreTag]int {
	counts := make(map[GenreTag]int, len(genreCatalog))
	for _, a := range answers {
		if a != nil {
			counts[*a]++
		}
	}
	return counts
}

// Resolve picks the genre chosen most often. Ties go to the lexicographically
// smallest tag, so the result never depends on answer order. With no
// answers at all it returns DefaultGenre.
func Resolve(answers []*GenreTag) GenreTag {
	var (
		best      GenreTag
		bestCount int
	)
	for tag, n := range Tally(answers) {
		if n > bestCount || (n == bestCount && tag < best) {
			best, bestCount = tag, n
		}
	}
	if bestCount == 0 {
		return DefaultGenre
	}
	return best
}

// ResolveTags is Resolve for a fully answered set.
func ResolveTags(tags []GenreTag) GenreTag {
	answers := make([]*GenreTag, len(tags))
	for i := range tags {
		answers[i] = &tags[i]
	}
	return Resolve(answers)
}
