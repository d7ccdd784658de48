// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks a bank against the genre catalog: every question has text
// and options, and every option votes for a genre the catalog knows.
// The server refuses to start when this fails.
func Validate(b *Bank) error {
	if b == nil || b.Len() == 0 {
		return errors.New("question bank is empty")
	}

	var errs []error
	for i, q := range b.questions {
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Errorf("question %d has no text", i))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Errorf("question %d has no options", i))
		}
		for j, opt := range q.Options {
			if !opt.Genre.IsValid() {
				errs = append(errs, fmt.Errorf("question %d option %d (%q) references unknown genre %q", i, j, opt.Label, opt.Genre))
			}
		}
	}

	for _, tag := range catalogOrder {
		entry := genreCatalog[tag]
		if entry.Tag != tag {
			errs = append(errs, fmt.Errorf("catalog entry for %q carries tag %q", tag, entry.Tag))
		}
		if entry.CategoryID <= 0 {
			errs = append(errs, fmt.Errorf("catalog entry %q has no category id", tag))
		}
	}
	if len(catalogOrder) != len(genreCatalog) {
		errs = append(errs, fmt.Errorf("catalog order lists %d genres, catalog has %d", len(catalogOrder), len(genreCatalog)))
	}

	return errors.Join(errs...)
}
