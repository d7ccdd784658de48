// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package presenter

import (
	"fmt"

	"github.com/tomtom215/cinequiz/internal/quiz"
)

// PageCopy is the static text around the questionnaire.
type PageCopy struct {
	Title            string `json:"title"`
	Intro            string `json:"intro"`
	CredentialLabel  string `json:"credential_label"`
	CredentialNotice string `json:"credential_notice"`
	SubmitLabel      string `json:"submit_label"`
	LoadingMessage   string `json:"loading_message"`
	DetailsLabel     string `json:"details_label"`
}

// DefaultPageCopy returns the Korean page text.
func DefaultPageCopy() PageCopy {
	return PageCopy{
		Title:            "심리테스트 영화 추천",
		Intro:            "질문에 답하고 결과를 확인해보세요! TMDB 인기 영화 5편을 추천합니다.",
		CredentialLabel:  "TMDB API Key",
		CredentialNotice: "API Key는 로컬에 저장되지 않습니다.",
		SubmitLabel:      "결과 보기",
		LoadingMessage:   "TMDB 추천 영화를 가져오는 중...",
		DetailsLabel:     "상세 정보 보기",
	}
}

// QuestionView is a question with its display heading.
type QuestionView struct {
	Index   int           `json:"index"`
	Heading string        `json:"heading"` // "Q1. ..."
	Text    string        `json:"text"`
	Options []quiz.Option `json:"options"`
}

// Questionnaire is everything the UI needs to render the form.
type Questionnaire struct {
	Page      PageCopy       `json:"page"`
	Questions []QuestionView `json:"questions"`
}

// PresentQuestionnaire builds the form view for bank.
func PresentQuestionnaire(bank *quiz.Bank) Questionnaire {
	qs := bank.Questions()
	views := make([]QuestionView, len(qs))
	for i, q := range qs {
		views[i] = QuestionView{
			Index:   i,
			Heading: fmt.Sprintf("Q%d. %s", i+1, q.Text),
			Text:    q.Text,
			Options: q.Options,
		}
	}
	return Questionnaire{Page: DefaultPageCopy(), Questions: views}
}
