// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package quiz

import "fmt"

// Option is one selectable answer and the genre it votes for.
type Option struct {
	Label string   `json:"label"`
	Genre GenreTag `json:"genre"`
}

// Question is a prompt with its ordered options.
type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Bank is an ordered, immutable list of questions. Accessors return copies.
type Bank struct {
	questions []Question
}

// NewBank builds a bank from questions. The slice is copied.
func NewBank(questions []Question) *Bank {
	return &Bank{questions: cloneQuestions(questions)}
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of all questions in order.
func (b *Bank) Questions() []Question {
	return cloneQuestions(b.questions)
}

// Question returns the question at index i.
func (b *Bank) Question(i int) (Question, error) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, fmt.Errorf("question index %d out of range [0, %d)", i, len(b.questions))
	}
	q := b.questions[i]
	q.Options = append([]Option(nil), q.Options...)
	return q, nil
}

// OptionGenre returns the genre voted for by option optionIdx of question questionIdx.
func (b *Bank) OptionGenre(questionIdx, optionIdx int) (GenreTag, error) {
	q, err := b.Question(questionIdx)
	if err != nil {
		return "", err
	}
	if optionIdx < 0 || optionIdx >= len(q.Options) {
		return "", fmt.Errorf("option index %d out of range for question %d", optionIdx, questionIdx)
	}
	return q.Options[optionIdx].Genre, nil
}

func cloneQuestions(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = Question{Text: q.Text, Options: append([]Option(nil), q.Options...)}
	}
	return out
}

var defaultQuestions = []Question{
	{
		Text: "주말에 가장 하고 싶은 일은?",
		Options: []Option{
			{Label: "즉흥적으로 모험 떠나기", Genre: Action},
			{Label: "친구들과 배꼽 잡는 파티", Genre: Comedy},
			{Label: "깊이 있는 생각을 하며 산책", Genre: Drama},
		},
	},
	{
		Text: "영화를 볼 때 중요한 요소는?",
		Options: []Option{
			{Label: "화려한 비주얼과 미래 세계", Genre: SciFi},
			{Label: "두근두근 설레는 감정", Genre: Romance},
			{Label: "마법 같은 상상력", Genre: Fantasy},
		},
	},
	{
		Text: "친구가 당신을 한 단어로 표현한다면?",
		Options: []Option{
			{Label: "에너지 넘치는 추진력", Genre: Action},
			{Label: "분위기 메이커", Genre: Comedy},
			{Label: "따뜻하고 공감하는 사람", Genre: Romance},
		},
	},
	{
		Text: "선호하는 이야기 전개는?",
		Options: []Option{
			{Label: "빠르고 긴장감 있는 전개", Genre: Action},
			{Label: "잔잔하지만 여운이 남는 전개", Genre: Drama},
			{Label: "현실을 넘어선 세계", Genre: Fantasy},
		},
	},
	{
		Text: "지금 가장 필요한 감정은?",
		Options: []Option{
			{Label: "통쾌함과 스릴", Genre: Action},
			{Label: "웃음과 기분 전환", Genre: Comedy},
			{Label: "따뜻한 위로", Genre: Drama},
		},
	},
}

// DefaultBank returns the built-in five-question bank.
func DefaultBank() *Bank {
	return NewBank(defaultQuestions)
}
