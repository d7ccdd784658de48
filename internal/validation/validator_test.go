// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type answersRequest struct {
	Answers []*string `json:"answers" validate:"required,max=10,dive,omitnil,genretag"`
	APIKey  string    `json:"api_key" validate:"omitempty,max=256"`
}

func ptr(s string) *string { return &s }

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     answersRequest
		wantErr   bool
		wantCode  string
		wantField string
	}{
		{
			name:  "all answered",
			input: answersRequest{Answers: []*string{ptr("action"), ptr("sci-fi"), ptr("drama")}},
		},
		{
			name:  "nil entries are unanswered, not invalid",
			input: answersRequest{Answers: []*string{ptr("comedy"), nil, nil}},
		},
		{
			name:      "missing answers",
			input:     answersRequest{},
			wantErr:   true,
			wantCode:  "VALIDATION_ERROR",
			wantField: "answers",
		},
		{
			name:      "unknown tag",
			input:     answersRequest{Answers: []*string{ptr("action"), ptr("horror")}},
			wantErr:   true,
			wantCode:  "INVALID_ANSWER",
			wantField: "answers[1]",
		},
		{
			name:      "tags are case sensitive",
			input:     answersRequest{Answers: []*string{ptr("Action")}},
			wantErr:   true,
			wantCode:  "INVALID_ANSWER",
			wantField: "answers[0]",
		},
		{
			name:      "empty string is not a tag",
			input:     answersRequest{Answers: []*string{ptr("")}},
			wantErr:   true,
			wantCode:  "INVALID_ANSWER",
			wantField: "answers[0]",
		},
		{
			name:      "oversized key",
			input:     answersRequest{Answers: []*string{nil}, APIKey: strings.Repeat("k", 300)},
			wantErr:   true,
			wantCode:  "VALIDATION_ERROR",
			wantField: "api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}

			apiErr := verr.ToAPIError()
			if apiErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", apiErr.Code, tt.wantCode)
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestToAPIError_MultipleFields(t *testing.T) {
	t.Parallel()

	req := answersRequest{
		Answers: []*string{ptr("nope"), ptr("action")},
		APIKey:  strings.Repeat("k", 300),
	}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("len(Errors()) = %d, want 2", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "INVALID_ANSWER" {
		t.Errorf("Code = %q, want INVALID_ANSWER", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details[fields] = %v", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "answers[0]") || !strings.Contains(apiErr.Message, "api_key") {
		t.Errorf("Message = %q, want both fields named", apiErr.Message)
	}
}

func TestTranslateError_Messages(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&answersRequest{Answers: []*string{ptr("x")}})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	want := "answers[0] must be one of: action, comedy, drama, fantasy, romance, sci-fi"
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}

	verr = ValidateStruct(&answersRequest{Answers: make([]*string, 11)})
	if verr == nil {
		t.Fatal("expected validation error for too many answers")
	}
	if verr.Error() != "answers must be at most 10 items" {
		t.Errorf("Error() = %q", verr.Error())
	}

	verr = ValidateStruct(&answersRequest{Answers: []*string{ptr("drama")}, APIKey: strings.Repeat("k", 257)})
	if verr == nil {
		t.Fatal("expected validation error for long api_key")
	}
	if verr.Error() != "api_key must be at most 256 characters" {
		t.Errorf("Error() = %q", verr.Error())
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if apiErr := ve.ToAPIError(); apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}
