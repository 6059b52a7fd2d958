package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh random identifier for a lesson or question.
func NewID() string {
	return uuid.NewString()
}

// Question is a single multiple-choice question.
type Question struct {
	ID   string `json:"id" yaml:"id"`
	Stem string `json:"stem" yaml:"stem"`

	// Choices maps every label A-E to its text. E is ignored unless
	// EnableChoiceE is set.
	Choices       map[ChoiceLabel]string `json:"choices" yaml:"choices"`
	EnableChoiceE bool                   `json:"enableChoiceE" yaml:"enableChoiceE"`

	// CorrectAnswers is a set: unique labels, order irrelevant.
	CorrectAnswers []ChoiceLabel `json:"correctAnswers" yaml:"correctAnswers"`

	Explanation     string          `json:"explanation" yaml:"explanation"`
	ShowExplanation ExplanationMode `json:"showExplanation" yaml:"showExplanation"`

	// IsDuplicateIntentional excludes the question from duplicate detection.
	IsDuplicateIntentional bool `json:"isDuplicateIntentional" yaml:"isDuplicateIntentional"`
}

// NewQuestion creates a blank five-choice question with a fresh ID.
func NewQuestion() Question {
	return Question{
		ID:             NewID(),
		Choices:        emptyChoices(),
		EnableChoiceE:  true,
		CorrectAnswers: []ChoiceLabel{},
	}
}

func emptyChoices() map[ChoiceLabel]string {
	m := make(map[ChoiceLabel]string, len(allLabels))
	for _, l := range allLabels {
		m[l] = ""
	}
	return m
}

// Choice returns the text of the given choice, or "" when unset.
func (q Question) Choice(l ChoiceLabel) string {
	return q.Choices[l]
}

// EnabledLabels returns the labels rendered for this question.
func (q Question) EnabledLabels() []ChoiceLabel {
	return EnabledLabels(q.EnableChoiceE)
}

// IsCorrect reports whether l is marked as a correct answer.
func (q Question) IsCorrect(l ChoiceLabel) bool {
	for _, c := range q.CorrectAnswers {
		if c == l {
			return true
		}
	}
	return false
}

// ToggleCorrect adds l to the correct answers, or removes it if present.
func (q *Question) ToggleCorrect(l ChoiceLabel) {
	for i, c := range q.CorrectAnswers {
		if c == l {
			q.CorrectAnswers = append(q.CorrectAnswers[:i:i], q.CorrectAnswers[i+1:]...)
			return
		}
	}
	q.CorrectAnswers = append(q.CorrectAnswers, l)
}

// ExplanationVisible reports whether the explanation is painted under the
// given global setting.
func (q Question) ExplanationVisible(global bool) bool {
	return q.Explanation != "" && q.ShowExplanation.Visible(global)
}

// Clone returns a deep copy of q carrying the given ID.
func (q Question) Clone(id string) Question {
	c := q
	c.ID = id
	c.Choices = make(map[ChoiceLabel]string, len(q.Choices))
	for k, v := range q.Choices {
		c.Choices[k] = v
	}
	c.CorrectAnswers = append([]ChoiceLabel{}, q.CorrectAnswers...)
	return c
}

// Validate checks that every choice key and correct answer is a known label
// and that no correct answer is listed twice.
func (q Question) Validate() error {
	var errs []error
	for l := range q.Choices {
		if !l.Valid() {
			errs = append(errs, fmt.Errorf("unknown choice label %q", l))
		}
	}
	seen := make(map[ChoiceLabel]bool)
	for _, l := range q.CorrectAnswers {
		switch {
		case !l.Valid():
			errs = append(errs, fmt.Errorf("unknown correct answer %q", l))
		case seen[l]:
			errs = append(errs, fmt.Errorf("correct answer %s listed twice", l))
		}
		seen[l] = true
	}
	return errors.Join(errs...)
}
