package aiimport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tsawler/mcqsheet/model"
)

var (
	// ErrEmptyInput is returned when there is no text to send.
	ErrEmptyInput = errors.New("no text to import")

	// ErrMalformedResponse is returned when the model's reply is not a
	// valid extraction envelope. No lessons are returned with it.
	ErrMalformedResponse = errors.New("malformed extraction response")
)

// Completer sends one system and one user message to a language model and
// returns its reply. *Client implements it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type parsedQuestion struct {
	Stem           string            `json:"stem"`
	Choices        map[string]string `json:"choices"`
	CorrectAnswers []string          `json:"correctAnswers"`
	Explanation    string            `json:"explanation"`
	EnableChoiceE  *bool             `json:"enableChoiceE"`
}

type parsedLesson struct {
	Title     string            `json:"title"`
	Questions *[]parsedQuestion `json:"mcqs"`
}

type envelope struct {
	Lessons *[]parsedLesson `json:"lessons"`
}

var fence = regexp.MustCompile("```(?:json)?")

// Parse decodes a model reply into fresh lessons. Markdown code fences are
// ignored. Unknown keys, a lesson without an mcqs array and trailing data
// are rejected. Every lesson and question gets a new ID, questions start
// with no explanation override and are not marked intentional.
func Parse(raw string) ([]model.Lesson, error) {
	body := strings.TrimSpace(fence.ReplaceAllString(raw, ""))
	if body == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	var env envelope
	dec := json.NewDecoder(strings.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after envelope", ErrMalformedResponse)
	}
	if env.Lessons == nil {
		return nil, fmt.Errorf("%w: missing lessons array", ErrMalformedResponse)
	}

	lessons := make([]model.Lesson, 0, len(*env.Lessons))
	for li, pl := range *env.Lessons {
		if pl.Questions == nil {
			return nil, fmt.Errorf("%w: lesson %d has no mcqs array", ErrMalformedResponse, li+1)
		}
		l := model.Lesson{
			ID:        model.NewID(),
			Title:     strings.TrimSpace(pl.Title),
			Questions: make([]model.Question, 0, len(*pl.Questions)),
		}
		if l.Title == "" {
			l.Title = DefaultLessonTitle
		}
		for qi, pq := range *pl.Questions {
			q, err := convert(pq)
			if err != nil {
				return nil, fmt.Errorf("%w: lesson %d question %d: %w", ErrMalformedResponse, li+1, qi+1, err)
			}
			l.Questions = append(l.Questions, q)
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func convert(pq parsedQuestion) (model.Question, error) {
	q := model.NewQuestion()
	q.Stem = strings.TrimSpace(pq.Stem)
	q.Explanation = strings.TrimSpace(pq.Explanation)

	for k, v := range pq.Choices {
		l, err := model.ParseLabel(k)
		if err != nil {
			return q, err
		}
		q.Choices[l] = strings.TrimSpace(v)
	}

	// Without an explicit flag, a fifth choice is enabled only when it has
	// text.
	if pq.EnableChoiceE != nil {
		q.EnableChoiceE = *pq.EnableChoiceE
	} else {
		q.EnableChoiceE = q.Choices[model.LabelE] != ""
	}
	if !q.EnableChoiceE {
		q.Choices[model.LabelE] = ""
	}

	for _, s := range pq.CorrectAnswers {
		l, err := model.ParseLabel(s)
		if err != nil {
			return q, err
		}
		if l == model.LabelE && !q.EnableChoiceE {
			return q, errors.New("correct answer E on a four-choice question")
		}
		if !q.IsCorrect(l) {
			q.CorrectAnswers = append(q.CorrectAnswers, l)
		}
	}
	return q, nil
}

// Extract asks c to pull lessons out of free text and parses the reply.
func Extract(ctx context.Context, c Completer, text string) ([]model.Lesson, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	raw, err := c.Complete(ctx, SystemPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	return Parse(raw)
}

// Extract pulls lessons out of free text.
func (c *Client) Extract(ctx context.Context, text string) ([]model.Lesson, error) {
	return Extract(ctx, c, text)
}

// Ping checks that the key and model answer at all.
func (c *Client) Ping(ctx context.Context) error {
	reply, err := c.Complete(ctx, pingSystem, pingUser)
	if err != nil {
		return err
	}
	if strings.TrimSpace(reply) == "" {
		return fmt.Errorf("%w: empty reply to ping", ErrMalformedResponse)
	}
	return nil
}

// CleanFormatting asks the model to tidy spacing, numbering and choice
// labels of pasted question text before extraction.
func (c *Client) CleanFormatting(ctx context.Context, text string) (string, error) {
	return ask(ctx, c, cleanSystem, text)
}

// SuggestGrouping asks the model for a short outline of how the pasted
// questions could be split into lessons.
func (c *Client) SuggestGrouping(ctx context.Context, text string) (string, error) {
	return ask(ctx, c, groupingSystem, text)
}

func ask(ctx context.Context, c Completer, system, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	reply, err := c.Complete(ctx, system, text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
