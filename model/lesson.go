package model

import "fmt"

// Lesson is an ordered group of questions with a display title.
type Lesson struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"mcqs" yaml:"mcqs"`
}

// NewLesson creates "Lesson n" holding a single blank question.
func NewLesson(n int) Lesson {
	return Lesson{
		ID:        NewID(),
		Title:     fmt.Sprintf("Lesson %d", n),
		Questions: []Question{NewQuestion()},
	}
}

// QuestionIndex returns the position of the question with the given ID, or -1.
func (l Lesson) QuestionIndex(id string) int {
	for i, q := range l.Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the lesson.
func (l Lesson) Clone() Lesson {
	c := l
	c.Questions = make([]Question, len(l.Questions))
	for i, q := range l.Questions {
		c.Questions[i] = q.Clone(q.ID)
	}
	return c
}

// CloneLessons deep-copies a lesson list.
func CloneLessons(lessons []Lesson) []Lesson {
	out := make([]Lesson, len(lessons))
	for i, l := range lessons {
		out[i] = l.Clone()
	}
	return out
}

// QuestionCount returns the total number of questions across lessons.
func QuestionCount(lessons []Lesson) int {
	n := 0
	for _, l := range lessons {
		n += len(l.Questions)
	}
	return n
}
