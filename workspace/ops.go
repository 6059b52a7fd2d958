package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/project"
)

// Side names one question of a duplicate pair.
type Side int

const (
	SideA Side = iota
	SideB
)

// SelectLesson makes the lesson active together with its first question.
func (w *Workspace) SelectLesson(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	li, err := w.lessonIndex(id)
	if err != nil {
		return err
	}
	w.activeLesson, w.activeQuestion = id, ""
	if qs := w.lessons[li].Questions; len(qs) > 0 {
		w.activeQuestion = qs[0].ID
	}
	return nil
}

// SelectQuestion makes the question active.
func (w *Workspace) SelectQuestion(lessonID, questionID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, _, err := w.questionIndex(lessonID, questionID); err != nil {
		return err
	}
	w.activeLesson, w.activeQuestion = lessonID, questionID
	return nil
}

// AddLesson appends "Lesson n+1" holding one blank question and makes it
// active. It returns the new lesson's ID.
func (w *Workspace) AddLesson() (string, error) {
	var id string
	err := w.mutate(func() error {
		l := model.NewLesson(len(w.lessons) + 1)
		w.lessons = append(w.lessons, l)
		id = l.ID
		w.activeLesson, w.activeQuestion = l.ID, l.Questions[0].ID
		return nil
	})
	return id, err
}

// RenameLesson changes a lesson's title.
func (w *Workspace) RenameLesson(id, title string) error {
	return w.mutate(func() error {
		li, err := w.lessonIndex(id)
		if err != nil {
			return err
		}
		w.lessons[li].Title = title
		return nil
	})
}

// DeleteLesson removes a lesson and selects the first remaining one.
func (w *Workspace) DeleteLesson(id string) error {
	return w.mutate(func() error {
		li, err := w.lessonIndex(id)
		if err != nil {
			return err
		}
		w.lessons = append(w.lessons[:li], w.lessons[li+1:]...)
		w.activeFirst()
		return nil
	})
}

// ReorderLessons moves the lesson at index from to index to.
func (w *Workspace) ReorderLessons(from, to int) error {
	return w.mutate(func() error {
		return move(w.lessons, from, to)
	})
}

// AddQuestion appends a blank question to the lesson, makes it active and
// returns its ID.
func (w *Workspace) AddQuestion(lessonID string) (string, error) {
	var id string
	err := w.mutate(func() error {
		li, err := w.lessonIndex(lessonID)
		if err != nil {
			return err
		}
		q := model.NewQuestion()
		w.lessons[li].Questions = append(w.lessons[li].Questions, q)
		id = q.ID
		w.activeLesson, w.activeQuestion = lessonID, q.ID
		return nil
	})
	return id, err
}

// UpdateQuestion applies fn to a copy of the question and stores the result
// when it is valid. The question keeps its ID whatever fn does.
func (w *Workspace) UpdateQuestion(lessonID, questionID string, fn func(q *model.Question)) error {
	return w.mutate(func() error {
		li, qi, err := w.questionIndex(lessonID, questionID)
		if err != nil {
			return err
		}
		q := w.lessons[li].Questions[qi].Clone(questionID)
		fn(&q)
		q.ID = questionID
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %s: %w", questionID, err)
		}
		w.lessons[li].Questions[qi] = q
		return nil
	})
}

// DeleteQuestion removes a question from its lesson and selects the
// lesson's first remaining question.
func (w *Workspace) DeleteQuestion(lessonID, questionID string) error {
	return w.mutate(func() error {
		li, qi, err := w.questionIndex(lessonID, questionID)
		if err != nil {
			return err
		}
		w.removeQuestion(li, qi)
		w.activeQuestion = ""
		if qs := w.lessons[li].Questions; len(qs) > 0 {
			w.activeQuestion = qs[0].ID
		}
		return nil
	})
}

// DeleteQuestionByID removes the question wherever it is.
func (w *Workspace) DeleteQuestionByID(questionID string) error {
	return w.mutate(func() error {
		return w.deleteByID(questionID)
	})
}

func (w *Workspace) deleteByID(questionID string) error {
	for li := range w.lessons {
		if qi := w.lessons[li].QuestionIndex(questionID); qi >= 0 {
			w.removeQuestion(li, qi)
			if w.activeQuestion == questionID {
				w.activeQuestion = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
}

func (w *Workspace) removeQuestion(li, qi int) {
	qs := w.lessons[li].Questions
	w.lessons[li].Questions = append(qs[:qi:qi], qs[qi+1:]...)
}

// DuplicateQuestion inserts a copy of the question with a fresh ID right
// after the original, makes it active and returns its ID.
func (w *Workspace) DuplicateQuestion(lessonID, questionID string) (string, error) {
	var id string
	err := w.mutate(func() error {
		li, qi, err := w.questionIndex(lessonID, questionID)
		if err != nil {
			return err
		}
		qs := w.lessons[li].Questions
		c := qs[qi].Clone(model.NewID())
		out := make([]model.Question, 0, len(qs)+1)
		out = append(out, qs[:qi+1]...)
		out = append(out, c)
		out = append(out, qs[qi+1:]...)
		w.lessons[li].Questions = out
		id = c.ID
		w.activeQuestion = c.ID
		return nil
	})
	return id, err
}

// ReorderQuestions moves a question within its lesson.
func (w *Workspace) ReorderQuestions(lessonID string, from, to int) error {
	return w.mutate(func() error {
		li, err := w.lessonIndex(lessonID)
		if err != nil {
			return err
		}
		return move(w.lessons[li].Questions, from, to)
	})
}

// UpdateSettings applies fn to a copy of the settings and stores the result
// when it is valid.
func (w *Workspace) UpdateSettings(fn func(s *model.Settings)) error {
	return w.mutate(func() error {
		s := w.settings
		fn(&s)
		if err := s.Validate(); err != nil {
			return err
		}
		w.settings = s
		return nil
	})
}

// SetPairStatus records the resolution of a duplicate pair. The status is
// kept for as long as the pair keeps being detected.
func (w *Workspace) SetPairStatus(pairID string, status duplicates.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown pair status %q", status)
	}
	return w.mutate(func() error {
		for i := range w.pairs {
			if w.pairs[i].ID == pairID {
				w.pairs[i].Status = status
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrPairNotFound, pairID)
	})
}

// MergePair resolves a pair by keeping one side and deleting the other
// question. It returns the ID of the deleted question.
func (w *Workspace) MergePair(pairID string, keep Side) (string, error) {
	var removed string
	err := w.mutate(func() error {
		p, ok := duplicates.Find(w.pairs, pairID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPairNotFound, pairID)
		}
		removed = p.QuestionIDB
		if keep == SideB {
			removed = p.QuestionIDA
		}
		if err := w.deleteByID(removed); err != nil {
			return err
		}
		for i := range w.pairs {
			if w.pairs[i].ID == pairID {
				w.pairs[i].Status = duplicates.StatusMerged
			}
		}
		return nil
	})
	return removed, err
}

// ApplyImport appends imported lessons and makes the first of them active.
// Every lesson and question gets a fresh ID so an import never collides
// with existing content.
func (w *Workspace) ApplyImport(lessons []model.Lesson) error {
	if len(lessons) == 0 {
		return errors.New("nothing to import")
	}
	return w.mutate(func() error {
		added := make([]model.Lesson, len(lessons))
		for i, l := range lessons {
			if err := validateLesson(l); err != nil {
				return fmt.Errorf("lesson %d: %w", i+1, err)
			}
			c := l.Clone()
			c.ID = model.NewID()
			for qi := range c.Questions {
				c.Questions[qi].ID = model.NewID()
			}
			added[i] = c
		}
		w.lessons = append(w.lessons, added...)
		w.activeLesson, w.activeQuestion = added[0].ID, ""
		if qs := added[0].Questions; len(qs) > 0 {
			w.activeQuestion = qs[0].ID
		}
		return nil
	})
}

func validateLesson(l model.Lesson) error {
	if strings.TrimSpace(l.Title) == "" {
		return errors.New("missing title")
	}
	var errs []error
	for qi, q := range l.Questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %w", qi+1, err))
		}
	}
	return errors.Join(errs...)
}

// Import replaces the whole project with doc. The document must carry the
// current schema version and pass validation; on failure nothing changes.
// Pair resolutions are discarded.
func (w *Workspace) Import(doc *project.Document) error {
	return w.mutate(func() error {
		return w.replace(doc)
	})
}

// Reset restores a fresh project: one blank lesson and default settings.
func (w *Workspace) Reset() {
	_ = w.mutate(func() error {
		w.reset()
		return nil
	})
}
