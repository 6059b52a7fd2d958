package model

// Index resolves the identifiers carried by layout blocks and duplicate pairs
// back to the entities of one snapshot.
type Index struct {
	lessons   map[string]*Lesson
	questions map[string]*Question
	owner     map[string]string
	ordinal   map[string]int
}

// NewIndex builds a lookup table over lessons. The index points into the
// given slice; rebuild it whenever the snapshot changes.
func NewIndex(lessons []Lesson) *Index {
	idx := &Index{
		lessons:   make(map[string]*Lesson, len(lessons)),
		questions: make(map[string]*Question),
		owner:     make(map[string]string),
		ordinal:   make(map[string]int),
	}
	for i := range lessons {
		l := &lessons[i]
		idx.lessons[l.ID] = l
		for j := range l.Questions {
			q := &l.Questions[j]
			idx.questions[q.ID] = q
			idx.owner[q.ID] = l.ID
			idx.ordinal[q.ID] = j + 1
		}
	}
	return idx
}

// Lesson returns the lesson with the given ID.
func (idx *Index) Lesson(id string) (*Lesson, bool) {
	l, ok := idx.lessons[id]
	return l, ok
}

// Question returns the question with the given ID.
func (idx *Index) Question(id string) (*Question, bool) {
	q, ok := idx.questions[id]
	return q, ok
}

// LessonOf returns the ID of the lesson owning the question.
func (idx *Index) LessonOf(questionID string) (string, bool) {
	id, ok := idx.owner[questionID]
	return id, ok
}

// Ordinal returns the 1-based position of the question in its lesson.
func (idx *Index) Ordinal(questionID string) int {
	return idx.ordinal[questionID]
}
