package workspace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/internal/logger"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/project"
	"github.com/tsawler/mcqsheet/render"
)

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrPairNotFound     = errors.New("duplicate pair not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNoSaver          = errors.New("no saver configured")
)

// Saver persists project snapshots. *store.KeyedSaver implements it.
type Saver interface {
	Save(doc *project.Document) error
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithSaver enables autosave.
func WithSaver(s Saver) Option {
	return func(w *Workspace) { w.saver = s }
}

// WithLogger sets the logger used to report autosave failures.
func WithLogger(l *logger.Logger) Option {
	return func(w *Workspace) { w.log = logger.OrNop(l) }
}

// WithEngine replaces the default layout engine.
func WithEngine(e *layout.Engine) Option {
	return func(w *Workspace) { w.engine = e }
}

// Workspace is safe for concurrent use.
type Workspace struct {
	mu sync.RWMutex

	lessons  []model.Lesson
	settings model.Settings
	pairs    []duplicates.Pair
	choices  []duplicates.ChoiceDuplicate
	plan     *layout.Plan

	activeLesson   string
	activeQuestion string

	// gen counts successful mutations. Saves run one at a time under
	// saveMu and never write a snapshot older than savedGen.
	gen      uint64
	saveMu   sync.Mutex
	savedGen uint64

	engine *layout.Engine
	saver  Saver
	log    *logger.Logger
}

// New creates a workspace holding one blank lesson and default settings.
// Nothing is saved until the first mutation.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		engine: layout.NewEngine(),
		log:    logger.NewNop(),
	}
	for _, o := range opts {
		o(w)
	}
	w.reset()
	w.recompute()
	return w
}

// FromDocument creates a workspace from a validated document.
func FromDocument(doc *project.Document, opts ...Option) (*Workspace, error) {
	w := New(opts...)
	if err := w.replace(doc); err != nil {
		return nil, err
	}
	w.recompute()
	return w, nil
}

// reset installs one blank lesson and default settings.
func (w *Workspace) reset() {
	l := model.NewLesson(1)
	w.lessons = []model.Lesson{l}
	w.settings = model.DefaultSettings()
	w.pairs = nil
	w.activeLesson, w.activeQuestion = l.ID, l.Questions[0].ID
}

// replace installs a copy of doc's content after validating it.
func (w *Workspace) replace(doc *project.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	w.lessons = model.CloneLessons(doc.Lessons)
	w.settings = doc.Settings
	w.pairs = nil
	w.activeFirst()
	return nil
}

// activeFirst selects the first lesson and its first question.
func (w *Workspace) activeFirst() {
	w.activeLesson, w.activeQuestion = "", ""
	if len(w.lessons) > 0 {
		w.activeLesson = w.lessons[0].ID
		if qs := w.lessons[0].Questions; len(qs) > 0 {
			w.activeQuestion = qs[0].ID
		}
	}
}

// recompute refreshes every derived value. Callers hold the write lock.
func (w *Workspace) recompute() {
	cfg := duplicates.ConfigForSettings(w.settings)
	det := duplicates.NewDetectorWithConfig(cfg)
	w.pairs = duplicates.Reconcile(w.pairs, det.Pairs(w.lessons))
	w.choices = det.Choices(w.lessons)
	w.plan = w.engine.Compute(w.lessons, w.settings)
}

// mutate runs fn under the write lock and, when it succeeds, recomputes
// and autosaves.
func (w *Workspace) mutate(fn func() error) error {
	w.mu.Lock()
	if err := fn(); err != nil {
		w.mu.Unlock()
		return err
	}
	w.recompute()
	w.gen++
	gen := w.gen
	var doc *project.Document
	if w.saver != nil {
		doc = w.document()
	}
	w.mu.Unlock()

	if doc != nil {
		if err := w.persist(gen, doc); err != nil {
			w.log.Warn("autosave failed", "error", err.Error(), "generation", gen)
		}
	}
	return nil
}

// persist writes doc, taken at generation gen, unless a newer snapshot has
// already been written.
func (w *Workspace) persist(gen uint64, doc *project.Document) error {
	w.saveMu.Lock()
	defer w.saveMu.Unlock()
	if gen < w.savedGen {
		return nil
	}
	w.savedGen = gen
	return w.saver.Save(doc)
}

func (w *Workspace) document() *project.Document {
	return project.New(w.settings, model.CloneLessons(w.lessons))
}

func (w *Workspace) lessonIndex(id string) (int, error) {
	for i := range w.lessons {
		if w.lessons[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrLessonNotFound, id)
}

func (w *Workspace) questionIndex(lessonID, questionID string) (int, int, error) {
	li, err := w.lessonIndex(lessonID)
	if err != nil {
		return -1, -1, err
	}
	qi := w.lessons[li].QuestionIndex(questionID)
	if qi < 0 {
		return -1, -1, fmt.Errorf("%w: %s in lesson %s", ErrQuestionNotFound, questionID, lessonID)
	}
	return li, qi, nil
}

// move relocates s[from] to position to, shifting the elements between.
func move[T any](s []T, from, to int) error {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return fmt.Errorf("%w: move %d to %d in %d items", ErrIndexOutOfRange, from, to, len(s))
	}
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
	return nil
}

// Save writes the current project through the configured saver.
func (w *Workspace) Save() error {
	if w.saver == nil {
		return ErrNoSaver
	}
	w.mu.RLock()
	gen, doc := w.gen, w.document()
	w.mu.RUnlock()
	return w.persist(gen, doc)
}

// Reads

// Lessons returns a deep copy of the lessons.
func (w *Workspace) Lessons() []model.Lesson {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return model.CloneLessons(w.lessons)
}

// Settings returns the current settings.
func (w *Workspace) Settings() model.Settings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.settings
}

// Pairs returns the detected duplicate pairs with their resolutions.
func (w *Workspace) Pairs() []duplicates.Pair {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]duplicates.Pair(nil), w.pairs...)
}

// ChoiceDuplicates returns the near-identical choices per question.
func (w *Workspace) ChoiceDuplicates() []duplicates.ChoiceDuplicate {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]duplicates.ChoiceDuplicate(nil), w.choices...)
}

// Plan returns the current pagination. The plan is replaced, never
// modified, by later mutations.
func (w *Workspace) Plan() *layout.Plan {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.plan
}

// Active returns the selected lesson and question IDs ("" when none).
func (w *Workspace) Active() (lessonID, questionID string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.activeLesson, w.activeQuestion
}

// Render returns the plan together with a render context built from the
// same snapshot.
func (w *Workspace) Render() (*layout.Plan, *render.Context) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ctx := render.NewContext(model.CloneLessons(w.lessons), w.settings, w.pairs, w.choices)
	return w.plan, ctx
}

// Export returns the project as a versioned document.
func (w *Workspace) Export() *project.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.document()
}
