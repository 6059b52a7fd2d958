package duplicates

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/mcqsheet/model"
)

// Kind classifies how a pair was matched.
type Kind string

const (
	KindExact Kind = "exact"
	KindFuzzy Kind = "fuzzy"
)

// Status is the user's resolution of a pair.
type Status string

const (
	StatusUnresolved  Status = "unresolved"
	StatusKeepBoth    Status = "keep-both"
	StatusMerged      Status = "merged"
	StatusIntentional Status = "intentional"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnresolved, StatusKeepBoth, StatusMerged, StatusIntentional:
		return true
	}
	return false
}

// Highlighted reports whether questions in a pair with this status are
// flagged on the rendered sheet.
func (s Status) Highlighted() bool {
	return s == StatusUnresolved || s == StatusKeepBoth
}

// Pair is two questions found to be duplicates of each other. A precedes B
// in document order.
type Pair struct {
	ID          string  `json:"id"`
	LessonIDA   string  `json:"lessonIdA"`
	QuestionIDA string  `json:"mcqIdA"`
	LessonIDB   string  `json:"lessonIdB"`
	QuestionIDB string  `json:"mcqIdB"`
	Similarity  float64 `json:"similarity"`
	Kind        Kind    `json:"type"`
	Status      Status  `json:"status"`
}

// Involves reports whether the question is one side of the pair.
func (p Pair) Involves(questionID string) bool {
	return p.QuestionIDA == questionID || p.QuestionIDB == questionID
}

// Config holds the detection thresholds.
type Config struct {
	// Threshold is the minimum similarity of a fuzzy pair
	// Default: 0.85
	Threshold float64

	// ChoiceThreshold is the minimum similarity of two choices within one
	// question to be flagged
	// Default: 0.9
	ChoiceThreshold float64

	// MinFingerprintLength is the fingerprint length (in runes) a question
	// must exceed to take part in a fuzzy match
	// Default: 5
	MinFingerprintLength int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Threshold:            0.85,
		ChoiceThreshold:      0.9,
		MinFingerprintLength: 5,
	}
}

// ConfigForSettings returns the default configuration with the document's
// fuzzy threshold.
func ConfigForSettings(s model.Settings) Config {
	c := DefaultConfig()
	c.Threshold = s.FuzzyThreshold
	return c
}

// Fingerprint returns the normalised stem followed by "||" and the
// normalised enabled choices joined by "|".
func Fingerprint(q model.Question) string {
	labels := q.EnabledLabels()
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = Normalize(q.Choice(l))
	}
	return Normalize(q.Stem) + "||" + strings.Join(parts, "|")
}

type entry struct {
	lessonID    string
	questionID  string
	fingerprint string
}

// Detector runs both scans with a fixed configuration.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect compares every unordered pair of questions with the given
// configuration.
func Detect(lessons []model.Lesson, config Config) []Pair {
	return NewDetectorWithConfig(config).Pairs(lessons)
}

// Pairs compares every unordered pair of questions once, in document order.
// Identical fingerprints yield an exact pair; otherwise a token similarity at
// or above the threshold yields a fuzzy pair. Two blank questions share a
// fingerprint and so form an exact pair. Questions marked intentional never
// pair. Every pair starts unresolved.
func (d *Detector) Pairs(lessons []model.Lesson) []Pair {
	var entries []entry
	for _, l := range lessons {
		for _, q := range l.Questions {
			if q.IsDuplicateIntentional {
				continue
			}
			entries = append(entries, entry{
				lessonID:    l.ID,
				questionID:  q.ID,
				fingerprint: Fingerprint(q),
			})
		}
	}

	var pairs []Pair
	for i := 0; i < len(entries); i++ {
		a := entries[i]
		for j := i + 1; j < len(entries); j++ {
			b := entries[j]
			kind, sim, ok := d.match(a.fingerprint, b.fingerprint)
			if !ok {
				continue
			}
			pairs = append(pairs, Pair{
				ID:          PairKey(a.questionID, b.questionID),
				LessonIDA:   a.lessonID,
				QuestionIDA: a.questionID,
				LessonIDB:   b.lessonID,
				QuestionIDB: b.questionID,
				Similarity:  sim,
				Kind:        kind,
				Status:      StatusUnresolved,
			})
		}
	}
	return pairs
}

func (d *Detector) match(a, b string) (Kind, float64, bool) {
	if a == b {
		return KindExact, 1, true
	}
	sim := Jaccard(a, b)
	if sim >= d.config.Threshold && utf8.RuneCountInString(a) > d.config.MinFingerprintLength {
		return KindFuzzy, sim, true
	}
	return "", 0, false
}
