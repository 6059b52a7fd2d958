// Package model defines the authoring data of an MCQ exam sheet: lessons,
// questions and the document-wide settings.
//
// These are the snapshot types every other package consumes. The layout
// engine and the duplicate detector take them by value and never mutate them;
// the workspace package owns mutation.
//
// # Questions
//
// A [Question] has a stem, a fixed set of five choice slots ([ChoiceLabel]
// A to E, with E optionally disabled), the set of correct labels, an
// explanation and a tri-state [ExplanationMode]:
//
//	q := model.NewQuestion()
//	q.Stem = "What is 2+2?"
//	q.Choices[model.LabelB] = "4"
//	q.CorrectAnswers = []model.ChoiceLabel{model.LabelB}
//
// # Settings
//
// [Settings] carries typography, density, margins, the column gap and the
// duplicate-detection threshold. [DefaultSettings] mirrors the defaults of a
// fresh project and [Settings.Validate] enforces the positive-size and
// threshold-range invariants.
//
// # Lookup
//
// Layout blocks refer to lessons and questions by identifier only. Renderers
// resolve those identifiers through an [Index] built from the same snapshot.
package model
