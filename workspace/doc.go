// Package workspace is the single owner of an editable project: its
// lessons, settings, duplicate findings and pagination plan.
//
// Every mutation recomputes duplicate pairs, choice duplicates and the plan
// before it returns, so readers never see a stale plan. Resolutions of
// duplicate pairs survive recomputation for as long as the pair is still
// detected. When a Saver is configured the project is written after every
// successful mutation.
//
// # Mutations
//
// Edits go through methods such as AddLesson, UpdateQuestion or
// UpdateSettings. A mutation either succeeds completely or leaves the
// workspace untouched:
//
//	ws := workspace.New(workspace.WithSaver(st.Saver(project.StorageKey)))
//	err := ws.UpdateQuestion(lessonID, qID, func(q *model.Question) {
//		q.Stem = "What is 2+2?"
//		q.Choices[model.LabelB] = "4"
//		q.CorrectAnswers = []model.ChoiceLabel{model.LabelB}
//	})
//
// # Duplicate resolutions
//
// SetPairStatus and MergePair record how a detected pair was resolved.
// Pair IDs are derived from the two question IDs, so a resolution sticks to
// the same two questions across later edits and is dropped once the pair is
// no longer detected. Import and Reset discard all resolutions.
//
// # Autosave
//
// With WithSaver, the project is handed to the saver after every successful
// mutation, outside the lock. Saves run one at a time and a snapshot is
// skipped when a newer one has already been written, so the saver always
// ends up holding the latest state. Save failures are logged and do not
// fail the mutation; call Save directly to observe them.
package workspace
