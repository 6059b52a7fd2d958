// Package duplicates finds repeated questions and repeated choices.
//
// Two independent scans run over a snapshot of lessons:
//
//   - [Detect] compares every unordered pair of questions by a normalised
//     fingerprint (stem plus enabled choices) and reports exact and fuzzy
//     [Pair]s. Questions marked as intentional duplicates are skipped.
//   - [DetectChoices] compares the enabled choices within each question and
//     reports the labels whose text is near-identical.
//
// Both scans are pure functions of their input. Their output only decorates
// the rendered sheet; it never affects pagination.
//
// # Normalisation
//
// Text is put in canonical form before comparison: Unicode NFC with
// diacritics removed, lower-cased, everything other than letters, digits,
// underscores and whitespace dropped, and whitespace collapsed to single
// spaces. Similarity is the Jaccard index of the whitespace-separated
// token sets.
//
// # Stable Identities
//
// A pair is keyed by its two question IDs ([PairKey]), so rescanning the
// same content yields the same pair IDs. [Reconcile] carries resolution
// statuses from a previous scan onto a new one:
//
//	pairs := duplicates.Detect(lessons, cfg)
//	pairs = duplicates.Reconcile(previous, pairs)
//	flagged := duplicates.Flagged(pairs)
package duplicates
