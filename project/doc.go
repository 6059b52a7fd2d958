// Package project reads and writes the exchanged project document.
//
// A project file is a versioned envelope holding the project name, the
// document settings and every lesson:
//
//	{
//	  "version": 1,
//	  "projectName": "Biology Midterm",
//	  "settings": { ... },
//	  "lessons": [ { "id": "...", "title": "...", "mcqs": [ ... ] } ]
//	}
//
// The same envelope can be written as YAML. Decoding is strict: a document
// with another schema version is rejected with [ErrVersionMismatch], and a
// document whose content breaks an invariant (invalid settings, unknown
// choice labels, duplicate IDs) is rejected with [ErrInvalidDocument]. No
// partially valid document is ever returned.
package project
