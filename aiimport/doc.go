// Package aiimport turns pasted or scanned question text into lessons with
// an OpenAI-compatible chat completions endpoint.
//
// The model is asked for a fixed JSON envelope (see [SystemPrompt]). The
// reply is parsed all-or-nothing: any deviation yields
// [ErrMalformedResponse] and no lessons. Parsed lessons carry fresh IDs and
// can be appended to a workspace with ApplyImport.
//
// Requests that fail with 429 or a 5xx status are retried with exponential
// backoff, honouring Retry-After. Other failures surface as [*HTTPError].
package aiimport
