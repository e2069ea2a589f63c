// Package stat answers statistics requests against a loaded catalogue and
// renders the answers.
//
// Requests are single lines, "Bus NAME" or "Stop NAME". Answers are rendered
// by one of two formatters:
//   - text.go: the classic one-line-per-request text output
//   - json.go: one JSON object per request (newline-delimited)
package stat
