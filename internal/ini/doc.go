// Package ini provides line-level text transforms for php.ini content.
//
// The package is deliberately not an INI parser: it knows nothing about
// sections, types, or value semantics. It operates on the full file text
// as a string and matches individual directive lines with caller-supplied
// regular expressions. Every transform returns a new string and is safe
// to re-apply (commenting already-commented lines or uncommenting
// already-uncommented lines is a no-op).
//
// Patterns match a directive's key at the start of a line, ignoring
// leading whitespace and, where the operation allows it, a leading ';'
// comment marker. Transforms apply to every matching line in the content,
// not just the first; callers that need last-wins value semantics read
// the last match themselves.
package ini
