// Package parser turns a document into a models.ObjectValue tree by
// recursive descent over the document's code points.
//
// The grammar is JSON-like with a few deliberate differences:
//
//   - The root must be an object. Arrays, strings and scalars are only
//     accepted nested inside it.
//   - Strings are taken verbatim. Backslash escapes are not interpreted: a
//     backslash is kept as-is, and \" ends the string at the quote.
//   - Only space and newline count as whitespace unless
//     Options.ExtendedWhitespace also enables tab and carriage return.
//   - Numbers are lexed greedily from digits, '.', '-', 'e' and 'E', then
//     read as int64 when possible and as float64 otherwise.
//
// Parsing stops at the first error, which is always a *errors.ParseError.
package parser
