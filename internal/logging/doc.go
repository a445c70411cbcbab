// Package logging assembles the structured slog loggers used by skinini.
//
// It owns the console and JSON handlers, maps the [logging] configuration onto
// levels and outputs, and carries the skin path and correlation id through
// context so every record about one resolution pass can be tied together. A
// no-op logger is provided for library callers that do not want output.
package logging
