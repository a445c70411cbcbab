// Package logs reads the JSON log file written under logging.dir.
//
// Tail returns the last lines with bounded memory and the offset to resume
// from; Follow polls from that offset until the context ends, starting over
// when the file shrinks.
package logs
