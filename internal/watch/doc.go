// Package watch reports edits to a single skin file.
//
// The parent directory is watched rather than the file so editors that save
// through a rename keep triggering events. Bursts of events are coalesced into
// one callback after a quiet period.
package watch
