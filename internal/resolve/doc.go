// Package resolve provides the value-resolution primitives used to turn loosely
// structured INI key/value text into typed fields.
//
// Every resolver is total: an absent key or a value that fails conversion
// yields the caller's default (or an empty/partial result) instead of an error.
// Scalars, comma lists and 0-indexed families always default. The 1-indexed
// colour family is the single exception and omits unusable entries, so its
// result may be shorter than the requested count.
//
// Resolvers read through the Lookup interface and never mutate it, so one
// section may be resolved any number of times, from any goroutine.
package resolve
