// Package skin turns a tokenized skin file into typed records.
//
// ResolveMania produces one Mania record per usable [Mania] section, in the
// order the sections appear. A section is usable when its Keys value is a
// positive integer no larger than MaxKeyCount; the key count then fixes the
// length of every per-column list in that record. Resolve additionally folds
// the singular [General], [Colours], [Fonts] and [CatchTheBeat] sections into
// a Skin.
//
// Resolution never fails. Fields that are absent or hold unusable values take
// their documented defaults, except the per-column colour lists, which simply
// omit such entries.
package skin
