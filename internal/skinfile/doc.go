// Package skinfile reads skin.ini documents into ordered, read-only sections.
//
// Loading happens in three steps. The raw bytes are decoded to UTF-8 (a UTF-8
// or UTF-16 byte order mark is honoured). Preprocess then drops full-line `//`
// comments and doubles every backslash so Windows paths survive tokenization.
// Finally the text is tokenized with gopkg.in/ini.v1 and the escaped
// backslashes are restored, so values come back exactly as written.
//
// Sections keep document order and repeated section names stay separate,
// which is what per-key-count blocks such as [Mania] rely on. Failures are
// reported as ErrRead or ErrSyntax; individual values are never validated here.
package skinfile
