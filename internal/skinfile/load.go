package skinfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/ini.v1"
)

var (
	// ErrRead reports that the skin file could not be opened, read or decoded.
	ErrRead = errors.New("read skin file")
	// ErrSyntax reports that the tokenizer rejected the section/key layout.
	ErrSyntax = errors.New("skin file syntax")
)

// Load reads, preprocesses and tokenizes the skin file at path.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes r to UTF-8 and tokenizes it.
func Parse(r io.Reader) (*Document, error) {
	text, err := decode(r)
	if err != nil {
		return nil, err
	}
	return ParseString(text)
}

// ParseString preprocesses and tokenizes raw skin text.
func ParseString(raw string) (*Document, error) {
	file, err := ini.LoadSources(loadOptions(), []byte(Preprocess(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return fromINI(file), nil
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Insensitive:            false,
		InsensitiveSections:    false,
		InsensitiveKeys:        false,
		IgnoreContinuation:     true,
		IgnoreInlineComment:    true,
		AllowNonUniqueSections: true,
		AllowShadows:           false,
	}
}

func fromINI(file *ini.File) *Document {
	doc := &Document{}
	for _, sec := range file.Sections() {
		name := unescape(sec.Name())
		if sec.Name() == ini.DefaultSection {
			if len(sec.Keys()) == 0 {
				continue
			}
			name = DefaultSection
		}
		section := newSection(name)
		for _, key := range sec.Keys() {
			section.set(unescape(key.Name()), unescape(key.Value()))
		}
		doc.sections = append(doc.sections, section)
	}
	return doc
}

// Clean returns the preprocessed form of the file at path, the text handed
// to the tokenizer.
func Clean(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer file.Close()

	text, err := decode(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return Preprocess(text), nil
}

func decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return string(data), nil
}
