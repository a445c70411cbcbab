package skinfile

// DefaultSection names the implicit section holding keys that appear before
// the first header.
const DefaultSection = ""

// Section is an ordered, case-sensitive key/value store for one INI section.
// A key that repeats keeps its first position and its last value.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *Section {
	return &Section{name: name, values: make(map[string]string)}
}

func (s *Section) set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Name returns the section header without brackets.
func (s *Section) Name() string {
	return s.name
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Keys returns the section's keys in document order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len reports how many distinct keys the section holds.
func (s *Section) Len() int {
	return len(s.keys)
}

// Document is a tokenized skin file.
type Document struct {
	sections []*Section
}

// Sections returns every section in document order, repeats included.
func (d *Document) Sections() []*Section {
	out := make([]*Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Named returns the sections whose header equals name exactly, in document order.
func (d *Document) Named(name string) []*Section {
	var out []*Section
	for _, s := range d.sections {
		if s.name == name {
			out = append(out, s)
		}
	}
	return out
}

// Merged folds every section called name into one view where later
// occurrences override earlier keys. ok is false when no such section exists.
func (d *Document) Merged(name string) (*Section, bool) {
	matches := d.Named(name)
	switch len(matches) {
	case 0:
		return newSection(name), false
	case 1:
		return matches[0], true
	}
	merged := newSection(name)
	for _, s := range matches {
		for _, key := range s.keys {
			merged.set(key, s.values[key])
		}
	}
	return merged, true
}
