package domain

import "time"

// Well-known metadata keys. Sources may set any keys they like;
// these are the ones the core's filters and accessors recognise.
const (
	// MetaSource is the origin identifier (e.g. "docs", "wiki").
	MetaSource = "source"

	// MetaPath is the original location within the source.
	MetaPath = "path"

	// MetaLanguage is the content language (e.g. "go", "en").
	MetaLanguage = "language"

	// MetaVersion is an opaque version string.
	MetaVersion = "version"

	// MetaTags is a set of tag strings.
	MetaTags = "tags"

	// MetaCreatedAt is when the document was created.
	MetaCreatedAt = "createdAt"

	// MetaUpdatedAt is when the document was last updated.
	MetaUpdatedAt = "updatedAt"
)

// Metadata is an open mapping of string keys to values.
// It is shared by reference from Document into each derived Chunk,
// so the core treats it as copy-on-write: Clone before annotating.
type Metadata map[string]any

// Clone creates a shallow copy of the metadata.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	dst := make(Metadata, len(m))
	for k, v := range m {
		dst[k] = v
	}
	return dst
}

// Source returns the source field, or "" if unset.
func (m Metadata) Source() string {
	return m.str(MetaSource)
}

// Path returns the path field, or "" if unset.
func (m Metadata) Path() string {
	return m.str(MetaPath)
}

// Language returns the language field, or "" if unset.
func (m Metadata) Language() string {
	return m.str(MetaLanguage)
}

// Version returns the version field, or "" if unset.
func (m Metadata) Version() string {
	return m.str(MetaVersion)
}

// Tags returns the tag set, or nil if unset.
// Handles []string directly and []any as produced by TOML/JSON decoding.
func (m Metadata) Tags() []string {
	if m == nil {
		return nil
	}
	switch v := m[MetaTags].(type) {
	case []string:
		return v
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	default:
		return nil
	}
}

// HasTag returns true if the tag set contains the given tag.
func (m Metadata) HasTag(tag string) bool {
	for _, t := range m.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// CreatedAt returns the creation timestamp, or the zero time if unset.
func (m Metadata) CreatedAt() time.Time {
	return m.timestamp(MetaCreatedAt)
}

// UpdatedAt returns the last-update timestamp, or the zero time if unset.
func (m Metadata) UpdatedAt() time.Time {
	return m.timestamp(MetaUpdatedAt)
}

// str extracts a string value, returning "" for missing or non-string values.
func (m Metadata) str(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// timestamp extracts a time value, accepting time.Time or RFC3339 strings.
func (m Metadata) timestamp(key string) time.Time {
	if m == nil {
		return time.Time{}
	}
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}
