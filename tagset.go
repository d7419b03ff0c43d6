package postag

import "sort"

// TagID is the dense index of a tag in a TagSet.
type TagID int

// A TagSet maps part-of-speech tags to dense integer ids.
//
// Ids are assigned in sorted tag order, so the same set of
// tags always yields the same ids. This makes everything
// downstream of a TagSet, including decoding tie-breaks,
// reproducible.
type TagSet struct {
	names []string
	ids   map[string]TagID
}

// NewTagSet creates a TagSet from a list of tags.
// Duplicates are collapsed.
func NewTagSet(tags []string) *TagSet {
	ids := map[string]TagID{}
	for _, tag := range tags {
		ids[tag] = 0
	}
	names := make([]string, 0, len(ids))
	for tag := range ids {
		names = append(names, tag)
	}
	sort.Strings(names)
	for i, tag := range names {
		ids[tag] = TagID(i)
	}
	return &TagSet{names: names, ids: ids}
}

// Len returns the number of tags.
func (t *TagSet) Len() int {
	return len(t.names)
}

// ID looks up the id of a tag.
// The second return value is false if the tag is not in the
// set.
func (t *TagSet) ID(tag string) (TagID, bool) {
	id, ok := t.ids[tag]
	return id, ok
}

// Name returns the tag with the given id.
func (t *TagSet) Name(id TagID) string {
	return t.names[id]
}

// Names returns all tags in id order.
// The caller may not modify the result.
func (t *TagSet) Names() []string {
	return t.names
}
