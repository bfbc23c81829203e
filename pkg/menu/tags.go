package menu

import "strings"

// Tags and prep workouts are stored as comma-joined strings but behave as
// de-duplicated, order-preserving sets on the way in and out.

// ParseTagSet splits a comma-joined string into its set form, trimming
// whitespace and dropping blanks and later duplicates.
func ParseTagSet(joined string) []string {
	if joined == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(joined, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func JoinTagSet(tags []string) string {
	return strings.Join(tags, ",")
}

// AddTag appends a tag to the joined set. Blank tags and exact (case
// sensitive) duplicates leave the set unchanged.
func AddTag(joined, tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return JoinTagSet(ParseTagSet(joined))
	}
	tags := ParseTagSet(joined)
	for _, existing := range tags {
		if existing == tag {
			return JoinTagSet(tags)
		}
	}
	return JoinTagSet(append(tags, tag))
}

// RemoveTag removes the tag at the given position. Out-of-range positions
// leave the set unchanged.
func RemoveTag(joined string, index int) string {
	tags := ParseTagSet(joined)
	if index < 0 || index >= len(tags) {
		return JoinTagSet(tags)
	}
	return JoinTagSet(append(tags[:index], tags[index+1:]...))
}
