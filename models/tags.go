package models

import "strings"

// TagSeparator joins tags in their persisted form.
const TagSeparator = ","

// EncodeTags joins tags into the single delimited string stored in the
// database. Tags are trimmed and blank ones are dropped, so the encoded form
// decodes back to the same sequence as long as no tag contains a comma.
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}

	return strings.Join(cleaned, TagSeparator)
}

// DecodeTags splits the persisted tag string, trims every segment and drops
// empty ones. The result is never nil.
func DecodeTags(encoded string) []string {
	tags := make([]string, 0)
	if encoded == "" {
		return tags
	}

	for _, segment := range strings.Split(encoded, TagSeparator) {
		if segment = strings.TrimSpace(segment); segment != "" {
			tags = append(tags, segment)
		}
	}

	return tags
}
