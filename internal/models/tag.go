package models

import "strings"

// TagIDPrefix derives the synthetic tag identifier from its raw value.
// There is no tag table: two clients share a tag only by value equality,
// and renaming a tag changes its identifier for future requests.
const TagIDPrefix = "tag-"

// Tag is a synthetic view over the string values inside Client.Tags.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// TagID builds the derived identifier for a raw tag value.
func TagID(value string) string {
	return TagIDPrefix + value
}

// TagValueFromID strips the fixed prefix from a tag identifier.
func TagValueFromID(id string) string {
	return strings.TrimPrefix(id, TagIDPrefix)
}
