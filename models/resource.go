// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Resource is the single entity managed by the service.
//
// Tags are kept as an ordered slice in memory and on the wire; the store
// persists them as one comma-joined column (see [EncodeTags] / [DecodeTags]).
type Resource struct {
	// ID is the database-generated primary key. It never changes.
	ID int64 `json:"id"`

	// Name is the required, non-empty display name.
	Name string `json:"name"`

	// Description is optional free text. Rendered as JSON null when unset.
	Description *string `json:"description"`

	// Tags is the ordered list of labels attached to the resource.
	// Always rendered as an array, never null.
	Tags []string `json:"tags"`

	// CreatedAt is assigned once at creation and is the listing sort key.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Resource model.
func (r Resource) TableName() string {
	return "resources"
}

// ResourceCreate carries the validated fields of a create request.
type ResourceCreate struct {
	Name        string
	Description *string
	Tags        []string
}

// ResourceUpdate represents a partial update of a single resource.
// Only non-nil fields are written (explicit optional-per-field merge).
type ResourceUpdate struct {
	// ID is the identifier of the record to update. Required.
	ID int64

	// Name replaces the current name when non-nil.
	Name *string

	// Description replaces the current description when non-nil.
	Description *string

	// Tags replaces the whole tag list when non-nil. A non-nil pointer to an
	// empty slice clears the tags.
	Tags *[]string
}

// IsEmpty reports whether the update carries no fields to change.
func (u ResourceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Tags == nil
}

// Pagination bounds applied to list requests.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListQuery holds the filter and pagination parameters of a list request.
type ListQuery struct {
	// Query is a case-insensitive substring matched against name OR description.
	Query string

	// Tag restricts results to resources carrying this tag (case-insensitive).
	Tag string

	// Limit is the page size, already clamped to [MaxListLimit].
	Limit int

	// Offset is the number of matching rows to skip.
	Offset int
}

// ClampLimit returns limit bounded to [0, MaxListLimit].
func ClampLimit(limit int) int {
	if limit > MaxListLimit {
		return MaxListLimit
	}
	if limit < 0 {
		return 0
	}
	return limit
}

// ResourcePage is one page of a list request together with the total number
// of matching rows, ignoring pagination.
type ResourcePage struct {
	Total  int64      `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Items  []Resource `json:"items"`
}
