// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Category is the closed set of asset kinds tracked by the inventory.
type Category string

const (
	CategoryLaptop     Category = "Laptop"
	CategoryLicense    Category = "License"
	CategoryAccessCard Category = "Access Card"
	CategoryMonitor    Category = "Monitor"
	CategoryPhone      Category = "Phone"
)

// Categories lists every valid [Category] in display order.
var Categories = []Category{
	CategoryLaptop,
	CategoryLicense,
	CategoryAccessCard,
	CategoryMonitor,
	CategoryPhone,
}

// ParseCategory converts a wire value into a [Category].
// The identifier form "AccessCard" is accepted as an alias of "Access Card".
func ParseCategory(s string) (Category, bool) {
	if s == "AccessCard" {
		return CategoryAccessCard, true
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c is one of [Categories].
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of an asset.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAllocated Status = "Allocated"
	StatusFaulty    Status = "Faulty"
)

// Statuses lists every valid [Status].
var Statuses = []Status{
	StatusAvailable,
	StatusAllocated,
	StatusFaulty,
}

// ParseStatus converts a wire value into a [Status].
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsValid reports whether s is one of [Statuses].
func (s Status) IsValid() bool {
	_, ok := ParseStatus(string(s))
	return ok
}

// Asset is a single inventoried item as persisted in the "assets" table.
type Asset struct {
	// ID is the generated internal identifier used by update and delete.
	ID int64 `json:"id"`

	// AssetID is the caller-supplied unique business key (e.g. "LAP-001").
	AssetID string `json:"asset_id"`

	Name     string   `json:"name"`
	Category Category `json:"category"`
	Status   Status   `json:"status"`

	// AssignedTo names the person or entity holding the asset.
	// nil means the asset is not assigned.
	AssignedTo *string `json:"assigned_to"`

	// CreatedAt is set by the server on creation and never changes.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// AssetFields is the typed, already parsed write shape shared by create and
// update. Update replaces all of these fields at once.
type AssetFields struct {
	AssetID    string
	Name       string
	Category   Category
	Status     Status
	AssignedTo *string
}

// IsAssigned reports whether AssignedTo carries a non-blank value.
func (f AssetFields) IsAssigned() bool {
	return f.AssignedTo != nil && strings.TrimSpace(*f.AssignedTo) != ""
}

// ToAsset builds an [Asset] from the write fields.
func (f AssetFields) ToAsset(id int64, createdAt time.Time) Asset {
	return Asset{
		ID:         id,
		AssetID:    f.AssetID,
		Name:       f.Name,
		Category:   f.Category,
		Status:     f.Status,
		AssignedTo: f.AssignedTo,
		CreatedAt:  createdAt,
	}
}

// AssetRequest is the raw JSON body accepted by create and update.
// Enum fields stay plain strings here and are parsed by the validators
// package before reaching business logic.
type AssetRequest struct {
	AssetID    string  `json:"asset_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to,omitempty"`
}

// AssetFilter narrows the result of listing assets.
// Zero values mean "no filter".
type AssetFilter struct {
	Category Category
	Status   Status
	Search   string
}

// IsEmpty reports whether no filter criteria are set.
func (f AssetFilter) IsEmpty() bool {
	return f.Category == "" && f.Status == "" && f.Search == ""
}

// ToRequest converts parsed fields back into their wire form.
func (f AssetFields) ToRequest() AssetRequest {
	return AssetRequest{
		AssetID:    f.AssetID,
		Name:       f.Name,
		Category:   string(f.Category),
		Status:     string(f.Status),
		AssignedTo: f.AssignedTo,
	}
}
