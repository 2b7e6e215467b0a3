// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is a named group owned by a user of the identity service.
//
// OwnerID references a user stored by another service, so it is not backed by
// a foreign key; its existence is checked remotely at creation time only.
type Team struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Tag         string      `json:"tag"`
	Description string      `json:"description"`
	OwnerID     uuid.UUID   `json:"ownerId"`
	MemberIDs   []uuid.UUID `json:"memberIds"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Team model.
func (t Team) TableName() string {
	return "teams"
}

// TeamFilter holds list criteria. Name and Tag are case-sensitive substring
// filters and are ignored when empty.
type TeamFilter struct {
	Page     int
	PageSize int
	Name     string
	Tag      string
}

// Offset returns the number of rows to skip for the requested page.
func (f TeamFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// TeamPage is a single page of teams together with the size of the whole
// filtered set.
type TeamPage struct {
	Items      []Team
	TotalCount int
	Page       int
	PageSize   int
}
