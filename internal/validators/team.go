// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"

	"github.com/MKhiriev/go-scrims/models"
)

// Field name constants used to restrict validation of team input.
const (
	FieldTeamName = "team_name"
	FieldTeamTag  = "team_tag"
	FieldPage     = "page"
	FieldPageSize = "page_size"
)

const (
	MinTeamNameLength = 6
	MaxTeamNameLength = 60
	TeamTagLength     = 3
	MaxPageSize       = 100
)

// TeamValidator implements the Validator interface for [models.Team],
// [models.CreateTeamRequest] and [models.TeamFilter].
type TeamValidator struct {
}

func NewTeamValidator() Validator {
	return &TeamValidator{}
}

func (v *TeamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Team:
		return v.validateTeam(value.Name, value.Tag, fields...)
	case *models.Team:
		return v.validateTeam(value.Name, value.Tag, fields...)

	case models.CreateTeamRequest:
		return v.validateTeam(value.Name, value.Tag, fields...)
	case *models.CreateTeamRequest:
		return v.validateTeam(value.Name, value.Tag, fields...)

	case models.TeamFilter:
		return v.validateTeamFilter(value, fields...)
	case *models.TeamFilter:
		return v.validateTeamFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TeamValidator) validateTeam(name, tag string, fields ...string) error {
	for _, f := range defaultFields(fields, FieldTeamName, FieldTeamTag) {
		switch f {
		case FieldTeamName:
			if !lengthBetween(name, MinTeamNameLength, MaxTeamNameLength) {
				return ErrInvalidTeamName
			}
		case FieldTeamTag:
			if charCount(tag) != TeamTagLength {
				return ErrInvalidTeamTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TeamValidator) validateTeamFilter(filter models.TeamFilter, fields ...string) error {
	for _, f := range defaultFields(fields, FieldPage, FieldPageSize) {
		switch f {
		case FieldPage:
			if filter.Page < 1 {
				return ErrInvalidPage
			}
			// the page offset must fit in an int
			if filter.PageSize > 0 && filter.Page > math.MaxInt/filter.PageSize {
				return ErrInvalidPage
			}
		case FieldPageSize:
			if filter.PageSize < 1 || filter.PageSize > MaxPageSize {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
