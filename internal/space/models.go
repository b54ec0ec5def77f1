package space

import "errors"

// DefaultMaxOccupancy caps concurrent presence in a space when the creator
// does not set one.
const DefaultMaxOccupancy = 50

type Space struct {
	ID           int    `json:"id"`
	MapID        *int   `json:"map_id,omitempty"`
	Name         string `json:"name"`
	Width        int    `json:"width"`
	Height       *int   `json:"height,omitempty"`
	CreatedBy    int    `json:"created_by"`
	MaxOccupancy int    `json:"max_occupancy"`
}

// CreatePayload is the validated envelope for space creation. The validation
// middleware and the create handler share this exact shape; there is no
// parallel handler-side schema.
type CreatePayload struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height *int   `json:"height,omitempty"`
	MapID  *int   `json:"map_id,omitempty"`
}

// Dimension bounds for spaces; violations reject the request before the
// handler runs.
const (
	MinDimension = 100
	MaxDimension = 1000
)

var ErrNotFound = errors.New("not found")
