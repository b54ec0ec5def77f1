package element

import (
	"encoding/json"
	"errors"
)

// Type classifies element templates. Unrecognized values are rejected at the
// API boundary.
type Type string

const (
	TypeStatic      Type = "static"
	TypeInteractive Type = "interactive"
	TypeDecorative  Type = "decorative"
	TypePortal      Type = "portal"
)

func (t Type) Valid() bool {
	switch t {
	case TypeStatic, TypeInteractive, TypeDecorative, TypePortal:
		return true
	default:
		return false
	}
}

type Element struct {
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	IsStatic bool   `json:"is_static"`
}

// Template is a reusable element blueprint placed into spaces and maps.
type Template struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Type              Type            `json:"type"`
	ImageURL          string          `json:"image_url"`
	ModelURL          string          `json:"model_url"`
	Width             int             `json:"width"`
	Height            int             `json:"height"`
	IsCollidable      bool            `json:"is_collidable"`
	InteractionData   json.RawMessage `json:"interaction_data"`
	PhysicsProperties json.RawMessage `json:"physics_properties"`
}

// SpaceElement is a template instance placed into a space.
type SpaceElement struct {
	SpaceID          int             `json:"space_id"`
	TemplateID       int             `json:"template_id"`
	X                int             `json:"x"`
	Y                int             `json:"y"`
	ZIndex           int             `json:"z_index"`
	Rotation         int             `json:"rotation"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

// MapElement is a template instance placed into a map; portals carry a
// target space.
type MapElement struct {
	MapID            int             `json:"map_id"`
	TemplateID       int             `json:"template_id"`
	X                int             `json:"x"`
	Y                int             `json:"y"`
	ZIndex           int             `json:"z_index"`
	TargetSpaceID    *int            `json:"target_space_id,omitempty"`
	CustomProperties json.RawMessage `json:"custom_properties"`
}

var ErrNotFound = errors.New("not found")
