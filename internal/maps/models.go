package maps

import "errors"

type Map struct {
	ID            int    `json:"id"`
	WorldID       int    `json:"world_id"`
	Name          string `json:"name"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BackgroundURL string `json:"background_url"`
}

var ErrNotFound = errors.New("not found")
