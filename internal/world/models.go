package world

import "errors"

type World struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	CreatorID    int    `json:"creator_id"`
	IsPublic     bool   `json:"is_public"`
}

var ErrNotFound = errors.New("not found")
