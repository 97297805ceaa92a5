package sector

import (
	"hd2api/internal/delta"
	"hd2api/internal/raw"
)

// State groups the planet status rows of one sector. Owner is set only
// while every member shares the same owner.
type State struct {
	delta.Stamp
	Name         string             `json:"name"`
	Sector       string             `json:"sector"`
	PlanetStatus []raw.PlanetStatus `json:"planetStatus"`
	Owner        *int               `json:"owner"`
	OwnerName    string             `json:"ownerName,omitempty"`
}
