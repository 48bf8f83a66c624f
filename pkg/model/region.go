package model

import "time"

// Region is one simulated area hosted by the grid
type Region struct {
	ID        int32
	Name      string
	Avatars   int
	Archive   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
