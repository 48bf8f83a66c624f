package model

import "time"

// Broadcast is an in-world message delivered to all connected users
type Broadcast struct {
	ID        int32
	Message   string
	CreatedAt time.Time
}
