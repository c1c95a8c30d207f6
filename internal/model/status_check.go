package model

import "time"

// StatusCheck records a ping from a client of the API.
// ID and Timestamp are always generated server-side; client-supplied values
// for either are discarded.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
