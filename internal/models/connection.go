package models

import "time"

// ConnectionState is the stored two-state lifecycle of a connection row.
type ConnectionState int16

const (
	StatePending  ConnectionState = 0
	StateAccepted ConnectionState = 1
)

// ConnectionStatus is a connection as resolved for a specific viewer.
type ConnectionStatus string

const (
	StatusSelf            ConnectionStatus = "self"
	StatusNotConnected    ConnectionStatus = "not_connected"
	StatusConnected       ConnectionStatus = "connected"
	StatusPendingSent     ConnectionStatus = "pending_sent"
	StatusPendingReceived ConnectionStatus = "pending_received"
)

// Connection stores an unordered pair of users in canonical order
// (connection1_id < connection2_id). The composite primary key is the only
// concurrency safeguard: racing duplicate requests collide on it.
type Connection struct {
	Connection1ID uint64          `gorm:"column:connection1_id;primaryKey" json:"connection1_id"`
	Connection2ID uint64          `gorm:"column:connection2_id;primaryKey" json:"connection2_id"`
	Status        ConnectionState `gorm:"column:status;type:smallint;not null" json:"status"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
}

func (Connection) TableName() string { return "connections" }

func (c *Connection) Pair() UserPair {
	return UserPair{Low: c.Connection1ID, High: c.Connection2ID}
}

// StatusFor resolves the row into the viewer's perspective. For a pending
// row the original requester is recovered by comparing the viewer against
// connection1_id, the position the requester was stored at.
func (c *Connection) StatusFor(viewer uint64) ConnectionStatus {
	switch c.Status {
	case StateAccepted:
		return StatusConnected
	case StatePending:
		if c.Connection1ID == viewer {
			return StatusPendingSent
		}
		return StatusPendingReceived
	default:
		return StatusNotConnected
	}
}

// Peer is an entry of the accepted-connections listing.
type Peer struct {
	UserID   uint64  `gorm:"column:user_id" json:"user_id"`
	Name     string  `gorm:"column:name" json:"name"`
	Headline *string `gorm:"column:headline" json:"headline"`
}

// PeerStatus is an entry of the bulk status listing: every other user in
// the system with the viewer's resolved status against them.
type PeerStatus struct {
	UserID   uint64           `json:"user_id"`
	Name     string           `json:"name"`
	Headline *string          `json:"headline"`
	Status   ConnectionStatus `json:"status"`
}
