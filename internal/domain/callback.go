package domain

import "time"

type CallbackStatus string

const (
	CallbackPending  CallbackStatus = "pending"
	CallbackResolved CallbackStatus = "resolved"
)

// CallbackTicket is a request for a human agent to call the guest back.
// Seq is the process-wide ticket sequence; Reference is its external form
// ("CB-<seq>").
type CallbackTicket struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Seq         int64          `json:"seq" gorm:"uniqueIndex"`
	Reference   string         `json:"reference" gorm:"size:32;uniqueIndex"`
	GuestName   string         `json:"guest_name"`
	Phone       string         `json:"phone"`
	Issue       string         `json:"issue" gorm:"type:text"`
	Status      CallbackStatus `json:"status" gorm:"size:16"`
	RequestedAt time.Time      `json:"requested_at"`
}
