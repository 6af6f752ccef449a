package models

import "time"

// Status ticket: pending -> done. Done bersifat terminal, tidak ada status
// lain (tidak ada cancelled / in-progress).
const (
	TicketPending = "pending"
	TicketDone    = "done"
)

// KitchenTicket adalah rekaman beku dari order yang sudah disubmit.
// Setelah dibuat, hanya field Status yang boleh berubah.
type KitchenTicket struct {
	ID     int64       `json:"id"`
	Table  int         `json:"table"`
	Items  []OrderLine `json:"items"`
	Time   time.Time   `json:"time"`
	Status string      `json:"status"`
}
