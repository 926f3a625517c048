package events

import (
	"encoding/json"
	"time"
)

const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
)

// LedgerChangeMessage announces that the transaction blob changed. It only
// carries the operation and transaction id; consumers re-read the blob from
// storage, the same way the sync worker does.
type LedgerChangeMessage struct {
	Op        string    `json:"op"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerChangeMessage(op string, id int64) *LedgerChangeMessage {
	return &LedgerChangeMessage{
		Op:        op,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *LedgerChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerChangeMessageFromJSON(data []byte) (*LedgerChangeMessage, error) {
	var msg LedgerChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
