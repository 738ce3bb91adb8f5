package services

import (
	"encoding/json"
	"log"
	"time"
)

// OperationEvent is one structured line describing a ledger write.
type OperationEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Operation   string    `json:"operation"`
	EntryID     string    `json:"entry_id,omitempty"`
	AccountName string    `json:"account_name,omitempty"`
	Period      string    `json:"period,omitempty"`
	Status      string    `json:"status"`
	Details     any       `json:"details,omitempty"`
}

// OperationLogger writes JSON operation lines to a *log.Logger. The zero value
// and a nil *OperationLogger both discard.
type OperationLogger struct {
	logger *log.Logger
	now    func() time.Time
}

func NewOperationLogger(logger *log.Logger) *OperationLogger {
	return &OperationLogger{logger: logger, now: time.Now}
}

func (o *OperationLogger) LogSuccess(operation, entryID, accountName, period string) {
	o.log(OperationEvent{
		Operation:   operation,
		EntryID:     entryID,
		AccountName: accountName,
		Period:      period,
		Status:      "SUCCESS",
	})
}

func (o *OperationLogger) LogFailure(operation, entryID, accountName, period string, err error) {
	o.log(OperationEvent{
		Operation:   operation,
		EntryID:     entryID,
		AccountName: accountName,
		Period:      period,
		Status:      "FAILED",
		Details:     map[string]string{"error": err.Error()},
	})
}

func (o *OperationLogger) log(event OperationEvent) {
	if o == nil || o.logger == nil {
		return
	}
	event.Timestamp = time.Now()
	if o.now != nil {
		event.Timestamp = o.now()
	}
	data, _ := json.Marshal(event)
	o.logger.Printf("LEDGER: %s", string(data))
}
