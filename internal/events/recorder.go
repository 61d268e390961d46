// Package events keeps the notification audit trail.
package events

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joeblew999/plat-welcome/pkg/notify"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ notify.EventRecorder = (*Recorder)(nil)

// Recorder batches notification event writes using go-zero's BulkInserter.
type Recorder struct {
	inserter *sqlx.BulkInserter
}

// NewRecorder creates a recorder that batches inserts into notification_events.
func NewRecorder(conn sqlx.SqlConn) (*Recorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `notification_events` (`id`, `user_id`, `kind`, `recipient`, `status`, `details`, `created_at`) values (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter notification_events error: %v", err)
		}
	})

	return &Recorder{inserter: inserter}, nil
}

// RecordEvent batches a dispatch outcome.
func (r *Recorder) RecordEvent(userID int64, kind, recipient, status, details string) {
	if err := r.inserter.Insert(
		uuid.New().String(),
		userID,
		kind,
		literal(recipient),
		status,
		literal(details),
		time.Now().UTC().Format(time.DateTime),
	); err != nil {
		logx.Errorf("Failed to record event: %v", err)
	}
}

// literal drops characters that BulkInserter escapes MySQL style, which
// SQLite would read back verbatim or reject.
func literal(s string) string {
	return literalReplacer.Replace(s)
}

var literalReplacer = strings.NewReplacer("'", "", "\\", "/", "\r", " ", "\n", " ", "\"", "", "\x00", "")

// Flush forces all pending events to be written.
func (r *Recorder) Flush() {
	r.inserter.Flush()
}
