package mail

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// LogSender logs emails instead of sending them.
// Useful for development and local hosting without an SMTP relay.
type LogSender struct {
	registry *ContentTypeRegistry
}

// NewLogSender creates a log-based sender. registry may be nil.
func NewLogSender(registry *ContentTypeRegistry) *LogSender {
	return &LogSender{registry: registry}
}

// Send logs the message details.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	contentType := msg.ContentType
	if contentType == "" {
		contentType = s.registry.Resolve(ContentTypePlain)
	}

	logx.WithContext(ctx).Infow("EMAIL (dev mode - not actually sent)",
		logx.Field("to", msg.To),
		logx.Field("subject", msg.Subject),
		logx.Field("content_type", contentType),
		logx.Field("body", msg.Body))
	return nil
}
