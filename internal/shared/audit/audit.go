package audit

import (
	"context"
	"time"

	"hr-dashboard/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	ActionLeaveApproved  = "LEAVE_APPROVED"
	ActionLeaveRejected  = "LEAVE_REJECTED"
	ActionServerShutdown = "SERVER_SHUTDOWN"
)

type Entry struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

// Logger records audit entries. Implementations must not block the caller.
type Logger interface {
	Log(ctx context.Context, entry Entry)
}

// ZapLogger writes audit entries as structured log lines on the "audit" logger.
type ZapLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapLogger(logger ...*zap.Logger) *ZapLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapLogger{logger: l, now: time.Now}
}

// Log falls back to the actor id in ctx when entry has none.
func (l *ZapLogger) Log(ctx context.Context, entry Entry) {
	md := contextutil.ExtractMetadata(ctx)
	actorID := entry.ActorID
	if actorID == "" {
		actorID = md.ActorID
	}

	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("request_id", md.RequestID),
		zap.String("action", entry.Action),
		zap.String("actor_id", actorID),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
