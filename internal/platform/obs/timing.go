package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const requestIDKey ctxKey = "req_id"

// WithRequestID tags a context with the request id logged by Time.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Time logs the duration of one named operation, and its error when the
// operation fails. Use as: defer obs.Time(ctx, "op")(&err).
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(requestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
