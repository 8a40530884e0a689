package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/licita-pro/pkg/logger"
)

type ctxKeyQueryStart struct{}

// slowQueryTracer implementa pgx.QueryTracer y registra en WARN toda query que
// supere el umbral configurado. Errores de query se registran siempre.
type slowQueryTracer struct {
	log       *logger.Logger
	threshold time.Duration
}

func newSlowQueryTracer(log *logger.Logger, threshold time.Duration) *slowQueryTracer {
	if threshold <= 0 {
		threshold = 200 * time.Millisecond
	}
	return &slowQueryTracer{log: log, threshold: threshold}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, ctxKeyQueryStart{}, time.Now())
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(ctxKeyQueryStart{}).(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)

	if data.Err != nil {
		t.log.Error().Err(data.Err).Dur("elapsed", elapsed).Msg("query con error")
		return
	}
	if elapsed >= t.threshold {
		t.log.Warn().Dur("elapsed", elapsed).Dur("threshold", t.threshold).Msg("query lenta")
	}
}
