package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastro/licita-pro/pkg/config"
	"github.com/jcastro/licita-pro/pkg/logger"
)

// NewPool crea el pool de conexiones PostgreSQL. Es estado de proceso con ciclo
// de vida init-en-arranque / Close-en-shutdown; los repositorios lo reciben
// inyectado y el resto del código solo ve los puertos de repository.
//
// Concurrencia acotada: MaxConns limita las conexiones simultáneas y
// ConnectTimeout el tiempo de espera por una conexión. Agotar el pool o el
// timeout sale como error de infraestructura (HTTP 500 en el gate), nunca
// como fallo de autenticación.
func NewPool(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	// Log de queries lentas: el wrapper del pool es colaborador, no parte del
	// gate; solo observa y reporta.
	if log != nil {
		poolConfig.ConnConfig.Tracer = newSlowQueryTracer(log.Component("pool"), cfg.SlowQueryAfter)
	}

	// Codec NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones
	// (montos de presupuestos y ofertas).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
