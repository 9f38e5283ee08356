package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 以下變數在測試中替換
var (
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
	pingPool             = func(ctx context.Context, p *pgxpool.Pool) error { return p.Ping(ctx) }
)

const connectTimeout = 5 * time.Second

// NewPgxPool 建立 pgx 連線池並確認可連線；連不上時關閉連線池並回傳錯誤
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	pctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pingPool(pctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}
