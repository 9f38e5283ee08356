package database

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
)

// DB 是 store.Postgres 與 /api/ping 依賴的最小 pgx 介面，*pgxpool.Pool 直接實作
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// FakeDB 測試用；未設定的查詢方法被呼叫時 panic。
// 每次 Query/QueryRow 的 SQL 依序記錄在 Statements。
type FakeDB struct {
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()

	mu         sync.Mutex
	Statements []string
}

var _ DB = (*FakeDB)(nil)

func (f *FakeDB) record(sql string) {
	f.mu.Lock()
	f.Statements = append(f.Statements, sql)
	f.mu.Unlock()
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql)
	if f.QueryFn == nil {
		panic("unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.record(sql)
	if f.QueryRowFn == nil {
		panic("unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("unexpected Ping")
	}
	return f.PingFn(ctx)
}

// Close 未設定時為 no-op
func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
