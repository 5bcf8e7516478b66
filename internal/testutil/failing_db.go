package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/sprout/internal/db"
)

// FailingDBTX wraps a DBTX and injects Err into ExecContext calls whose SQL
// contains Match, starting at the FailOn-th matching call (1-based) and for
// every matching call after it. FailOn of zero fails every matching call.
// Queries pass through untouched.
type FailingDBTX struct {
	db.DBTX
	Match  string
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailingDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.Match) {
		n := f.count.Add(1)
		if n >= f.FailOn {
			return nil, f.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FailOnceDBTX fails only the Nth matching ExecContext call.
type FailOnceDBTX struct {
	db.DBTX
	Match string
	N     int32
	Err   error

	count atomic.Int32
}

func (f *FailOnceDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.Match) {
		if f.count.Add(1) == f.N {
			return nil, f.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
