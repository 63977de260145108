package dbx

import (
	"database/sql"
	"testing"
)

// Compile-time checks that both handle types satisfy DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

func TestDBTXSatisfiedByStdHandles(t *testing.T) {
	// The var block above is the real assertion; this test only keeps the
	// package from reporting zero tests.
	var db *sql.DB
	var i DBTX = db
	if i == nil {
		t.Fatal("nil interface from typed nil, want non-nil")
	}
}
