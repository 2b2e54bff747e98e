package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a copy of db whose statements run on tx. A nil tx returns
// db unchanged. The root handle is never touched, so other callers keep
// using the pool after tx ends.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	// A non-nil Context makes Session clone the Statement instead of sharing it.
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	session := db.Session(&gorm.Session{SkipDefaultTransaction: true, Context: ctx})
	session.Statement.ConnPool = tx
	return session
}
