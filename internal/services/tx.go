package services

import "gorm.io/gorm"

// withTransaction runs fn in a transaction (a savepoint when db already is one).
var withTransaction = func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

// inTransaction reports whether db is bound to an open transaction.
func inTransaction(db *gorm.DB) bool {
	if db == nil || db.Statement == nil {
		return false
	}
	_, ok := db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
