package kbs

import (
	"context"
	"database/sql"
)

// SQLiteKnowledgeBase resolves priority weights from the priority_weights
// table db.Migrate seeds, so an operator can retune High/Medium/Low
// weights without a binary redeploy.
type SQLiteKnowledgeBase struct {
	db *sql.DB
}

func NewSQLiteKnowledgeBase(db *sql.DB) *SQLiteKnowledgeBase {
	return &SQLiteKnowledgeBase{db: db}
}

func (s *SQLiteKnowledgeBase) PriorityWeight(level string) (int, bool) {
	var weight int
	err := s.db.QueryRowContext(context.Background(),
		`SELECT weight FROM priority_weights WHERE level = ?`, level,
	).Scan(&weight)
	if err != nil {
		return 0, false
	}
	return weight, true
}
