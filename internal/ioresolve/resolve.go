// Package ioresolve resolves referenced entities (campuses, knowledge
// areas, people, sponsors) during an import run. Every resolver follows
// the same get-or-create protocol: look up, create on miss inside a
// savepoint, and on a uniqueness conflict re-fetch the winner exactly
// once. A second conflict is a hard error.
package ioresolve

import (
	"errors"

	"gorm.io/gorm"
)

// findOne runs a lookup and reports whether a record matched.
func findOne[T any](tx *gorm.DB, query string, args ...any) (*T, bool, error) {
	var rec T
	err := tx.Where(query, args...).First(&rec).Error
	if err == nil {
		return &rec, true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	return nil, false, err
}

// getOrCreate implements the shared resolution protocol. The create
// step runs in a nested transaction so a conflicting insert rolls back
// to a savepoint without poisoning the row transaction.
func getOrCreate[T any](
	tx *gorm.DB,
	kind, key string,
	find func() (*T, bool, error),
	create func(stx *gorm.DB) (*T, error),
) (*T, error) {
	rec, ok, err := find()
	if err != nil {
		return nil, lookupError(kind, key, err)
	}
	if ok {
		return rec, nil
	}

	var created *T
	err = tx.Transaction(func(stx *gorm.DB) error {
		var cErr error
		created, cErr = create(stx)
		return cErr
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, createError(kind, key, err)
	}

	// Another transaction created the same entity between the lookup
	// and the insert. Fetch the winner; no second attempt.
	rec, ok, err = find()
	if err != nil {
		return nil, lookupError(kind, key, err)
	}
	if !ok {
		return nil, conflictError(kind, key)
	}
	return rec, nil
}
