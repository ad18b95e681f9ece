package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/pkg/errcode"
)

// ConnectionError creates an error for a failed database connection.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL

<em>Host:</em> %s:%d
<em>Database:</em> %s
<em>User:</em> %s

<em>Possible causes:</em>
  - PostgreSQL server is not running
  - Wrong host, port, user or password
  - Database does not exist

<em>How to fix:</em>
  1. Check the server is reachable
  2. Verify credentials in config.yaml or OSIMPORT_DATABASE_* vars`

	vars := []any{host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to connect to database: %w", err),
	}
}

// GormConnectionError creates an error for a failed GORM session.
func GormConnectionError(host, database string, err error) error {
	msg := `Cannot open GORM session

<em>Host:</em> %s
<em>Database:</em> %s`

	vars := []any{host, database}

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open gorm session: %w", err),
	}
}

// NotConnectedError creates an error for operations attempted without a
// database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed tables check.
func TableCheckError(err error) error {
	msg := "Cannot check for existing tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check tables: %w", err),
	}
}

// TableExistsCheckError creates an error for a failed single-table
// check.
func TableExistsCheckError(table string, err error) error {
	msg := `Cannot check if table <em>%s</em> exists`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// QueryTablesError creates an error for a failed table listing.
func QueryTablesError(err error) error {
	msg := "Cannot list tables in the public schema"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// DropTableError creates an error for a failed table drop.
func DropTableError(table string, err error) error {
	msg := `Cannot drop table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
