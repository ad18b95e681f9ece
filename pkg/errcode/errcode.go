package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Configuration errors
	ConfigLoadError
	ConfigGenerateError
	FlowsConfigError
	FlowUnknownError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Import errors
	ImportFileError
	ImportBadInputError
	ImportValidationError
	ImportResolutionConflictError
	ImportIntegrityError
	ImportDuplicateRecordError
	ImportCancelledError
	ImportRunRecordError
)
