package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	DBConnectionError
	DBNotConnectedError
	DBQueryError
	DBSaveError
	DBEmptyStoreError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Source (IMF DataMapper) errors
	SourceRequestError
	SourceStatusError
	SourceDecodeError
	SourceNoDataError
	CacheError

	// Cohort errors
	CohortConfigError

	// Aggregation errors
	MissingColumnError
	IndicatorNotFoundError

	// Presentation errors
	ChartBuildError
	ChartSaveError
	NarrativeConfigError
	NarrativeRequestError
	ReportExportError
	ReportRenderError
)
