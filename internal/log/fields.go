package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldCategory  = "category"
	FieldMonth     = "month"
	FieldYear      = "year"
	FieldQuery     = "query"
	FieldCount     = "count"
	FieldAmount    = "amount"
	FieldCard      = "card"
	FieldFile      = "file"
	FieldArtifact  = "artifact"
	FieldAnchor    = "anchor"
	FieldSymbol    = "symbol"
	FieldRow       = "row"
	FieldBackend   = "backend"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentReports  = "reports"
	ComponentSearch   = "search"
	ComponentViews    = "views"
	ComponentLedger   = "ledger"
	ComponentQuotes   = "quotes"
	ComponentSettings = "settings"
	ComponentPersist  = "persist"
	ComponentLogTable = "logtable"
)

// Operations defines standard operation names
const (
	OpLoad      = "load"
	OpFilter    = "filter"
	OpAggregate = "aggregate"
	OpSearch    = "search"
	OpCompose   = "compose"
	OpSave      = "save"
	OpFetch     = "fetch"
	OpConvert   = "convert"
)
