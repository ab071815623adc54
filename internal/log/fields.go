package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldKind      = "kind"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldCount     = "count"
	FieldView      = "view"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentStorage  = "storage"
	ComponentSettings = "settings"
	ComponentViews    = "views"
	ComponentNetSim   = "netsim"
)

// Operations defines standard operation names
const (
	OpAdd       = "add"
	OpRemove    = "remove"
	OpUpdate    = "update"
	OpDuplicate = "duplicate"
	OpLoad      = "load"
	OpSave      = "save"
	OpRefresh   = "refresh"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
