package swaggen

// Exported for tests.
var (
	SplitDoc    = splitDoc
	OperationID = operationID
	IsVoid      = isVoid
)
