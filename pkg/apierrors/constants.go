package apierrors

const (
	MsgMissingSession      = "missingSession"
	MsgTaskNotFound        = "taskNotFound"
	MsgPageNotFound        = "pageNotFound"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidPagePayload  = "invalidPagePayload"
	MsgInvalidColor        = "invalidColor"
	MsgPermissionDenied    = "permissionDenied"
	MsgDuplicateRecord     = "duplicateRecord"
	MsgRelatedRecord       = "relatedRecordMissing"
	MsgNetworkError        = "networkError"
	MsgDependencyCycle     = "dependencyCycle"
	MsgOperationFailed     = "operationFailed"
	MsgAttachmentsOrphaned = "attachmentsOrphaned"
	MsgMigrationFailed     = "migrationFailed"
)
