package ingestors

import (
	"fmt"

	"factory-monitoring/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeBatchDeadlineExceeded = "ING_5000"

	codeInternalEventStoreFailed         = "ING_9000"
	codeInternalBatchArchiveFailed       = "ING_9001"
	codeInternalConflictRetriesExhausted = "ING_9002"
)

// errValidationFailed returns an error for batch-level validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchDeadlineExceeded is returned when the batch did not finish in time.
// Nothing was committed, so the caller can resend the whole batch.
func errBatchDeadlineExceeded(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeBatchDeadlineExceeded, "batch deadline exceeded, nothing was stored", cause)
}

func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("eventStoreFailed: %w", cause))
}

func errInternalBatchArchiveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchArchiveFailed, fmt.Errorf("batchArchiveFailed: %w", cause))
}

func errInternalConflictRetriesExhausted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalConflictRetriesExhausted, fmt.Errorf("conflictRetriesExhausted: %w", cause))
}
