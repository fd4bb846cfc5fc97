package http

import (
	"fmt"

	"factory-monitoring/internal/shared/svcerrors"
)

const (
	codeRequestInvalid = "API_1000"
	codeBatchNotFound  = "API_1001"

	codeInternalBatchArchiveFailed = "API_9000"
)

// errRequestInvalid is returned when a request cannot be decoded or fails
// boundary validation, before any service is called.
func errRequestInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestInvalid, msg, cause)
}

func errBatchNotFound(batchID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeBatchNotFound, fmt.Sprintf("batch %q not found", batchID), cause)
}

func errInternalBatchArchiveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchArchiveFailed, fmt.Errorf("batchArchiveFailed: %w", cause))
}
