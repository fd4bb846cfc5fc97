package aggregators

import (
	"fmt"

	"factory-monitoring/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "AGG_1000"

	codeInternalEventStoreFailed = "AGG_9000"
)

func errValidationFailed(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, nil)
}

// errInternalEventStoreFailed returns an error when a range query against the event store fails.
func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("eventStoreFailed: %w", cause))
}
