package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	EventID   string `json:"eventId" validate:"required"`
	MachineID string `json:"machineId,omitempty" validate:"required"`
	Internal  string `validate:"required"`
}

func TestNew_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sample{})
	require.Error(t, err)

	assert.Equal(t, []string{"eventId (required)", "machineId (required)", "Internal (required)"}, FailedFields(err))
}

func TestFailedFields_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FailedFields(errors.New("boom")))
	assert.Nil(t, FailedFields(nil))
}
