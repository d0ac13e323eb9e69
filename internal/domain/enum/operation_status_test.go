package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationStatusUnmarshalKnownNames(t *testing.T) {
	for name, want := range map[string]OperationStatus{
		"in_review": OperationStatusInReview,
		"approved":  OperationStatusApproved,
		"rejected":  OperationStatusRejected,
	} {
		var s OperationStatus
		require.NoError(t, json.Unmarshal([]byte(`"`+name+`"`), &s))
		assert.Equal(t, want, s)
	}
}

func TestOperationStatusUnmarshalRejectsUnknownName(t *testing.T) {
	var s OperationStatus
	err := json.Unmarshal([]byte(`"aprobado"`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aprobado")
}

func TestOperationStatusUnmarshalRejectsUnknownNumber(t *testing.T) {
	var s OperationStatus
	assert.Error(t, json.Unmarshal([]byte(`7`), &s))
}

func TestOperationStatusStringOutOfRange(t *testing.T) {
	// A corrupt database row can scan into an out-of-range value
	assert.Equal(t, "unknown", OperationStatus(9).String())

	data, err := json.Marshal(OperationStatus(9))
	require.NoError(t, err)
	assert.Equal(t, `"unknown"`, string(data))
}
