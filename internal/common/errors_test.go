package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := E(KindPersistenceFailure, "create record", cause)

	assert.Equal(t, "PERSISTENCE_FAILURE: create record: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindPersistenceFailure, KindOf(err))
}

func TestKindOfWrapped(t *testing.T) {
	inner := Ef(KindPatientNotFound, "patient %s not found", "abc")
	wrapped := fmt.Errorf("lookup: %w", inner)

	assert.Equal(t, KindPatientNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindPatientNotFound))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(Ef(KindServiceUnavailable, "engine down")))
	assert.False(t, Retryable(Ef(KindSchemaViolation, "bad shape")))
	assert.False(t, Retryable(Ef(KindExtractionFailed, "no text")))
	assert.False(t, Retryable(errors.New("plain")))
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want codes.Code
	}{
		{KindUnsupportedFormat, codes.InvalidArgument},
		{KindMalformedInput, codes.InvalidArgument},
		{KindEmptyInput, codes.InvalidArgument},
		{KindPatientNotFound, codes.NotFound},
		{KindServiceUnavailable, codes.Unavailable},
		{KindExtractionFailed, codes.FailedPrecondition},
		{KindSchemaViolation, codes.FailedPrecondition},
		{KindPersistenceFailure, codes.Internal},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			st, ok := status.FromError(ToStatus(Ef(tc.kind, "boom")))
			require.True(t, ok)
			assert.Equal(t, tc.want, st.Code())
		})
	}

	t.Run("plain error", func(t *testing.T) {
		st, ok := status.FromError(ToStatus(errors.New("boom")))
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
	})
}
