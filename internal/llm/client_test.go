package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryankwang/EMR-Processing/internal/common"
)

var _ Completer = (*MockCompleter)(nil)

type MockCompleter struct {
	CompleteFunc      func(ctx context.Context, system, user string, schema map[string]any) (string, error)
	CompleteCallCount int32
}

func (m *MockCompleter) Complete(ctx context.Context, system, user string, schema map[string]any) (string, error) {
	atomic.AddInt32(&m.CompleteCallCount, 1)
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, system, user, schema)
	}
	return "", errors.New("CompleteFunc not implemented in mock")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStructureEmptyText(t *testing.T) {
	completer := &MockCompleter{}
	c := NewClient(completer, discardLogger())

	sections, raw, err := c.Structure(context.Background(), "   \n\t ")

	assert.Nil(t, sections)
	assert.Nil(t, raw)
	assert.True(t, common.IsKind(err, common.KindEmptyInput))
	// fails before any network call
	assert.Equal(t, int32(0), atomic.LoadInt32(&completer.CompleteCallCount))
}

func TestStructureTransportFailure(t *testing.T) {
	completer := &MockCompleter{
		CompleteFunc: func(ctx context.Context, system, user string, schema map[string]any) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	c := NewClient(completer, discardLogger())

	sections, _, err := c.Structure(context.Background(), "Patient presents with hypertension.")

	assert.Nil(t, sections)
	assert.True(t, common.IsKind(err, common.KindServiceUnavailable))
	assert.True(t, common.Retryable(err))
}

func TestStructureSchemaViolation(t *testing.T) {
	completer := &MockCompleter{
		CompleteFunc: func(ctx context.Context, system, user string, schema map[string]any) (string, error) {
			return `{"weight": "seventy kilos"}`, nil
		},
	}
	c := NewClient(completer, discardLogger())

	sections, raw, err := c.Structure(context.Background(), "Patient presents with hypertension.")

	assert.Nil(t, sections)
	assert.JSONEq(t, `{"weight": "seventy kilos"}`, string(raw))
	assert.True(t, common.IsKind(err, common.KindSchemaViolation))
	assert.False(t, common.Retryable(err))
}

func TestStructureSuccess(t *testing.T) {
	var gotSystem, gotUser string
	completer := &MockCompleter{
		CompleteFunc: func(ctx context.Context, system, user string, schema map[string]any) (string, error) {
			gotSystem, gotUser = system, user
			assert.Contains(t, schema, "properties")
			return validRecordJSON, nil
		},
	}
	c := NewClient(completer, discardLogger())

	sections, raw, err := c.Structure(context.Background(), "Patient presents with hypertension.")

	require.NoError(t, err)
	require.NotNil(t, sections)
	assert.JSONEq(t, validRecordJSON, string(raw))
	require.NotNil(t, sections.BillingInformation)
	assert.Equal(t, "120.50", sections.BillingInformation.TotalEstimate)
	assert.Len(t, sections.Medications, 1)
	assert.NotEmpty(t, gotSystem)
	assert.Contains(t, gotUser, "Patient presents with hypertension.")
}

func TestStructureStripsCodeFence(t *testing.T) {
	completer := &MockCompleter{
		CompleteFunc: func(ctx context.Context, system, user string, schema map[string]any) (string, error) {
			return "```json\n" + allNullRecordJSON + "\n```", nil
		},
	}
	c := NewClient(completer, discardLogger())

	sections, _, err := c.Structure(context.Background(), "some clinical text")

	require.NoError(t, err)
	require.NotNil(t, sections)
	assert.Nil(t, sections.BillingInformation)
}
