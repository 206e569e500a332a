package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvasflow.dev/backend/internal/pkg/cferr"
)

// Rejection paths never reach the activity service, so a zero-value
// interpreter is enough to exercise them.
func TestAssistantExecuteRejections(t *testing.T) {
	t.Parallel()

	s := NewAssistant(nil)

	tests := []struct {
		name string
		raw  string
	}{
		{"missing type", `{"title":"write report"}`},
		{"unknown verb", `{"type":"archive","activityId":1}`},
		{"create without title", `{"type":"create"}`},
		{"update without activity id", `{"type":"update","title":"x"}`},
		{"move with bogus status", `{"type":"move","activityId":3,"status":"parked"}`},
		{"delete with non-numeric id", `{"type":"delete","activityId":"seven"}`},
		{"batch with empty items", `{"type":"batch_create","items":[]}`},
		{"batch with invalid item", `{"type":"batch_create","items":[{"startDate":"01/02/2024"}]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			results, err := s.Execute(context.Background(), []byte(tt.raw))
			require.Error(t, err)
			assert.Nil(t, results)

			e := &cferr.CanvasError{}
			require.ErrorAs(t, err, &e)
			assert.Equal(t, cferr.CodeInvalidRequest, e.ErrorCode)
		})
	}
}
