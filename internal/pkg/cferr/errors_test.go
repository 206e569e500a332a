package cferr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgDoesNotMutateTemplate(t *testing.T) {
	e := ErrInvalidReq.Msg("invalid request: %s", "missing title")
	assert.Equal(t, "invalid request: missing title", e.Message)
	assert.Equal(t, "invalid request: some or all request parameters are invalid", ErrInvalidReq.Message)
	assert.Equal(t, ErrInvalidReq.StatusCode, e.StatusCode)
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"title required"})
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.NotNil(t, e.Extras)
	assert.Contains(t, *e.Extras, "violations")
}
