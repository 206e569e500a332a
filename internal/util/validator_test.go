package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"
)

func TestBoardStatusTag(t *testing.T) {
	t.Parallel()

	validate := NewValidator()

	for _, status := range []string{"todo", "doing", "finished"} {
		assert.NoError(t, validate.Var(status, "boardstatus"), status)
	}
	for _, status := range []string{"", "done", "TODO", "archived"} {
		assert.Error(t, validate.Var(status, "boardstatus"), status)
	}
}

func TestProjectColorTag(t *testing.T) {
	t.Parallel()

	validate := NewValidator()

	assert.NoError(t, validate.Var("#ef4444", "projectcolor"))
	assert.NoError(t, validate.Var("#3B82F6", "projectcolor"), "palette match is case-insensitive")
	assert.Error(t, validate.Var("#123456", "projectcolor"))
	assert.Error(t, validate.Var("red", "projectcolor"))
}

func TestNullIntValuer(t *testing.T) {
	t.Parallel()

	validate := NewValidator()

	type body struct {
		DurationDays null.Int `validate:"omitempty,gte=0"`
	}

	assert.NoError(t, validate.Struct(body{DurationDays: null.IntFrom(5)}))
	assert.NoError(t, validate.Struct(body{DurationDays: null.Int{}}), "absent duration is open-ended, not invalid")
	assert.Error(t, validate.Struct(body{DurationDays: null.IntFrom(-1)}))
}

func TestCaseInsensitiveOneOf(t *testing.T) {
	t.Parallel()

	validate := NewValidator()

	assert.NoError(t, validate.Var("Day", "caseinsensitiveoneof=day week month"))
	assert.Error(t, validate.Var("quarter", "caseinsensitiveoneof=day week month"))
}
