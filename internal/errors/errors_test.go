package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "github.com/ironhearth/advance-bot/internal/errors"
)

func TestWrap_PreservesCode(t *testing.T) {
	inner := apperr.NotFound("character not found")
	wrapped := apperr.Wrapf(inner, "failed to get character '%s'", "char-1")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, apperr.CodeNotFound, apperr.GetCode(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_ForeignErrorGetsUnknownCode(t *testing.T) {
	inner := stderrors.New("connection refused")
	wrapped := apperr.Wrap(inner, "failed to reach redis")

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.False(t, apperr.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing happened"))
}

func TestError_Message(t *testing.T) {
	err := apperr.Wrap(stderrors.New("boom"), "operation failed")
	assert.Equal(t, "operation failed: boom", err.Error())

	plain := apperr.InvalidArgumentf("bad value %d", 7)
	assert.Equal(t, "bad value 7", plain.Error())
}

func TestWithMeta(t *testing.T) {
	err := apperr.NotFound("character not found").
		WithMeta("character_id", "char-1").
		WithMeta("attempt", 2)

	assert.Equal(t, "char-1", err.Meta["character_id"])
	assert.Equal(t, 2, err.Meta["attempt"])
}

func TestWrap_CopiesMeta(t *testing.T) {
	inner := apperr.NotFound("character not found").WithMeta("character_id", "char-1")
	wrapped := apperr.Wrap(inner, "lookup failed").WithMeta("owner_id", "owner-1")

	assert.Equal(t, "char-1", wrapped.Meta["character_id"])
	_, leaked := inner.Meta["owner_id"]
	assert.False(t, leaked, "wrapping must not mutate the inner error's meta")
}

func TestIs_SurvivesStdWrapping(t *testing.T) {
	inner := apperr.FailedPrecondition("not enough experience")
	wrapped := fmt.Errorf("commit failed: %w", inner)

	assert.True(t, apperr.IsFailedPrecondition(wrapped))
}

func TestGetCode_ForeignError(t *testing.T) {
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("boom")))
}
