package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BFavetto/fars/internal/domain"
)

func TestExitStatus(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitOK, ExitStatus(nil))
	assert.Equal(t, ExitDataErr, ExitStatus(base))
	assert.Equal(t, ExitBadInput, ExitStatus(exitWith(ExitBadInput, "x", base)))
	assert.Equal(t, ExitBadInput, ExitStatus(fmt.Errorf("outer: %w", exitWith(ExitBadInput, "x", base))))
}

func TestExitError_Message(t *testing.T) {
	err := exitWith(ExitDataErr, "map", errors.New("boom"))
	assert.Equal(t, "map: boom", err.Error())
}

func TestClassify(t *testing.T) {
	_, coerceErr := domain.ParseYear("abc")
	assert.Equal(t, ExitBadInput, ExitStatus(classify("x", coerceErr)))
	assert.Equal(t, ExitDataErr, ExitStatus(classify("x", &domain.InvalidStateError{State: 3})))
	assert.ErrorIs(t, classify("x", &domain.InvalidStateError{State: 3}), domain.ErrInvalidState)
}
