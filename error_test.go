package gtmagent_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/gtmagent"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := gtmagent.Errorf(gtmagent.ENOTFOUND, "document %d not found", 42)

	assert.Equal(t, gtmagent.ENOTFOUND, gtmagent.ErrorCode(err))
	assert.Equal(t, "document 42 not found", gtmagent.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gtmagent.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", gtmagent.Errorf(gtmagent.EDISALLOWED, "blocked by robots.txt"))

	assert.Equal(t, gtmagent.EDISALLOWED, gtmagent.ErrorCode(err))
	assert.Equal(t, "blocked by robots.txt", gtmagent.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, gtmagent.EINTERNAL, gtmagent.ErrorCode(err))
	assert.Equal(t, "Internal error.", gtmagent.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, gtmagent.ErrorMessage(nil))
}
