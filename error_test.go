package pagesift_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagesift.Errorf(pagesift.ENOTFOUND, "page %q not found", "http://x")

	assert.Equal(t, pagesift.ENOTFOUND, pagesift.ErrorCode(err))
	assert.Equal(t, "page \"http://x\" not found", pagesift.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagesift.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagesift.EINTERNAL, pagesift.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", pagesift.Errorf(pagesift.ETIMEOUT, "request timed out"))

	assert.Equal(t, pagesift.ETIMEOUT, pagesift.ErrorCode(err))
	assert.Equal(t, "request timed out", pagesift.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagesift.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "an internal error has occurred", pagesift.ErrorMessage(errors.New("boom")))
}
