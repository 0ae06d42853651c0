package legislativa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Maikl76/legislativa"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := legislativa.Errorf(legislativa.EFETCH, "HTTP %d for %s", 404, "https://example.com/a.pdf")

	assert.Equal(t, legislativa.EFETCH, legislativa.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com/a.pdf", legislativa.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", legislativa.Errorf(legislativa.EPARSE, "malformed PDF"))

	assert.Equal(t, legislativa.EPARSE, legislativa.ErrorCode(err))
	assert.Equal(t, "malformed PDF", legislativa.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, legislativa.EINTERNAL, legislativa.ErrorCode(err))
	assert.Equal(t, "Internal error.", legislativa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, legislativa.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, legislativa.ErrorMessage(nil))
}
