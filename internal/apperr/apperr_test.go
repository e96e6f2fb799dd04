package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfWrappedChain(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("import: %w", Wrap(KindDatabase, "upsert", cause))

	assert.Equal(t, KindDatabase, KindOf(err))
	assert.True(t, Is(err, KindDatabase))
	assert.False(t, Is(err, KindNotFound))
	assert.ErrorIs(t, err, cause)
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.False(t, Is(nil, KindInternal))
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("tag_one", "KR-100")
	assert.Equal(t, "tag_one: product not found (sku KR-100)", err.Error())

	wrapped := Wrap(KindUnavailable, "", errors.New("dial tcp: refused"))
	assert.Equal(t, "dial tcp: refused", wrapped.Error())
	assert.Nil(t, Wrap(KindDatabase, "op", nil))
}
