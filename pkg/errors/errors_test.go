package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataForKnownCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeConflict).HTTPStatus)
	assert.Equal(t, http.StatusNotFound, MetadataFor(CodeNotFound).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, MetadataFor(CodeUnauthorized).HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, MetadataFor(CodeValidation).HTTPStatus)
	assert.Equal(t, http.StatusTooManyRequests, MetadataFor(CodeRateLimit).HTTPStatus)
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("BOGUS"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("duplicate key")
	err := Wrap(CodeConflict, cause, "sku already exists")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, CodeConflict, err.Code())
	assert.Equal(t, "CONFLICT: sku already exists", err.Error())
}

func TestAsUnwindsWrappedChain(t *testing.T) {
	inner := New(CodeNotFound, "item not found")
	outer := Wrap(CodeDependency, inner, "load item")

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeDependency, typed.Code())

	assert.Nil(t, As(nil))
	assert.Nil(t, As(stdErrors.New("plain")))
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("disk io")
	err := Wrap(CodeInternal, cause, "write failed")

	dump := Dump(err)
	assert.Equal(t, CodeInternal, dump.Code)
	require.Len(t, dump.Chain, 2)
	assert.Contains(t, dump.Chain[1], "disk io")
}
