package web

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestError(t *testing.T) {
	err := NewRequestError(errors.New("no such row"), http.StatusNotFound)

	re, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, re.Status)
	assert.Equal(t, "no such row", re.Error())
}

func TestIsRequestErrorPlainError(t *testing.T) {
	_, ok := IsRequestError(errors.New("boom"))
	assert.False(t, ok)
}
