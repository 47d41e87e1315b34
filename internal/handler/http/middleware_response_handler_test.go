package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK) // second call must be ignored

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	_, err = w.Write([]byte("!!"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 5, n)
	assert.Equal(t, 7, w.size)
	assert.Equal(t, "hello!!", rec.Body.String())
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("x"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}
