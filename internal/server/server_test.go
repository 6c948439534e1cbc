package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/numeral/internal/convert"
	"github.com/csheth/numeral/internal/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(t *testing.T, r http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, Path+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConvertHandler(t *testing.T) {
	r := New(logging.Nop())

	w := get(t, r, "?query=1994")
	require.Equal(t, http.StatusOK, w.Code)

	var body conversionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1994", body.Input)
	assert.Equal(t, "MCMXCIV", body.Output)
}

func TestConvertHandlerRejectsInvalidInput(t *testing.T) {
	r := New(logging.Nop())

	tests := map[string]string{
		"?query=4000": "Value must not exceed 3999.",
		"?query=-5":   "Roman numerals do not support negative numbers or zero.",
		"?query=10.2": "Number cannot be a decimal.",
		"?query=abc":  "Please enter a valid number.",
		"":            "missing query parameter",
	}
	for query, want := range tests {
		w := get(t, r, query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)

		var body errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), query)
		assert.Equal(t, want, body.Error, query)
	}
}

func TestServerSpeaksClientProtocol(t *testing.T) {
	srv := httptest.NewServer(New(logging.Nop()))
	t.Cleanup(srv.Close)

	client := convert.New(convert.Config{Endpoint: srv.URL + Path, HTTPClient: srv.Client()}, nil)
	for _, n := range []int{1, 4, 10, 3999} {
		out, err := client.Convert(context.Background(), n)
		require.NoError(t, err, strconv.Itoa(n))
		assert.NotEmpty(t, out)
	}
	out, err := client.Convert(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "X", out)

	_, err = client.Convert(context.Background(), 4000)
	assert.Equal(t, "Server responded with status 400", convert.UserMessage(err))
}
