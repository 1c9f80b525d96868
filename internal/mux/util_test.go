package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"showdown-server/pkg/poker"
)

func Test_writeEvaluationError(t *testing.T) {
	w := httptest.NewRecorder()
	writeEvaluationError(w, fmt.Errorf("%w: no cards", poker.ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errObj errorResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "invalid input: no cards", errObj.Message)

	w = httptest.NewRecorder()
	writeEvaluationError(w, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
	assert.Equal(t, "Internal Server Error", errObj.Message)
}

func Test_decodeRequest(t *testing.T) {
	var payload evaluateRequest

	r := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	assert.False(t, decodeRequest(w, r, &payload))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(`{"cards":["Ah","Kd"]}`))
	r.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	assert.True(t, decodeRequest(w, r, &payload))
	assert.Equal(t, "Ah,Kd", payload.Cards.Notation())
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
