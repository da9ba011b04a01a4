package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/medical-record-api/databases/mocks"
	"github.com/linesmerrill/medical-record-api/models"
)

func newRequest(t *testing.T, method, url, body string, vars map[string]string) *http.Request {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// singleResult returns a SingleResultHelper whose Decode returns err after
// running fill on the decode target
func singleResult(err error, fill func(v interface{})) *mocks.SingleResultHelper {
	sr := &mocks.SingleResultHelper{}
	call := sr.On("Decode", mock.Anything).Return(err)
	if fill != nil {
		call.Run(func(args mock.Arguments) { fill(args.Get(0)) })
	}
	return sr
}

func cursor(fill func(v interface{})) *mocks.CursorHelper {
	cr := &mocks.CursorHelper{}
	call := cr.On("Decode", mock.Anything).Return(nil)
	if fill != nil {
		call.Run(func(args mock.Arguments) { fill(args.Get(0)) })
	}
	return cr
}

func assertErrorBody(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)

	var resp models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, message, resp.Response.Message)
}
