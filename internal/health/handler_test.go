package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_handler_ServeHTTP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method      string
		path        string
		healthErr   error
		status      int
		bodyContain string
	}{
		"healthy": {
			method: http.MethodGet,
			path:   "/",
			status: http.StatusOK,
		},
		"healthy head": {
			method: http.MethodHead,
			path:   "/",
			status: http.StatusOK,
		},
		"unhealthy": {
			method:      http.MethodGet,
			path:        "/",
			healthErr:   errors.New("entries fetch is outdated"),
			status:      http.StatusInternalServerError,
			bodyContain: "entries fetch is outdated",
		},
		"not found": {
			method: http.MethodGet,
			path:   "/other",
			status: http.StatusNotFound,
		},
		"method not allowed": {
			method: http.MethodPost,
			path:   "/",
			status: http.StatusMethodNotAllowed,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(func() error { return testCase.healthErr })
			request := httptest.NewRequest(testCase.method, testCase.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, request)

			assert.Equal(t, testCase.status, w.Code)
			assert.Contains(t, w.Body.String(), testCase.bodyContain)
		})
	}
}
