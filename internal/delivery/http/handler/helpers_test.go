package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type requestOption func(*http.Request) *http.Request

func asUser(identity entity.Identity) requestOption {
	return func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithIdentity(r.Context(), identity))
	}
}

func withID(id string) requestOption {
	return func(r *http.Request) *http.Request {
		return mux.SetURLVars(r, map[string]string{"id": id})
	}
}

func newRequest(t *testing.T, method, path string, body interface{}, opts ...requestOption) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		req = opt(req)
	}
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}
