package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestCallSuccess(t *testing.T) {
	srv := newTestServer(t, `{"success":true,"data":{"OrderID":"690101001"}}`)
	defer srv.Close()

	data, err := New(srv.URL).Call(context.Background(), "getOrderById", map[string]string{"orderId": "690101001"})
	require.NoError(t, err)

	var got struct {
		OrderID string `json:"OrderID"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "690101001", got.OrderID)
}

func TestCallServerError(t *testing.T) {
	// server ตอบ success=false ต้องได้ error ที่พก message เดิมของ server
	srv := newTestServer(t, `{"success":false,"error":"ไม่พบชีต: xyz"}`)
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "getSheetData", map[string]string{"sheetName": "xyz"})
	require.Error(t, err)

	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "getSheetData", gwErr.Action)
	assert.Equal(t, "ไม่พบชีต: xyz", gwErr.Message)
}

func TestCallServerErrorNoMessage(t *testing.T) {
	srv := newTestServer(t, `{"success":false}`)
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "getAllData", nil)
	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "unknown server error", gwErr.Message)
}

func TestCallEmptyBody(t *testing.T) {
	srv := newTestServer(t, "")
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "getAllData", nil)
	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "empty response from server", gwErr.Message)
}

func TestCallMalformedBody(t *testing.T) {
	srv := newTestServer(t, "<html>gateway timeout</html>")
	defer srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "getAllData", nil)
	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "malformed response from server", gwErr.Message)
}

func TestCallConnectionRefused(t *testing.T) {
	srv := newTestServer(t, "{}")
	srv.Close()

	_, err := New(srv.URL).Call(context.Background(), "getAllData", nil)
	var gwErr *Error
	require.ErrorAs(t, err, &gwErr)
	assert.NotEmpty(t, gwErr.Message)
}
