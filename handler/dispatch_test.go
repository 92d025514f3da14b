package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchRequest(t *testing.T, body string) (*Response, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api", Dispatch)

	req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp, w.Code
}

func TestDispatchUnknownAction(t *testing.T) {
	// action ที่ไม่รู้จักตอบ HTTP 200 เสมอ แยกพลาดด้วยธง success ตามสัญญาเดิม
	resp, code := dispatchRequest(t, `{"action":"explodeOrder","payload":{}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "unknown action", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestDispatchMalformedBody(t *testing.T) {
	resp, code := dispatchRequest(t, `{"action":`)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid payload", resp.Error)
}

func TestDispatchBadPayload(t *testing.T) {
	// action รู้จักแต่ payload เพี้ยน ต้องตายที่ด่านเช็ค payload ก่อนแตะ db
	cases := []string{
		`{"action":"getOrderById","payload":{}}`,
		`{"action":"getOrderById","payload":"not an object"}`,
		`{"action":"getSheetData","payload":{"sheetName":""}}`,
		`{"action":"uploadFile","payload":{"base64Data":""}}`,
	}
	for _, body := range cases {
		resp, code := dispatchRequest(t, body)
		assert.Equal(t, http.StatusOK, code, body)
		assert.False(t, resp.Success, body)
		assert.Equal(t, "invalid payload", resp.Error, body)
	}
}
