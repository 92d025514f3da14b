// Package gateway client ของ action API ใช้จากเครื่องมือฝั่งแอดมินหรือระบบอื่น
// ทุก action ยิงผ่าน POST เดียว ส่ง {action, payload} รับซอง {success, data, error}
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error ความผิดพลาดรูปแบบเดียวของทุกการเรียก
// ไม่ว่าจะ body ว่าง JSON เพี้ยน หรือ server ตอบ success=false ก็ได้ error ชนิดนี้
type Error struct {
	Action  string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway %s: %s", e.Action, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type request struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New สร้าง client ชี้ไปที่ endpoint ของ action API
func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Call ยิง action หนึ่งครั้ง payload เป็น struct หรือ map อะไรก็ได้ที่ marshal เป็น JSON ได้
// สำเร็จคืน data ดิบให้ผู้เรียก unmarshal เอง
func (c *Client) Call(ctx context.Context, action string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(request{Action: action, Payload: payload})
	if err != nil {
		return nil, &Error{Action: action, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Action: action, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Action: action, Message: err.Error()}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Action: action, Message: err.Error()}
	}
	if len(text) == 0 {
		return nil, &Error{Action: action, Message: "empty response from server"}
	}

	var env envelope
	if err := json.Unmarshal(text, &env); err != nil {
		return nil, &Error{Action: action, Message: "malformed response from server"}
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown server error"
		}
		return nil, &Error{Action: action, Message: msg}
	}

	return env.Data, nil
}
