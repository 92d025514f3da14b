package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response ซองตอบกลับมาตรฐานของ action API
// ตอบ HTTP 200 เสมอ ฝั่ง client แยกสำเร็จ/พลาดจากธง success ตามสัญญาเดิม
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ResponseSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func ResponseError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, Response{Success: false, Error: err.Error()})
}
