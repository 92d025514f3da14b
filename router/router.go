package router

import (
	"net/http"

	"order_console/config"
	"order_console/handler"
	"order_console/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter ตั้งค่า routes ของแอป
func SetupRouter(mode string) *gin.Engine {
	if mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery(true))

	// health check สำหรับ consul
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": config.Conf.Version})
	})

	// action API ทุก action วิ่งผ่าน POST เดียวตามสัญญาเดิม
	r.POST("/api", handler.Dispatch)
	r.GET("/api/suggest", handler.Suggest)
	r.POST("/api/print", handler.PrintLabels)

	// หน้าเว็บ แยกโหมดแอดมิน/ลูกค้าด้วย query param
	r.GET("/", handler.Index)
	r.POST("/confirm", handler.ConfirmSubmit)

	// ไฟล์ที่อัปโหลด (สลิป รูปสินค้า)
	r.Static("/files", config.Conf.UploadConfig.Dir)

	return r
}
