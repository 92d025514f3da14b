package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"order_console/biz/customer"
	"order_console/biz/order"
	"order_console/biz/product"
	"order_console/biz/upload"
	"order_console/config"
	"order_console/errno"
	"order_console/model"
	"order_console/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Index หน้าเดียวของระบบ แยกโหมดด้วย query สองตัวตามสัญญาเดิม
// ?page=customer-order&orderId=X เปิดฟอร์มยืนยันของลูกค้า นอกนั้นเปิดคอนโซลแอดมิน
func Index(c *gin.Context) {
	if c.Query("page") == "customer-order" && c.Query("orderId") != "" {
		customerPage(c, c.Query("orderId"))
		return
	}
	adminPage(c)
}

func adminPage(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := order.List(ctx)
	if err != nil {
		pageError(c, err)
		return
	}
	customers, err := customer.List(ctx)
	if err != nil {
		pageError(c, err)
		return
	}
	products, err := product.List(ctx)
	if err != nil {
		pageError(c, err)
		return
	}
	sheetNames, err := order.SheetNames(ctx)
	if err != nil {
		pageError(c, err)
		return
	}

	page := &web.AdminPage{
		Title:          config.Conf.Name,
		OrderSearch:    c.Query("order_search"),
		OrderStatus:    c.DefaultQuery("order_status", order.FilterAll),
		CustomerSearch: c.Query("customer_search"),
		ProductSearch:  c.Query("product_search"),
		PrintSheet:     c.DefaultQuery("print_sheet", model.SheetOrders),
		PrintType:      c.DefaultQuery("print_type", order.FilterAll),
		PrintStatus:    c.DefaultQuery("print_status", order.FilterAll),
		SheetNames:     sheetNames,
		Statuses: []string{
			model.StatusCreated, model.StatusPendingReview,
			model.StatusReadyToShip, model.StatusDone,
		},
	}

	// ตารางพิมพ์ดูได้ทั้งชีตหลักและชีตปิดงาน
	printOrders := orders
	if page.PrintSheet != model.SheetOrders {
		printOrders, err = order.SheetData(ctx, page.PrintSheet)
		if errors.Is(err, errno.ErrSheetNotFound) {
			// ชีตที่เลือกไว้ถูกลบไปแล้ว แสดงตารางว่างแทน หน้าอื่นต้องใช้ต่อได้
			printOrders = nil
		} else if err != nil {
			pageError(c, err)
			return
		}
	}

	if page.OrderRows, err = web.OrderRows(orders, page.OrderSearch, page.OrderStatus); err != nil {
		pageError(c, err)
		return
	}
	if page.CustomerRows, err = web.CustomerRows(customers, page.CustomerSearch); err != nil {
		pageError(c, err)
		return
	}
	if page.ProductRows, err = web.ProductRows(products, page.ProductSearch); err != nil {
		pageError(c, err)
		return
	}
	if page.PrintRows, err = web.PrintRows(printOrders, page.PrintType, page.PrintStatus); err != nil {
		pageError(c, err)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderAdminPage(c.Writer, page); err != nil {
		zap.L().Error("render admin page failed", zap.Error(err))
	}
}

func customerPage(c *gin.Context, orderID string) {
	page := customerPageFor(c, orderID)
	if page == nil {
		return
	}
	renderCustomer(c, page)
}

// customerPageFor ประกอบสถานะหน้ายืนยันจากออร์เดอร์ปัจจุบัน
func customerPageFor(c *gin.Context, orderID string) *web.CustomerPage {
	page := &web.CustomerPage{OrderID: orderID}

	data, err := order.GetByID(c.Request.Context(), orderID)
	if errors.Is(err, errno.ErrOrderNotFound) {
		page.NotFound = true
		return page
	}
	if err != nil {
		pageError(c, err)
		return nil
	}

	if data.Status != model.StatusCreated {
		page.Confirmed = true
		page.Status = data.Status
		return page
	}

	for _, item := range data.Items() {
		page.Items = append(page.Items, web.ItemView{
			Name:  item.Name,
			Price: web.Money(item.Price),
		})
	}
	page.Total = web.Money(data.TotalPrice)
	return page
}

// ConfirmSubmit รับฟอร์มยืนยันของลูกค้า อัปโหลดสลิปก่อนแล้วค่อยอัปเดตออร์เดอร์
func ConfirmSubmit(c *gin.Context) {
	orderID := c.PostForm("orderId")
	page := customerPageFor(c, orderID)
	if page == nil {
		return
	}
	if page.NotFound || page.Confirmed {
		renderCustomer(c, page)
		return
	}

	fileHeader, err := c.FormFile("slip")
	if err != nil {
		// ไม่แนบสลิปส่งไม่ได้ เช็คก่อนยิงอะไรทั้งนั้น
		page.Error = "กรุณาอัปโหลดสลิป"
		renderCustomer(c, page)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		pageError(c, err)
		return
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		pageError(c, err)
		return
	}

	name := c.PostForm("name")
	slipURL, err := upload.Save(c.Request.Context(), &upload.Param{
		Base64Data: base64.StdEncoding.EncodeToString(raw),
		MimeType:   fileHeader.Header.Get("Content-Type"),
		FolderID:   config.Conf.UploadConfig.SlipFolderID,
		FileName:   name + " " + page.Total,
	})
	if err != nil {
		zap.L().Error("save slip failed", zap.String("orderID", orderID), zap.Error(err))
		page.Error = "ไม่สามารถอัปโหลดได้"
		renderCustomer(c, page)
		return
	}

	err = order.ConfirmByCustomer(c.Request.Context(), &order.ConfirmParam{
		OrderID:         orderID,
		CustomerName:    name,
		CustomerAddress: c.PostForm("address"),
		CustomerPhone:   c.PostForm("phone"),
		SlipURL:         slipURL,
	})
	if err != nil {
		zap.L().Error("confirm submit failed", zap.String("orderID", orderID), zap.Error(err))
		page.Error = err.Error()
		renderCustomer(c, page)
		return
	}

	page.Submitted = true
	renderCustomer(c, page)
}

func renderCustomer(c *gin.Context, page *web.CustomerPage) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := web.RenderCustomerPage(c.Writer, page); err != nil {
		zap.L().Error("render customer page failed", zap.Error(err))
	}
}

func pageError(c *gin.Context, err error) {
	zap.L().Error("page load failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "เกิดข้อผิดพลาด โปรดลองใหม่อีกครั้ง")
}
