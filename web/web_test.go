package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_console/biz/order"
	"order_console/model"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "0", Money(""))
	assert.Equal(t, "350", Money("350"))
	assert.Equal(t, "1,500", Money("1500"))
	assert.Equal(t, "1,234,567.5", Money("1234567.50"))
	assert.Equal(t, "-12,000", Money("-12000"))
	// ค่าที่ไม่ใช่ตัวเลขคืนตามเดิม
	assert.Equal(t, "abc", Money("abc"))
}

func TestOrderRows(t *testing.T) {
	orders := []model.Order{
		{OrderID: "690101001", CustomerName: "คุณสมชาย ใจดี", CustomerPhone: "'0812345678", TotalPrice: "1500", Status: model.StatusCreated},
		{OrderID: "690101002", CustomerName: "คุณสมหญิง รักงาม", CustomerPhone: "'0898765432", TotalPrice: "350", Status: model.StatusDone},
	}

	html, err := OrderRows(orders, "", order.FilterAll)
	require.NoError(t, err)
	s := string(html)

	assert.Equal(t, 2, strings.Count(s, "<tr"))
	assert.Contains(t, s, "690101001")
	assert.Contains(t, s, "1,500")
	// เบอร์โทรแสดงแบบถอด quote ของชีตแล้ว
	assert.Contains(t, s, "0812345678")
	assert.NotContains(t, s, "&#39;0812345678")
}

func TestOrderRowsEmptyResult(t *testing.T) {
	orders := []model.Order{
		{OrderID: "690101001", CustomerName: "คุณสมชาย", Status: model.StatusCreated},
	}

	// ผลกรองว่างต้องได้แถว "ไม่พบข้อมูล" ไม่ใช่ตารางเปล่า
	html, err := OrderRows(orders, "ไม่มีทางเจอ", order.FilterAll)
	require.NoError(t, err)
	assert.Contains(t, string(html), "ไม่พบข้อมูล")
}

func TestCustomerAndProductRows(t *testing.T) {
	customers := []model.Customer{
		{CustomerID: "1001", CustomerName: "คุณสมชาย ใจดี", CustomerPhone: "'0812345678"},
	}
	html, err := CustomerRows(customers, "")
	require.NoError(t, err)
	assert.Contains(t, string(html), "คุณสมชาย ใจดี")

	products := []model.Product{
		{ProductID: "2001", ProductName: "เสื้อยืดสีขาว", ProductPrice: "250"},
	}
	html, err = ProductRows(products, "")
	require.NoError(t, err)
	assert.Contains(t, string(html), "เสื้อยืดสีขาว")
}

func TestRenderCustomerPageStates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCustomerPage(&buf, &CustomerPage{OrderID: "690101999", NotFound: true}))
	assert.Contains(t, buf.String(), "ไม่พบข้อมูล 690101999")

	buf.Reset()
	require.NoError(t, RenderCustomerPage(&buf, &CustomerPage{
		OrderID: "690101001",
		Items:   []ItemView{{Name: "เสื้อยืดสีขาว", Price: "250"}},
		Total:   "250",
	}))
	out := buf.String()
	assert.Contains(t, out, "เสื้อยืดสีขาว")
	assert.Contains(t, out, `action="/confirm"`)
}
