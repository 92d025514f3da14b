package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"order_console/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{OrderID: "690101001", CustomerName: "คุณสมชาย ใจดี", CustomerPhone: "'0812345678", Status: model.StatusCreated},
		{OrderID: "690101002", CustomerName: "คุณสมหญิง รักงาม", CustomerPhone: "'0898765432", Status: model.StatusReadyToShip},
		{OrderID: "690102001", CustomerName: "คุณ Somchai", CustomerPhone: "'0811111111", Status: model.StatusDone},
	}
}

func TestFilterNoCriteria(t *testing.T) {
	orders := sampleOrders()

	// คำค้นว่าง + สถานะ all ต้องได้ครบทุกแถวตามลำดับเดิม
	got := Filter(orders, "", FilterAll)
	assert.Equal(t, orders, got)

	// สถานะว่าง (query string ไม่ส่งค่า) ต้องเท่ากับ all ไม่ใช่กรองทุกแถวทิ้ง
	got = Filter(orders, "", "")
	assert.Equal(t, orders, got)
}

func TestFilterSearch(t *testing.T) {
	orders := sampleOrders()

	got := Filter(orders, "สมชาย", FilterAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "690101001", got[0].OrderID)

	// เทียบชื่อแบบไม่สนตัวพิมพ์
	got = Filter(orders, "somCHAI", FilterAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "690102001", got[0].OrderID)

	// ค้นด้วยเบอร์โทรบางส่วน
	got = Filter(orders, "0898", FilterAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "690101002", got[0].OrderID)

	// ค้นด้วยเลขออร์เดอร์บางส่วน
	got = Filter(orders, "690101", FilterAll)
	assert.Len(t, got, 2)
}

func TestFilterStatus(t *testing.T) {
	orders := sampleOrders()

	got := Filter(orders, "", model.StatusDone)
	assert.Len(t, got, 1)
	assert.Equal(t, "690102001", got[0].OrderID)

	// คำค้นกับสถานะต้องเข้าทั้งคู่
	got = Filter(orders, "สมชาย", model.StatusDone)
	assert.Empty(t, got)
}

func TestFilterForPrint(t *testing.T) {
	orders := sampleOrders()
	orders = append(orders, model.Order{CustomerName: "คุณแถวว่าง"})

	got := FilterForPrint(orders, FilterAll, FilterAll)
	assert.Len(t, got, 4)

	// ค่าว่างถือเป็น all ทั้งชนิดข้อมูลและสถานะ
	got = FilterForPrint(orders, "", "")
	assert.Len(t, got, 4)

	// orderOnly ตัดแถวที่ไม่มีเลขออร์เดอร์ทิ้ง
	got = FilterForPrint(orders, PrintTypeOrderOnly, FilterAll)
	assert.Len(t, got, 3)

	got = FilterForPrint(orders, PrintTypeOrderOnly, model.StatusReadyToShip)
	assert.Len(t, got, 1)
	assert.Equal(t, "690101002", got[0].OrderID)
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, "350", ComputeTotal([]string{"100", "250"}))
	assert.Equal(t, "350.5", ComputeTotal([]string{"100.25", "250.25"}))

	// ช่องที่ไม่ใช่ตัวเลขถูกข้าม
	assert.Equal(t, "100", ComputeTotal([]string{"100", "abc", ""}))

	// ยอดรวมเป็นศูนย์หรือติดลบคืนค่าว่าง
	assert.Equal(t, "", ComputeTotal(nil))
	assert.Equal(t, "", ComputeTotal([]string{"0"}))
	assert.Equal(t, "", ComputeTotal([]string{"100", "-200"}))
}
