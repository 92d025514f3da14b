package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhoneForSheet(t *testing.T) {
	// เบอร์ขึ้นต้นด้วยศูนย์ต้องถูกเติม ' กันชีตตัดศูนย์ทิ้ง
	assert.Equal(t, "'0812345678", PhoneForSheet("0812345678"))
	// เติมแล้วเติมซ้ำไม่ได้ (idempotent)
	assert.Equal(t, "'0812345678", PhoneForSheet(PhoneForSheet("0812345678")))
	// ไม่ขึ้นต้นด้วยศูนย์ คืนตามเดิม
	assert.Equal(t, "66812345678", PhoneForSheet("66812345678"))
	// ตัดช่องว่างหัวท้าย
	assert.Equal(t, "'0899999999", PhoneForSheet("  0899999999 "))
	assert.Equal(t, "", PhoneForSheet(""))
	assert.Equal(t, "", PhoneForSheet("   "))
}

func TestPhoneForDisplay(t *testing.T) {
	assert.Equal(t, "0812345678", PhoneForDisplay("'0812345678"))
	assert.Equal(t, "0812345678", PhoneForDisplay("0812345678"))
	assert.Equal(t, "", PhoneForDisplay(""))
}

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "คุณสมชาย", CustomerName("สมชาย"))
	// มีคำนำหน้าแล้วต้องไม่ซ้ำเป็น "คุณคุณ"
	assert.Equal(t, "คุณสมชาย", CustomerName("คุณสมชาย"))
	assert.Equal(t, "คุณสมชาย", CustomerName(CustomerName("สมชาย")))
	assert.Equal(t, "คุณสมหญิง", CustomerName("  สมหญิง "))
	assert.Equal(t, "", CustomerName(""))
}

func TestBEDateTime(t *testing.T) {
	d := time.Date(2026, 8, 29, 9, 5, 0, 0, time.Local)
	// ปี ค.ศ. 2026 = พ.ศ. 2569
	assert.Equal(t, "29-08-2569 : 09:05", BEDateTime(d))

	d = time.Date(2026, 1, 2, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "02-01-2569 : 23:59", BEDateTime(d))
}
