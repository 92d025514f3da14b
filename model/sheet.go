package model

// SheetName ทะเบียนชื่อชีตปิดงานที่แอดมินสร้างเพิ่ม
// ชีตหลัก "order" ไม่ต้องลงทะเบียน ถือว่ามีเสมอ
type SheetName struct {
	BaseModel
	Name string `gorm:"column:name;type:varchar(64);uniqueIndex;not null" json:"name"`
}

func (SheetName) TableName() string {
	return "sheet_names"
}

// IsReserved ชื่อชีตที่ระบบจองไว้ ใช้ห้ามย้ายออร์เดอร์เข้าชีตข้อมูลหลัก
func IsReserved(name string) bool {
	switch name {
	case SheetOrders, SheetCustomers, SheetProducts:
		return true
	}
	return false
}
