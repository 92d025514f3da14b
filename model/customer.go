package model

// Customer ลูกค้าหนึ่งแถวในชีตรายชื่อ
// CustomerPhone อาจขึ้นต้นด้วย ' เพื่อกันชีตตัดเลขศูนย์นำหน้า (ดู pkg/normalize)
type Customer struct {
	BaseModel
	CustomerID       string `gorm:"column:customer_id;type:varchar(32);uniqueIndex;not null" json:"CustomerID"`
	CustomerName     string `gorm:"column:customer_name;type:varchar(128);not null;default:''" json:"CustomerName"`
	CustomerAddress  string `gorm:"column:customer_address;type:varchar(255);not null;default:''" json:"CustomerAddress"`
	CustomerPhone    string `gorm:"column:customer_phone;type:varchar(20);not null;default:''" json:"CustomerPhone"`
	CustomerBirthday string `gorm:"column:customer_birthday;type:varchar(32);not null;default:''" json:"CustomerBirthday"`
}

func (Customer) TableName() string {
	return "customers"
}
