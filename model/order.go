package model

// ORM
// struct -> table

// สถานะออร์เดอร์ตามหน้างานจริง ค่าเป็นภาษาไทยเพราะเก็บลงชีตตรง ๆ มาแต่เดิม
const (
	StatusCreated       = "สร้างออร์เดอร์" // แอดมินเพิ่งสร้าง รอลูกค้ายืนยัน
	StatusPendingReview = "รอตรวจสอบ"      // ลูกค้ายืนยันและแนบสลิปแล้ว
	StatusReadyToShip   = "รอจัดส่ง"
	StatusDone          = "สำเร็จ"
)

// ชื่อชีตที่สงวนไว้ ชีตอื่นนอกจากนี้ถือเป็นชีตเก็บงานที่ปิดแล้ว
const (
	SheetOrders    = "order"
	SheetCustomers = "รายชื่อ"
	SheetProducts  = "สินค้า"
)

// MaxItems จำนวนรายการสินค้าสูงสุดต่อหนึ่งออร์เดอร์
const MaxItems = 5

// Order ออร์เดอร์หนึ่งแถว รายการสินค้าเก็บแบน ๆ 5 ช่องตามโครงชีตเดิม
// ราคาเก็บเป็น string เพราะข้อมูลเดิมในชีตไม่การันตีรูปแบบตัวเลข
type Order struct {
	BaseModel
	OrderID         string `gorm:"column:order_id;type:varchar(32);uniqueIndex;not null" json:"OrderID"`
	Bucket          string `gorm:"column:bucket;type:varchar(64);not null;default:'order';index" json:"-"` // ชีตที่ออร์เดอร์อยู่ ("order" = ชีตหลัก)
	Date            string `gorm:"column:order_date;type:varchar(32);not null;default:''" json:"Date"`
	CustomerName    string `gorm:"column:customer_name;type:varchar(128);not null;default:''" json:"CustomerName"`
	CustomerAddress string `gorm:"column:customer_address;type:varchar(255);not null;default:''" json:"CustomerAddress"`
	CustomerPhone   string `gorm:"column:customer_phone;type:varchar(20);not null;default:''" json:"CustomerPhone"`
	Item1Name       string `gorm:"column:item1_name;type:varchar(255);not null;default:''" json:"Item1Name,omitempty"`
	Item1Price      string `gorm:"column:item1_price;type:varchar(20);not null;default:''" json:"Item1Price,omitempty"`
	Item2Name       string `gorm:"column:item2_name;type:varchar(255);not null;default:''" json:"Item2Name,omitempty"`
	Item2Price      string `gorm:"column:item2_price;type:varchar(20);not null;default:''" json:"Item2Price,omitempty"`
	Item3Name       string `gorm:"column:item3_name;type:varchar(255);not null;default:''" json:"Item3Name,omitempty"`
	Item3Price      string `gorm:"column:item3_price;type:varchar(20);not null;default:''" json:"Item3Price,omitempty"`
	Item4Name       string `gorm:"column:item4_name;type:varchar(255);not null;default:''" json:"Item4Name,omitempty"`
	Item4Price      string `gorm:"column:item4_price;type:varchar(20);not null;default:''" json:"Item4Price,omitempty"`
	Item5Name       string `gorm:"column:item5_name;type:varchar(255);not null;default:''" json:"Item5Name,omitempty"`
	Item5Price      string `gorm:"column:item5_price;type:varchar(20);not null;default:''" json:"Item5Price,omitempty"`
	TotalPrice      string `gorm:"column:total_price;type:varchar(20);not null;default:''" json:"TotalPrice"`
	Status          string `gorm:"column:status;type:varchar(64);not null;default:''" json:"Status"`
	SlipURL         string `gorm:"column:slip_url;type:varchar(512);not null;default:''" json:"SlipURL"`
}

// TableName ประกาศชื่อตาราง
func (Order) TableName() string {
	return "orders"
}

// OrderItem รายการสินค้าหนึ่งบรรทัดในออร์เดอร์
type OrderItem struct {
	Name  string
	Price string
}

// Items คืนเฉพาะรายการที่มีทั้งชื่อและราคา เรียงตามช่อง
func (o *Order) Items() []OrderItem {
	pairs := [MaxItems][2]string{
		{o.Item1Name, o.Item1Price},
		{o.Item2Name, o.Item2Price},
		{o.Item3Name, o.Item3Price},
		{o.Item4Name, o.Item4Price},
		{o.Item5Name, o.Item5Price},
	}
	items := make([]OrderItem, 0, MaxItems)
	for _, p := range pairs {
		if p[0] != "" && p[1] != "" {
			items = append(items, OrderItem{Name: p[0], Price: p[1]})
		}
	}
	return items
}

// ItemPrices คืนราคาทุกช่องที่ไม่ว่าง ใช้ตอนคำนวณยอดรวม
// ช่องที่มีราคาแต่ไม่มีชื่อก็นับ เหมือนหน้าจอเดิมที่รวมจากช่องราคาตรง ๆ
func (o *Order) ItemPrices() []string {
	all := []string{o.Item1Price, o.Item2Price, o.Item3Price, o.Item4Price, o.Item5Price}
	prices := make([]string, 0, MaxItems)
	for _, p := range all {
		if p != "" {
			prices = append(prices, p)
		}
	}
	return prices
}
