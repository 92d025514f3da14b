package model

// Product สินค้าหนึ่งแถวในชีตสินค้า
type Product struct {
	BaseModel
	ProductID    string `gorm:"column:product_id;type:varchar(32);uniqueIndex;not null" json:"ProductID"`
	ProductName  string `gorm:"column:product_name;type:varchar(255);not null;default:''" json:"ProductName"`
	ProductPrice string `gorm:"column:product_price;type:varchar(20);not null;default:''" json:"ProductPrice"`
	ImageUrl     string `gorm:"column:image_url;type:varchar(512);not null;default:''" json:"ImageUrl"`
}

func (Product) TableName() string {
	return "products"
}
