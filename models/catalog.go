package models

// MenuItem is one purchasable food row. Multiple rows may share a name
// across restaurants; Review is nullable and drives the rating ordering.
type MenuItem struct {
	ID           string   `gorm:"column:id;primaryKey" json:"id"`
	RestaurantID string   `gorm:"column:restaurant_id" json:"restaurant_id"`
	Name         string   `gorm:"column:name" json:"name"`
	Price        float64  `gorm:"column:price" json:"price"`
	Review       *float64 `gorm:"column:review" json:"review"`
	ImageURL     string   `gorm:"column:image_url" json:"image_url"`
	Description  string   `gorm:"column:description" json:"description"`
}

func (MenuItem) TableName() string {
	return "food.menu_items"
}

// ProductItem is one row of the local product reference table. Concrete
// purchasable product records come from the commerce backend search; this
// table backs the browse and detail endpoints.
type ProductItem struct {
	ID          string   `gorm:"column:id;primaryKey" json:"id"`
	Name        string   `gorm:"column:name" json:"name"`
	Category    string   `gorm:"column:category" json:"category"`
	Price       float64  `gorm:"column:price" json:"price"`
	Review      *float64 `gorm:"column:review" json:"review"`
	Description string   `gorm:"column:description" json:"description"`
	ProductURL  string   `gorm:"column:producturl" json:"producturl"`
}

func (ProductItem) TableName() string {
	return "products.productitem"
}
