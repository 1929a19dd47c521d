package model

// Product keeps tags as a single comma-separated string; matching is a
// case-insensitive substring test against the whole string.
type Product struct {
	Id    string `gorm:"type:text;primaryKey"`
	Title string `gorm:"type:text"`
	Tags  string `gorm:"type:text"`
	Link  string `gorm:"type:text"`
}

func (Product) TableName() string {
	return "products"
}
