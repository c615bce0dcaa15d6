package model

type Continent struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:idx_continent_name" json:"name"`
	Slug string `gorm:"type:varchar(120);not null;uniqueIndex:idx_continent_slug" json:"slug"`
}

func (Continent) TableName() string {
	return "continents"
}
