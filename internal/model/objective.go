package model

type Objective struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_objective_name" json:"name"`
	Slug        string `gorm:"type:varchar(120);not null;uniqueIndex:idx_objective_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

func (Objective) TableName() string {
	return "objectives"
}
