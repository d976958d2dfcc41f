package domain

// Board represents a kanban board that owns an ordered set of columns
type Board struct {
	BaseModel
	Title   string   `gorm:"type:varchar(255);not null" json:"title"`
	Color   string   `gorm:"type:varchar(50);not null" json:"color"`
	Columns []Column `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
