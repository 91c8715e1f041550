package entity

// Specialization is a medical specialty a doctor belongs to.
type Specialization struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:SpecializationID" json:"doctors,omitempty"`
}

func (Specialization) TableName() string {
	return "specializations"
}
