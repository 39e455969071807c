package model

import "time"

// RefObject links a content element to a referable entity such as a
// media file. When the target is destroyed only ReferableID is
// cleared; ReferableType survives so the element still knows what kind
// of reference it held.
type RefObject struct {
	ID            uint      `gorm:"primaryKey" json:"id,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
	ElementID     uint      `gorm:"column:element_id;index:idx_ref_element" json:"element_id,omitempty"`
	ReferableType string    `gorm:"column:referable_type;index:idx_ref_target" json:"referable_type,omitempty"`
	ReferableID   *uint     `gorm:"column:referable_id;index:idx_ref_target" json:"referable_id,omitempty"`
}

// TableName overrides gorm to use ref_object table.
func (RefObject) TableName() string {
	return "ref_object"
}

// Referable type discriminators.
const (
	ReferableTypeMediaFile = "MediaFile"
)
