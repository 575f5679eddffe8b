package models

import "time"

// Point is one recorded location sample. Rows are inserted by ingestion or
// by the placement engine and deleted explicitly; they are never updated.
// Within one user's history no two points share a recorded_at.
type Point struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_points_user_time,priority:1;not null" json:"user_id"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	RecordedAt time.Time `gorm:"index:idx_points_user_time,priority:2;not null" json:"recorded_at"`
	Accuracy   *float64  `json:"accuracy"` // GPS accuracy in meters
	Altitude   *float64  `json:"altitude"` // Altitude in meters
	Speed      *float64  `json:"speed"`
	Battery    *int      `json:"battery"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Point) TableName() string {
	return "points"
}
