package domain

import "time"

// PointRecord is one entry of a user's points ledger. Positive Points is a
// credit, negative a debit.
type PointRecord struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	User        *User     `json:"user,omitempty"`
	Points      int       `json:"points"`
	Type        string    `json:"type"`
	ResourceID  *uint     `json:"resource_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// PointsBalance is the answer of GET /user/points.
type PointsBalance struct {
	Points int `json:"points"`
}

type PointRecordList struct {
	Records  []PointRecord `json:"records"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}
