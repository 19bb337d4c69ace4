package domain

// UserList is one page of accounts as seen by an administrator.
type UserList struct {
	Users    []User `json:"users"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Review is an administrator's decision on a pending resource.
type Review struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// PointsAdjustment credits or debits a user's balance.
type PointsAdjustment struct {
	UserID      uint   `json:"user_id"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// Stats is a dashboard payload; its shape differs per endpoint.
type Stats map[string]any

// Ack is the {"message": "..."} answer of delete and update calls.
type Ack struct {
	Message string `json:"message"`
}
