package domain

import "time"

// Topic is a forum thread.
type Topic struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	UserID       uint      `json:"user_id"`
	User         *User     `json:"user,omitempty"`
	CategoryID   uint      `json:"category_id"`
	Category     *Category `json:"category,omitempty"`
	ViewCount    int       `json:"view_count"`
	ReplyCount   int       `json:"reply_count"`
	LikeCount    int64     `json:"like_count"`
	DislikeCount int64     `json:"dislike_count"`
	Replies      []Reply   `json:"replies,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TopicInput is the body of topic create and update calls.
type TopicInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID uint   `json:"category_id"`
}

// Reply is an answer posted under a topic.
type Reply struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserID    uint      `json:"user_id"`
	User      *User     `json:"user,omitempty"`
	TopicID   uint      `json:"topic_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TopicList is one page of topics.
type TopicList struct {
	Topics   []Topic `json:"topics"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// Reaction is the outcome of a like or dislike toggle.
type Reaction struct {
	Message      string `json:"message,omitempty"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	Liked        bool   `json:"liked"`
	Disliked     bool   `json:"disliked"`
}
