package domain

import (
	"io"
	"time"
)

const (
	ResourcePending  = "pending"
	ResourceApproved = "approved"
	ResourceRejected = "rejected"
)

// Category groups resources and forum topics.
type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	TopicCount  int    `json:"topic_count,omitempty"`
	PostCount   int    `json:"post_count,omitempty"`
}

// Resource is a shared downloadable file with its metadata.
type Resource struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CategoryID     uint      `json:"category_id"`
	Category       *Category `json:"category,omitempty"`
	FilePath       string    `json:"file_path,omitempty"`
	FileSize       int64     `json:"file_size"`
	FileType       string    `json:"file_type,omitempty"`
	DownloadCount  int       `json:"download_count"`
	PointsRequired int       `json:"points_required"`
	Status         string    `json:"status"`
	UserID         uint      `json:"user_id"`
	User           *User     `json:"user,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ResourceInput is the body of resource create and update calls.
type ResourceInput struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	CategoryID     uint   `json:"category_id"`
	PointsRequired int    `json:"points_required"`
}

// ResourceList is one page of resources.
type ResourceList struct {
	Resources []Resource `json:"resources"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PageSize  int        `json:"pageSize"`
}

// Comment is a remark left on a resource.
type Comment struct {
	ID         uint      `json:"id"`
	ResourceID uint      `json:"resource_id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// UploadedFile describes a file held by the upload area.
type UploadedFile struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	Type      string    `json:"type"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Download is a binary response body. The caller must close Body.
type Download struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
