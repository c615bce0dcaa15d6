package dto

// NotificationDTO 站内通知
type NotificationDTO struct {
	ID        string         `json:"id"`
	SenderID  uint64         `json:"sender_id"`
	Type      int8           `json:"type"`
	ArticleID uint64         `json:"article_id"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
}

// UnreadCountDTO 未读数
type UnreadCountDTO struct {
	Count int64 `json:"count"`
}
