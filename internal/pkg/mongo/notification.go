package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationModel 站内通知模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 消息接收者ID（文章作者）
	SenderID   uint64             `bson:"sender_id" json:"senderId"`     // 动作发起者ID
	Type       int8               `bson:"type" json:"type"`              // 通知类型: 1-文章被评分, 2-文章被评论
	ArticleID  uint64             `bson:"article_id" json:"articleId"`   // 关联文章ID
	Content    string             `bson:"content" json:"content"`        // 通知文案预览或评论片段
	Payload    map[string]any     `bson:"payload" json:"payload"`        // 额外元数据（如文章标题快照）
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
