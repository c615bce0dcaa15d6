package service

import (
	"Wayfarer/internal/api/dto"
	"Wayfarer/internal/pkg/consts"
	"Wayfarer/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	NotifyRating(ctx context.Context, receiverID, senderID, articleID uint64, articleTitle string, score int) error
	NotifyComment(ctx context.Context, receiverID, senderID, articleID uint64, articleTitle, preview string) error
	GetNotifications(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.NotificationDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type notificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
}

func NewNotificationService(notificationRepo mongo.NotificationRepo) NotificationService {
	return &notificationServiceImpl{notificationRepo: notificationRepo}
}

// NotifyRating 文章收到评分时通知作者，自己给自己的动作不通知
func (s *notificationServiceImpl) NotifyRating(ctx context.Context, receiverID, senderID, articleID uint64, articleTitle string, score int) error {
	if receiverID == senderID {
		return nil
	}
	return s.notificationRepo.CreateNotification(ctx, &mongo.NotificationModel{
		ReceiverID: receiverID,
		SenderID:   senderID,
		Type:       consts.NotificationTypeRating,
		ArticleID:  articleID,
		Content:    articleTitle,
		Payload:    map[string]any{"score": score},
		CreatedAt:  time.Now(),
	})
}

// NotifyComment 文章收到评论时通知作者
func (s *notificationServiceImpl) NotifyComment(ctx context.Context, receiverID, senderID, articleID uint64, articleTitle, preview string) error {
	if receiverID == senderID {
		return nil
	}
	if len(preview) > 100 {
		preview = preview[:100]
	}
	return s.notificationRepo.CreateNotification(ctx, &mongo.NotificationModel{
		ReceiverID: receiverID,
		SenderID:   senderID,
		Type:       consts.NotificationTypeComment,
		ArticleID:  articleID,
		Content:    preview,
		Payload:    map[string]any{"article_title": articleTitle},
		CreatedAt:  time.Now(),
	})
}

func (s *notificationServiceImpl) GetNotifications(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.NotificationDTO, error) {
	msgs, err := s.notificationRepo.GetNotificationList(ctx, userID, int64(page.Size), int64(page.Offset()))
	if err != nil {
		return nil, err
	}
	list := make([]*dto.NotificationDTO, 0, len(msgs))
	for _, msg := range msgs {
		list = append(list, &dto.NotificationDTO{
			ID:        msg.ID.Hex(),
			SenderID:  msg.SenderID,
			Type:      msg.Type,
			ArticleID: msg.ArticleID,
			Content:   msg.Content,
			Payload:   msg.Payload,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return list, nil
}

func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	err := s.notificationRepo.MarkAsRead(ctx, userID, msgID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) || errors.Is(err, mongodriver.ErrInvalidIndexValue) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}
