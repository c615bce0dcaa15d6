package model

import "time"

// ProfileInterest 用户兴趣标签，兴趣变更是推荐重建的触发点
type ProfileInterest struct {
	UserID    uint64 `gorm:"primaryKey" json:"user_id"`
	TagID     uint64 `gorm:"primaryKey;index:idx_interest_tag" json:"tag_id"`
	CreatedAt time.Time
}

func (ProfileInterest) TableName() string {
	return "profile_interests"
}
