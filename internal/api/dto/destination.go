package dto

// DestinationDTO 目的地
type DestinationDTO struct {
	ID            uint64  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	ArticleID     uint64  `json:"article_id"`
	ContinentID   *uint64 `json:"continent_id,omitempty"`
	ContinentName *string `json:"continent_name,omitempty"`
}

// ContinentDTO 大洲
type ContinentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// ListDestinationDTO 按大洲筛选目的地
type ListDestinationDTO struct {
	ContinentID *uint64 `form:"continent_id"`
	PageDTO
}
