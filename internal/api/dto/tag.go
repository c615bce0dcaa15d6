package dto

// TagDTO 标签
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
