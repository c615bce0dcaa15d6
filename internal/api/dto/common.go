package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 分页参数
type PageDTO struct {
	Page int `form:"page,default=1" validate:"min=1"`
	Size int `form:"size,default=10" validate:"min=1,max=50"`
}

func (p *PageDTO) Offset() int {
	return (p.Page - 1) * p.Size
}
