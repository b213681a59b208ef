package dto

// ObjectiveBaseDTO 创建营销目标，slug 为空时由名称生成
type ObjectiveBaseDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=120"`
	Description string `json:"description"`
}

type ObjectiveDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
