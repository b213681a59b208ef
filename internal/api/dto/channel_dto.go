package dto

import "time"

// ChannelBaseDTO 创建 / 修改渠道
type ChannelBaseDTO struct {
	Name           string `json:"name" binding:"required" validate:"min=1,max=100"`
	PlatformHandle string `json:"platform_handle" validate:"max=100"`
	Description    string `json:"description" validate:"max=2000"`
}

// ChannelDTO 渠道返回对象
type ChannelDTO struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	PlatformHandle string    `json:"platform_handle"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
}
