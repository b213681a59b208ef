package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportRecord 报表导出记录，筛选条件保留原始字符串
type ExportRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    uint64             `bson:"user_id"`
	ObjectKey string             `bson:"object_key"`
	Channel   string             `bson:"channel"`
	StartDate string             `bson:"start_date"`
	EndDate   string             `bson:"end_date"`
	Rows      int                `bson:"rows"`
	CreatedAt time.Time          `bson:"created_at"`
}
