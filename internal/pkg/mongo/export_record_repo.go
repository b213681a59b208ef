package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExportRecordRepo interface {
	CreateRecord(ctx context.Context, record *ExportRecord) error
	GetRecordList(ctx context.Context, userID uint64, limit, offset int64) ([]*ExportRecord, error)
	CountRecords(ctx context.Context, userID uint64) (int64, error)
}

type exportRecordRepoImpl struct {
	col *mongo.Collection
}

func NewExportRecordRepo(db *mongo.Database) ExportRecordRepo {
	return &exportRecordRepoImpl{
		col: db.Collection(exportCollection),
	}
}

func (s *exportRecordRepoImpl) CreateRecord(ctx context.Context, record *ExportRecord) error {
	res, err := s.col.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}
	return nil
}

// GetRecordList 分页获取用户的导出记录 (按时间倒序)
func (s *exportRecordRepoImpl) GetRecordList(ctx context.Context, userID uint64, limit, offset int64) ([]*ExportRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*ExportRecord, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *exportRecordRepoImpl) CountRecords(ctx context.Context, userID uint64) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"user_id": userID})
}
