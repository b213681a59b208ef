package service

import (
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/mongo"
	"CampaignLens/internal/repository"
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// memStore 内存版存储，供各 fake repo 共享
type memStore struct {
	users      map[uint64]*model.User
	channels   map[uint64]*model.Channel
	objectives map[uint64]*model.Objective
	campaigns  map[uint64]*model.Campaign
	posts      map[uint64]*model.Post
	metrics    map[uint64]*model.PostMetrics
	nextID     uint64

	campaignQueries int
	failCampaigns   error
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint64]*model.User{},
		channels:   map[uint64]*model.Channel{},
		objectives: map[uint64]*model.Objective{},
		campaigns:  map[uint64]*model.Campaign{},
		posts:      map[uint64]*model.Post{},
		metrics:    map[uint64]*model.PostMetrics{},
		nextID:     1000,
	}
}

func (m *memStore) id() uint64 {
	m.nextID++
	return m.nextID
}

func date(s string) datatypes.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(t)
}

func (m *memStore) addChannel(id, owner uint64, name string) *model.Channel {
	ch := &model.Channel{ID: id, OwnerID: owner, Name: name}
	m.channels[id] = ch
	return ch
}

func (m *memStore) addCampaign(id, channelID uint64, name, start string) *model.Campaign {
	c := &model.Campaign{ID: id, ChannelID: channelID, ObjectiveID: 1, Name: name, StartDate: date(start)}
	m.campaigns[id] = c
	return c
}

func (m *memStore) addPost(id, campaignID uint64, postDate string, metrics *model.PostMetrics) *model.Post {
	p := &model.Post{ID: id, CampaignID: campaignID, PostDate: date(postDate), ContentType: model.ContentTypeImage}
	m.posts[id] = p
	if metrics != nil {
		metrics.PostID = id
		m.metrics[id] = metrics
	}
	return p
}

func (m *memStore) campaignWithRelations(c *model.Campaign) *model.Campaign {
	cp := *c
	if ch, ok := m.channels[c.ChannelID]; ok {
		cp.Channel = *ch
	}
	if o, ok := m.objectives[c.ObjectiveID]; ok {
		cp.Objective = *o
	}
	return &cp
}

func (m *memStore) postWithRelations(p *model.Post) *model.Post {
	cp := *p
	if met, ok := m.metrics[p.ID]; ok {
		mc := *met
		cp.Metrics = &mc
	}
	if c, ok := m.campaigns[p.CampaignID]; ok {
		cp.Campaign = *m.campaignWithRelations(c)
	}
	return &cp
}

func sortedKeys[V any](src map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type fakeUserRepo struct{ m *memStore }

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = r.m.id()
	r.m.users[user.ID] = user
	return nil
}

type fakeChannelRepo struct{ m *memStore }

func (r *fakeChannelRepo) GetChannelsByOwner(_ context.Context, ownerID uint64) ([]*model.Channel, error) {
	res := make([]*model.Channel, 0)
	for _, id := range sortedKeys(r.m.channels) {
		if ch := r.m.channels[id]; ch.OwnerID == ownerID {
			res = append(res, ch)
		}
	}
	return res, nil
}

func (r *fakeChannelRepo) GetChannel(_ context.Context, id uint64) (*model.Channel, error) {
	return r.m.channels[id], nil
}

func (r *fakeChannelRepo) CreateChannel(_ context.Context, channel *model.Channel) error {
	channel.ID = r.m.id()
	r.m.channels[channel.ID] = channel
	return nil
}

func (r *fakeChannelRepo) UpdateChannel(_ context.Context, channel *model.Channel) error {
	r.m.channels[channel.ID] = channel
	return nil
}

func (r *fakeChannelRepo) DeleteChannel(_ context.Context, id uint64) error {
	for cid, c := range r.m.campaigns {
		if c.ChannelID == id {
			(&fakeCampaignRepo{r.m}).DeleteCampaign(context.Background(), cid)
		}
	}
	delete(r.m.channels, id)
	return nil
}

type fakeObjectiveRepo struct{ m *memStore }

func (r *fakeObjectiveRepo) GetObjectives(_ context.Context) ([]*model.Objective, error) {
	res := make([]*model.Objective, 0)
	for _, id := range sortedKeys(r.m.objectives) {
		res = append(res, r.m.objectives[id])
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *fakeObjectiveRepo) GetObjective(_ context.Context, id uint64) (*model.Objective, error) {
	return r.m.objectives[id], nil
}

func (r *fakeObjectiveRepo) CreateObjective(_ context.Context, o *model.Objective) error {
	for _, existing := range r.m.objectives {
		if existing.Name == o.Name || existing.Slug == o.Slug {
			return gorm.ErrDuplicatedKey
		}
	}
	o.ID = r.m.id()
	r.m.objectives[o.ID] = o
	return nil
}

type fakeCampaignRepo struct{ m *memStore }

func (r *fakeCampaignRepo) FindCampaigns(_ context.Context, q repository.CampaignQuery) ([]*model.Campaign, error) {
	r.m.campaignQueries++
	if r.m.failCampaigns != nil {
		return nil, r.m.failCampaigns
	}
	res := make([]*model.Campaign, 0)
	for _, id := range sortedKeys(r.m.campaigns) {
		c := r.m.campaigns[id]
		ch, ok := r.m.channels[c.ChannelID]
		if !ok || ch.OwnerID != q.OwnerID {
			continue
		}
		if q.ChannelID != nil && c.ChannelID != *q.ChannelID {
			continue
		}
		start := c.StartTime()
		if q.StartFrom != nil && start.Before(*q.StartFrom) {
			continue
		}
		if q.StartTo != nil && start.After(*q.StartTo) {
			continue
		}
		res = append(res, r.m.campaignWithRelations(c))
	}
	return res, nil
}

func (r *fakeCampaignRepo) GetCampaign(_ context.Context, id uint64) (*model.Campaign, error) {
	c, ok := r.m.campaigns[id]
	if !ok {
		return nil, nil
	}
	return r.m.campaignWithRelations(c), nil
}

func (r *fakeCampaignRepo) CreateCampaign(_ context.Context, c *model.Campaign) error {
	c.ID = r.m.id()
	stored := *c
	r.m.campaigns[c.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) UpdateCampaign(_ context.Context, c *model.Campaign) error {
	stored := *c
	r.m.campaigns[c.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) DeleteCampaign(_ context.Context, id uint64) error {
	for pid, p := range r.m.posts {
		if p.CampaignID == id {
			delete(r.m.metrics, pid)
			delete(r.m.posts, pid)
		}
	}
	delete(r.m.campaigns, id)
	return nil
}

type fakePostRepo struct{ m *memStore }

func (r *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	p, ok := r.m.posts[id]
	if !ok {
		return nil, nil
	}
	return r.m.postWithRelations(p), nil
}

func (r *fakePostRepo) GetPostsByIds(_ context.Context, ids []uint64) ([]*model.Post, error) {
	res := make([]*model.Post, 0)
	for _, id := range ids {
		if p, ok := r.m.posts[id]; ok {
			res = append(res, r.m.postWithRelations(p))
		}
	}
	return res, nil
}

func (r *fakePostRepo) GetPostsByCampaign(_ context.Context, campaignID uint64) ([]*model.Post, error) {
	res := make([]*model.Post, 0)
	for _, id := range sortedKeys(r.m.posts) {
		if p := r.m.posts[id]; p.CampaignID == campaignID {
			cp := *p
			if met, ok := r.m.metrics[id]; ok {
				cp.Metrics = met
			}
			res = append(res, &cp)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return time.Time(res[i].PostDate).Before(time.Time(res[j].PostDate))
	})
	return res, nil
}

func (r *fakePostRepo) GetPostsByCampaignIds(_ context.Context, campaignIDs []uint64) ([]*model.Post, error) {
	wanted := make(map[uint64]bool, len(campaignIDs))
	for _, id := range campaignIDs {
		wanted[id] = true
	}
	res := make([]*model.Post, 0)
	for _, id := range sortedKeys(r.m.posts) {
		if p := r.m.posts[id]; wanted[p.CampaignID] {
			cp := *p
			if met, ok := r.m.metrics[id]; ok {
				cp.Metrics = met
			}
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (r *fakePostRepo) GetPostIdsByCampaign(_ context.Context, campaignID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	for _, id := range sortedKeys(r.m.posts) {
		if r.m.posts[id].CampaignID == campaignID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakePostRepo) GetPostIdsByChannel(_ context.Context, channelID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	for _, id := range sortedKeys(r.m.posts) {
		if c, ok := r.m.campaigns[r.m.posts[id].CampaignID]; ok && c.ChannelID == channelID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakePostRepo) CreatePost(_ context.Context, p *model.Post) error {
	p.ID = r.m.id()
	stored := *p
	stored.Campaign = model.Campaign{}
	r.m.posts[p.ID] = &stored
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	delete(r.m.metrics, id)
	delete(r.m.posts, id)
	return nil
}

type fakeMetricsRepo struct{ m *memStore }

func (r *fakeMetricsRepo) SaveOrUpdateMetrics(_ context.Context, metrics *model.PostMetrics) error {
	stored := *metrics
	r.m.metrics[metrics.PostID] = &stored
	return nil
}

// fakeCache 内存版 Cache
type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	sets   map[string][]string
	err    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, sets: map[string][]string{}}
}

func (c *fakeCache) GetValue(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return c.values[key], nil
}

func (c *fakeCache) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	switch v := value.(type) {
	case []byte:
		c.values[key] = string(v)
	case string:
		c.values[key] = v
	case bool:
		c.values[key] = strconv.FormatBool(v)
	default:
		return errors.New("unsupported value")
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	n, _ := strconv.ParseInt(c.values[key], 10, 64)
	n++
	c.values[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (c *fakeCache) AddSet(_ context.Context, key string, members ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	for _, m := range members {
		c.sets[key] = append(c.sets[key], m.(string))
	}
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return objectName, nil
}

func (s *fakeStorage) PresignedGetURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://minio.local/campaign-reports/" + objectName + "?sig=1", nil
}

// fakeExportRepo 按插入顺序保存，列表按时间倒序返回
type fakeExportRepo struct {
	records []*mongo.ExportRecord
	err     error
}

func (r *fakeExportRepo) CreateRecord(_ context.Context, record *mongo.ExportRecord) error {
	if r.err != nil {
		return r.err
	}
	record.ID = primitive.NewObjectID()
	r.records = append(r.records, record)
	return nil
}

func (r *fakeExportRepo) GetRecordList(_ context.Context, userID uint64, limit, offset int64) ([]*mongo.ExportRecord, error) {
	mine := make([]*mongo.ExportRecord, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			mine = append(mine, r.records[i])
		}
	}
	if offset >= int64(len(mine)) {
		return []*mongo.ExportRecord{}, nil
	}
	end := offset + limit
	if end > int64(len(mine)) {
		end = int64(len(mine))
	}
	return mine[offset:end], nil
}

func (r *fakeExportRepo) CountRecords(_ context.Context, userID uint64) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.UserID == userID {
			n++
		}
	}
	return n, nil
}
