package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/es"
	"context"
	"errors"
	"testing"
)

type fakePostIndex struct {
	query *es.PostSearchQuery
	docs  []*es.PostES
	err   error
}

func (f *fakePostIndex) SearchPosts(_ context.Context, q *es.PostSearchQuery) ([]*es.PostES, int64, error) {
	f.query = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.docs, int64(len(f.docs)), nil
}

func (f *fakePostIndex) IndexPost(context.Context, *es.PostES, int64) error { return nil }

func (f *fakePostIndex) DeletePost(context.Context, uint64) error { return nil }

func newTestPostService(m *memStore, index es.PostRepo, cache Cache) PostService {
	return NewPostService(index, &fakePostRepo{m}, &fakeMetricsRepo{m}, &fakeCampaignRepo{m}, cache)
}

func TestCreatePost(t *testing.T) {
	m := seedCampaigns()
	cache := newFakeCache()
	svc := newTestPostService(m, nil, cache)
	ctx := context.Background()

	in := &dto.PostBaseDTO{CampaignID: 101, PostDate: "2024-06-05", ContentType: "reel", Caption: "summer drop"}
	post, err := svc.CreatePost(ctx, 1, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ContentType != model.ContentTypeReel || post.CampaignName != "Summer" || post.Metrics != nil {
		t.Errorf("unexpected post: %+v", post)
	}
	if dirty := cache.sets[consts.PostIndexDirtyKey]; len(dirty) != 1 {
		t.Errorf("new post should be queued for indexing: %v", dirty)
	}

	in.ContentType = "GIF"
	if _, err = svc.CreatePost(ctx, 1, in); !errors.Is(err, ErrContentTypeInvalid) {
		t.Errorf("content type: err = %v", err)
	}
	in.ContentType = "IMAGE"
	in.CampaignID = 200
	if _, err = svc.CreatePost(ctx, 1, in); !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("foreign campaign: err = %v", err)
	}
}

func TestPostOwnership(t *testing.T) {
	svc := newTestPostService(seedCampaigns(), nil, nil)
	ctx := context.Background()

	if _, err := svc.GetPost(ctx, 1, 5); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("get foreign post: err = %v", err)
	}
	if err := svc.DeletePost(ctx, 1, 5); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("delete foreign post: err = %v", err)
	}
	if err := svc.UpdatePostMetrics(ctx, 1, 5, &dto.PostMetricsDTO{}); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("update foreign metrics: err = %v", err)
	}

	post, err := svc.GetPost(ctx, 1, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.Metrics == nil || post.Metrics.Impressions != 100 || post.PostDate != "2024-03-02" {
		t.Errorf("unexpected post: %+v", post)
	}
}

func TestUpdatePostMetricsUpserts(t *testing.T) {
	m := seedCampaigns()
	cache := newFakeCache()
	svc := newTestPostService(m, nil, cache)

	err := svc.UpdatePostMetrics(context.Background(), 1, 2, &dto.PostMetricsDTO{Impressions: 40, Likes: 4, Saves: 3})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got := m.metrics[2]
	if got == nil || got.Impressions != 40 || got.Saves != 3 {
		t.Errorf("metrics not stored: %+v", got)
	}
	if cache.values[consts.ReportVersionKey+"1"] != "1" {
		t.Errorf("report version not bumped")
	}
}

func TestIngestPostMetrics(t *testing.T) {
	m := seedCampaigns()
	cache := newFakeCache()
	svc := newTestPostService(m, nil, cache)
	ctx := context.Background()

	if err := svc.IngestPostMetrics(ctx, &model.PostMetrics{PostID: 404, Impressions: 1}); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing post: err = %v", err)
	}
	if err := svc.IngestPostMetrics(ctx, &model.PostMetrics{PostID: 1, Likes: -1}); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("negative metric: err = %v", err)
	}

	if err := svc.IngestPostMetrics(ctx, &model.PostMetrics{PostID: 5, Impressions: 7}); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if m.metrics[5].Impressions != 7 {
		t.Errorf("metrics not replaced: %+v", m.metrics[5])
	}
	// 版本号属于帖子所有者
	if cache.values[consts.ReportVersionKey+"2"] != "1" || cache.values[consts.ReportVersionKey+"1"] != "" {
		t.Errorf("wrong owner bumped: %v", cache.values)
	}
	if dirty := cache.sets[consts.PostIndexDirtyKey]; len(dirty) != 1 || dirty[0] != "5" {
		t.Errorf("dirty set = %v", dirty)
	}
}

func TestSearchPosts(t *testing.T) {
	index := &fakePostIndex{docs: []*es.PostES{{
		ID:           3,
		CampaignID:   101,
		CampaignName: "Summer",
		ContentType:  model.ContentTypeVideo,
		Caption:      "summer launch",
		PostDate:     "2024-06-02",
		Metrics:      &es.PostMetricsES{Impressions: 500, Clicks: 25},
	}}}
	svc := newTestPostService(seedCampaigns(), index, nil)
	ctx := context.Background()

	res, err := svc.SearchPosts(ctx, 1, &dto.PostSearchDTO{Keyword: "summer", ContentType: " video ", Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if index.query.OwnerID != 1 || index.query.From != 20 || index.query.Size != 10 || index.query.ContentType != "VIDEO" {
		t.Errorf("unexpected query: %+v", index.query)
	}
	if res.Total != 1 || res.Posts[0].Metrics.Clicks != 25 || res.Posts[0].CampaignName != "Summer" {
		t.Errorf("unexpected result: %+v", res)
	}

	if _, err = svc.SearchPosts(ctx, 1, &dto.PostSearchDTO{Keyword: "x", ContentType: "gif", Page: 1, PageSize: 10}); !errors.Is(err, ErrContentTypeInvalid) {
		t.Errorf("content type: err = %v", err)
	}

	index.err = errors.New("cluster red")
	if _, err = svc.SearchPosts(ctx, 1, &dto.PostSearchDTO{Keyword: "x", Page: 1, PageSize: 10}); !errors.Is(err, ErrSearchUnavailable) {
		t.Errorf("es failure: err = %v", err)
	}

	if _, err = newTestPostService(seedCampaigns(), nil, nil).SearchPosts(ctx, 1, &dto.PostSearchDTO{Keyword: "x", Page: 1, PageSize: 10}); !errors.Is(err, ErrSearchUnavailable) {
		t.Errorf("no index: err = %v", err)
	}
}
