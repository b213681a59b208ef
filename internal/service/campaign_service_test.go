package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/consts"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func seedCampaigns() *memStore {
	m := seedReport()
	m.objectives[1] = &model.Objective{ID: 1, Name: "Awareness", Slug: "awareness"}
	return m
}

func newTestCampaignService(m *memStore, cache Cache) CampaignService {
	return NewCampaignService(&fakeCampaignRepo{m}, &fakeChannelRepo{m}, &fakeObjectiveRepo{m}, &fakePostRepo{m}, cache)
}

func strPtr(s string) *string { return &s }

func TestGetCampaignDetailSeries(t *testing.T) {
	svc := newTestCampaignService(seedCampaigns(), nil)

	detail, err := svc.GetCampaignDetail(context.Background(), 1, 100)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Name != "Spring" || detail.Channel == nil || detail.Channel.Name != "Instagram" {
		t.Errorf("unexpected campaign: %+v", detail.CampaignDTO)
	}
	if len(detail.Posts) != 2 || detail.Posts[0].CampaignName != "Spring" {
		t.Fatalf("unexpected posts: %+v", detail.Posts)
	}
	if detail.Posts[1].Metrics != nil {
		t.Errorf("post without metrics should have nil metrics")
	}

	chart := detail.Chart
	if len(chart.Labels) != 2 || chart.Labels[0] != "Mar 02" || chart.Labels[1] != "Mar 03" {
		t.Errorf("labels = %v", chart.Labels)
	}
	if chart.Impressions[0] != 100 || chart.Impressions[1] != 0 || chart.Clicks[0] != 2 {
		t.Errorf("impressions = %v clicks = %v", chart.Impressions, chart.Clicks)
	}
	if chart.Engagement[0] != 0.2 || chart.Engagement[1] != 0 {
		t.Errorf("engagement = %v", chart.Engagement)
	}
}

func TestGetCampaignDetailNotOwned(t *testing.T) {
	svc := newTestCampaignService(seedCampaigns(), nil)
	for _, id := range []uint64{200, 999} {
		if _, err := svc.GetCampaignDetail(context.Background(), 1, id); !errors.Is(err, ErrCampaignNotFound) {
			t.Errorf("campaign %d: err = %v, want ErrCampaignNotFound", id, err)
		}
	}
}

func TestGetCampaignsOnlyOwn(t *testing.T) {
	campaigns, err := newTestCampaignService(seedCampaigns(), nil).GetCampaigns(context.Background(), 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(campaigns) != 1 || campaigns[0].ID != 200 {
		t.Errorf("unexpected campaigns: %+v", campaigns)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	valid := func() *dto.CampaignBaseDTO {
		return &dto.CampaignBaseDTO{
			Name:        "Winter",
			ChannelID:   10,
			ObjectiveID: 1,
			StartDate:   "2024-12-01",
			EndDate:     strPtr("2024-12-31"),
			Budget:      decimal.RequireFromString("1500.50"),
		}
	}

	cases := []struct {
		name   string
		mutate func(in *dto.CampaignBaseDTO)
		want   error
	}{
		{"end before start", func(in *dto.CampaignBaseDTO) { in.EndDate = strPtr("2024-11-30") }, ErrCampaignDateInvalid},
		{"bad start", func(in *dto.CampaignBaseDTO) { in.StartDate = "12/01/2024" }, ErrParamInvalid},
		{"negative budget", func(in *dto.CampaignBaseDTO) { in.Budget = decimal.RequireFromString("-1") }, ErrCampaignBudget},
		{"three decimals", func(in *dto.CampaignBaseDTO) { in.Budget = decimal.RequireFromString("1.005") }, ErrCampaignBudget},
		{"too large", func(in *dto.CampaignBaseDTO) { in.Budget = decimal.RequireFromString("100000000") }, ErrCampaignBudget},
		{"foreign channel", func(in *dto.CampaignBaseDTO) { in.ChannelID = 20 }, ErrChannelNotFound},
		{"missing objective", func(in *dto.CampaignBaseDTO) { in.ObjectiveID = 9 }, ErrObjectiveNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid()
			c.mutate(in)
			_, err := newTestCampaignService(seedCampaigns(), nil).CreateCampaign(context.Background(), 1, in)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}

	m := seedCampaigns()
	cache := newFakeCache()
	created, err := newTestCampaignService(m, cache).CreateCampaign(context.Background(), 1, valid())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.EndDate == nil || *created.EndDate != "2024-12-31" || created.Objective.Slug != "awareness" {
		t.Errorf("unexpected campaign: %+v", created)
	}
	if _, ok := m.campaigns[created.ID]; !ok {
		t.Errorf("campaign not stored")
	}
	if cache.values[consts.ReportVersionKey+"1"] != "1" {
		t.Errorf("report version not bumped")
	}
}

func TestValidateBudget(t *testing.T) {
	for _, ok := range []string{"0", "0.01", "99999999.99", "12.5"} {
		if err := ValidateBudget(decimal.RequireFromString(ok)); err != nil {
			t.Errorf("%s should be valid: %v", ok, err)
		}
	}
	for _, bad := range []string{"-0.01", "0.001", "100000000"} {
		if err := ValidateBudget(decimal.RequireFromString(bad)); !errors.Is(err, ErrCampaignBudget) {
			t.Errorf("%s should be rejected", bad)
		}
	}
}

func TestUpdateCampaignNotOwned(t *testing.T) {
	in := &dto.CampaignBaseDTO{Name: "x", ChannelID: 20, ObjectiveID: 1, StartDate: "2024-01-01"}
	err := newTestCampaignService(seedCampaigns(), nil).UpdateCampaign(context.Background(), 1, 200, in)
	if !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("err = %v, want ErrCampaignNotFound", err)
	}
}

func TestDeleteCampaignMarksPostsDirty(t *testing.T) {
	m := seedCampaigns()
	cache := newFakeCache()

	if err := newTestCampaignService(m, cache).DeleteCampaign(context.Background(), 1, 100); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := m.campaigns[100]; ok {
		t.Errorf("campaign still present")
	}
	if _, ok := m.posts[1]; ok {
		t.Errorf("posts should cascade")
	}
	dirty := cache.sets[consts.PostIndexDirtyKey]
	if len(dirty) != 2 || dirty[0] != "1" || dirty[1] != "2" {
		t.Errorf("dirty set = %v, want [1 2]", dirty)
	}
	if cache.values[consts.ReportVersionKey+"1"] != "1" {
		t.Errorf("report version not bumped")
	}
}

func TestChannelService(t *testing.T) {
	m := seedCampaigns()
	cache := newFakeCache()
	svc := NewChannelService(&fakeChannelRepo{m}, &fakePostRepo{m}, cache)
	ctx := context.Background()

	if _, err := svc.GetChannel(ctx, 1, 20); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("foreign channel: err = %v", err)
	}
	if err := svc.UpdateChannel(ctx, 1, 20, &dto.ChannelBaseDTO{Name: "x"}); !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("update foreign channel: err = %v", err)
	}

	created, err := svc.CreateChannel(ctx, 1, &dto.ChannelBaseDTO{Name: "YouTube", PlatformHandle: "@lens"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.PlatformHandle != "@lens" || m.channels[created.ID].OwnerID != 1 {
		t.Errorf("unexpected channel: %+v", created)
	}

	channels, err := svc.GetChannels(ctx, 1)
	if err != nil || len(channels) != 3 {
		t.Fatalf("channels = %d, err = %v", len(channels), err)
	}

	if err = svc.DeleteChannel(ctx, 1, 10); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := m.campaigns[101]; ok {
		t.Errorf("campaigns should cascade")
	}
	if dirty := cache.sets[consts.PostIndexDirtyKey]; len(dirty) != 3 {
		t.Errorf("dirty set = %v, want posts 1 2 3", dirty)
	}
	if cache.values[consts.ReportVersionKey+"1"] != "2" {
		t.Errorf("report version = %q, want 2", cache.values[consts.ReportVersionKey+"1"])
	}
}

func TestObjectiveService(t *testing.T) {
	m := newMemStore()
	svc := NewObjectiveService(&fakeObjectiveRepo{m})
	ctx := context.Background()

	created, err := svc.CreateObjective(ctx, &dto.ObjectiveBaseDTO{Name: " Brand Awareness "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "brand-awareness" || created.Name != "Brand Awareness" {
		t.Errorf("unexpected objective: %+v", created)
	}

	if _, err = svc.CreateObjective(ctx, &dto.ObjectiveBaseDTO{Name: "Conversions", Slug: "Sales Push!"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err = svc.CreateObjective(ctx, &dto.ObjectiveBaseDTO{Name: "Brand Awareness"}); !errors.Is(err, ErrObjectiveExist) {
		t.Errorf("duplicate: err = %v, want ErrObjectiveExist", err)
	}
	if _, err = svc.CreateObjective(ctx, &dto.ObjectiveBaseDTO{Name: "!!!"}); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("empty slug: err = %v, want ErrParamInvalid", err)
	}

	objectives, err := svc.GetObjectives(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objectives) != 2 || objectives[0].Name != "Brand Awareness" || objectives[1].Slug != "sales-push" {
		t.Errorf("unexpected objectives: %+v", objectives)
	}
}
