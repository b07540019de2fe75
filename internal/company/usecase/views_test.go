package usecase

import (
	"context"
	"testing"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCompanies() []model.Company {
	return []model.Company{
		{ID: 1, Name: "Tech Corp", Industry: "Technology", Country: "USA", ReputationScore: 80, RiskScore: 20,
			TotalMentions: 10, PositiveMentions: 6, NeutralMentions: 3, NegativeMentions: 1},
		{ID: 2, Name: "Bank Inc", Industry: "Finance", Country: "UK", ReputationScore: 60, RiskScore: 40,
			TotalMentions: 10, PositiveMentions: 2, NeutralMentions: 4, NegativeMentions: 4},
		{ID: 3, Name: "Data Labs", Industry: "Technology", Country: "Germany", ReputationScore: 70, RiskScore: 30},
	}
}

func TestFilterCompanies(t *testing.T) {
	records := sampleCompanies()

	tcs := map[string]struct {
		filters company.Filters
		want    []int64
	}{
		"no criteria":              {company.Filters{}, []int64{1, 2, 3}},
		"search by name":           {company.Filters{Search: "tech corp"}, []int64{1}},
		"search by industry":       {company.Filters{Search: "TECHNO"}, []int64{1, 3}},
		"industry exact":           {company.Filters{Industry: "Finance"}, []int64{2}},
		"industry is not a prefix": {company.Filters{Industry: "Tech"}, nil},
		"country and industry":     {company.Filters{Industry: "Technology", Country: "Germany"}, []int64{3}},
		"no match":                 {company.Filters{Search: "zzz"}, nil},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			var got []int64
			for _, r := range filterCompanies(records, tc.filters) {
				got = append(got, r.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAverageReputation(t *testing.T) {
	assert.Zero(t, averageReputation(nil))
	assert.Equal(t, 85.0, averageReputation([]model.Company{{ReputationScore: 85}}))
	assert.InDelta(t, 70.0, averageReputation(sampleCompanies()), 1e-9)
}

func TestBuildFacets(t *testing.T) {
	got := buildFacets(sampleCompanies())
	assert.Equal(t, []string{"Finance", "Technology"}, got.Industries)
	assert.Equal(t, []string{"Germany", "UK", "USA"}, got.Countries)

	empty := buildFacets(nil)
	assert.Empty(t, empty.Industries)
	assert.Empty(t, empty.Countries)
}

func TestBuildStats(t *testing.T) {
	got := buildStats(sampleCompanies())

	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 30.0, got.AverageRisk, 1e-9)
	assert.Equal(t, int64(20), got.Mentions.Total)
	assert.Equal(t, int64(8), got.Mentions.Positive)
	assert.InDelta(t, 40.0, got.Mentions.PositivePercent, 1e-9)
	assert.InDelta(t, 35.0, got.Mentions.NeutralPercent, 1e-9)
	assert.InDelta(t, 25.0, got.Mentions.NegativePercent, 1e-9)
	assert.Equal(t, []company.BucketCount{
		{Value: "Technology", Count: 2},
		{Value: "Finance", Count: 1},
	}, got.ByIndustry)

	empty := buildStats(nil)
	assert.Zero(t, empty.AverageReputation)
	assert.Zero(t, empty.Mentions.PositivePercent)
	assert.NotNil(t, empty.ByIndustry)
}

func TestView_UsesStoredFilters(t *testing.T) {
	f := newFixture()
	seed(f, 42, sampleCompanies()...)
	focusedOnly := model.Company{ID: 99, Name: "Tech Corp Subsidiary", Industry: "Technology"}
	f.repo.SetFocused(&focusedOnly)

	f.uc.SetFilters(context.Background(), company.Filters{Search: "Tech Corp"})
	v := f.uc.View(context.Background())
	require.Len(t, v.Companies, 1, "focused-only records are not part of the view")
	assert.Equal(t, "Tech Corp", v.Companies[0].Name)
	assert.Equal(t, int64(42), v.Total)
	assert.Equal(t, 3, v.Cached)

	// derived values follow the cache without recomputation hooks
	f.repo.Remove(1)
	assert.Empty(t, f.uc.View(context.Background()).Companies)

	f.uc.ClearFilters(context.Background())
	assert.Len(t, f.uc.View(context.Background()).Companies, 2)
	assert.Equal(t, []string{"Finance", "Technology"}, f.uc.Facets(context.Background()).Industries)
	assert.InDelta(t, 65.0, f.uc.AverageReputation(context.Background()), 1e-9)
	assert.Equal(t, int64(42), f.uc.Stats(context.Background()).Total)
}
