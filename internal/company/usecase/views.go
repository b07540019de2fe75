package usecase

import (
	"context"
	"slices"
	"strings"

	"dashboard-srv/internal/company"
	"dashboard-srv/internal/model"
)

// Derived views are recomputed from a fresh snapshot on every call and never memoized.

func (uc *implUseCase) View(_ context.Context) company.View {
	snap := uc.repo.Snapshot()
	return company.View{
		Companies: filterCompanies(snap.Records, snap.Filters),
		Filters:   snap.Filters,
		Total:     snap.Total,
		Cached:    len(snap.Records),
	}
}

func (uc *implUseCase) Facets(_ context.Context) company.Facets {
	return buildFacets(uc.repo.List())
}

func (uc *implUseCase) AverageReputation(_ context.Context) float64 {
	return averageReputation(uc.repo.List())
}

func (uc *implUseCase) Stats(_ context.Context) company.Stats {
	snap := uc.repo.Snapshot()
	stats := buildStats(snap.Records)
	stats.Total = snap.Total
	return stats
}

func (uc *implUseCase) Focused(_ context.Context) (model.Company, error) {
	rec, ok := uc.repo.Focused()
	if !ok {
		return model.Company{}, company.ErrNoFocused
	}
	return rec, nil
}

func (uc *implUseCase) SetFilters(_ context.Context, f company.Filters) {
	uc.repo.SetFilters(f)
}

func (uc *implUseCase) ClearFilters(_ context.Context) {
	uc.repo.ClearFilters()
}

// filterCompanies keeps records matching every non-empty criterion.
// Search is a case-insensitive substring of name or industry; industry and
// country match exactly.
func filterCompanies(records []model.Company, f company.Filters) []model.Company {
	search := strings.ToLower(f.Search)
	out := make([]model.Company, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Industry), search) {
			continue
		}
		if f.Industry != "" && r.Industry != f.Industry {
			continue
		}
		if f.Country != "" && r.Country != f.Country {
			continue
		}
		out = append(out, r)
	}
	return out
}

func buildFacets(records []model.Company) company.Facets {
	return company.Facets{
		Industries: distinctSorted(records, func(r model.Company) string { return r.Industry }),
		Countries:  distinctSorted(records, func(r model.Company) string { return r.Country }),
	}
}

func distinctSorted(records []model.Company, key func(model.Company) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		v := key(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// averageReputation is 0 for an empty slice.
func averageReputation(records []model.Company) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.ReputationScore
	}
	return sum / float64(len(records))
}

func buildStats(records []model.Company) company.Stats {
	stats := company.Stats{
		Count:             len(records),
		AverageReputation: averageReputation(records),
		ByIndustry:        []company.BucketCount{},
	}
	if len(records) == 0 {
		return stats
	}

	var risk float64
	industries := make(map[string]int)
	for _, r := range records {
		risk += r.RiskScore
		stats.Mentions.Positive += r.PositiveMentions
		stats.Mentions.Neutral += r.NeutralMentions
		stats.Mentions.Negative += r.NegativeMentions
		stats.Mentions.Total += r.TotalMentions
		industries[r.Industry]++
	}
	stats.AverageRisk = risk / float64(len(records))

	if total := stats.Mentions.Total; total > 0 {
		stats.Mentions.PositivePercent = percentage(stats.Mentions.Positive, total)
		stats.Mentions.NeutralPercent = percentage(stats.Mentions.Neutral, total)
		stats.Mentions.NegativePercent = percentage(stats.Mentions.Negative, total)
	}

	for v, n := range industries {
		stats.ByIndustry = append(stats.ByIndustry, company.BucketCount{Value: v, Count: n})
	}
	slices.SortFunc(stats.ByIndustry, func(a, b company.BucketCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Value, b.Value)
	})
	return stats
}

func percentage(part, total int64) float64 {
	return float64(part) / float64(total) * 100
}
