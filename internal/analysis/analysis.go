package analysis

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/nao1215/citypremium/internal/model"
)

// FilterByRole returns the observations whose role equals role.
func FilterByRole(rows []model.Observation, role string) []model.Observation {
	filtered := make([]model.Observation, 0)
	for _, o := range rows {
		if o.Role == role {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Salaries extracts the salary column.
func Salaries(rows []model.Observation) []float64 {
	values := make([]float64, len(rows))
	for i, o := range rows {
		values[i] = o.Salary
	}
	return values
}

// NationalAverage returns the arithmetic mean salary of rows.
// It returns 0 for an empty input.
func NationalAverage(rows []model.Observation) float64 {
	if len(rows) == 0 {
		return 0
	}
	return stat.Mean(Salaries(rows), nil)
}

// GroupByCity computes count and mean salary per city, ordered by city name.
func GroupByCity(rows []model.Observation) []model.CityStat {
	salaries := make(map[string][]float64)
	for _, o := range rows {
		salaries[o.City] = append(salaries[o.City], o.Salary)
	}

	stats := make([]model.CityStat, 0, len(salaries))
	for city, values := range salaries {
		stats = append(stats, model.CityStat{
			City:    city,
			Count:   len(values),
			Average: stat.Mean(values, nil),
		})
	}
	slices.SortFunc(stats, func(a, b model.CityStat) int {
		return cmp.Compare(a.City, b.City)
	})
	return stats
}

// RankByAverage returns a copy of stats ordered by city average, highest
// first. Ties are broken by city name so the order is deterministic.
func RankByAverage(stats []model.CityStat) []model.CityStat {
	ranked := slices.Clone(stats)
	slices.SortStableFunc(ranked, func(a, b model.CityStat) int {
		if c := cmp.Compare(b.Average, a.Average); c != 0 {
			return c
		}
		return cmp.Compare(a.City, b.City)
	})
	return ranked
}

// TopN returns the first n stats, or all of them when fewer exist.
func TopN(stats []model.CityStat, n int) []model.CityStat {
	if n < 0 {
		n = 0
	}
	return slices.Clone(stats[:min(n, len(stats))])
}

// Premiums attaches the difference from the national average to each stat.
func Premiums(stats []model.CityStat, nationalAvg float64) []model.TopCityPremium {
	premiums := make([]model.TopCityPremium, len(stats))
	for i, s := range stats {
		premium := s.Average - nationalAvg
		premiums[i] = model.TopCityPremium{
			CityStat:        s,
			NationalAverage: nationalAvg,
			Premium:         premium,
			PremiumPct:      100 * premium / nationalAvg,
		}
	}
	return premiums
}

// DisplayOrder returns a copy of premiums ordered by premium, lowest first.
func DisplayOrder(premiums []model.TopCityPremium) []model.TopCityPremium {
	ordered := slices.Clone(premiums)
	slices.SortStableFunc(ordered, func(a, b model.TopCityPremium) int {
		return cmp.Compare(a.Premium, b.Premium)
	})
	return ordered
}

// Summarize builds the summary of role over table, keeping the topN cities.
// It returns a *RoleNotFoundError when the table has no rows for role.
func Summarize(table model.Table, role string, topN int) (*model.Summary, error) {
	rows := FilterByRole(table.Rows(), role)
	if len(rows) == 0 {
		return nil, &RoleNotFoundError{Role: role, Valid: table.Roles()}
	}

	national := NationalAverage(rows)
	top := Premiums(TopN(RankByAverage(GroupByCity(rows)), topN), national)

	return &model.Summary{
		Role:            role,
		Observations:    len(rows),
		NationalAverage: national,
		Top:             top,
		Display:         DisplayOrder(top),
	}, nil
}
