package model

// CityStat is the aggregate of one city's observations for the selected role.
type CityStat struct {
	// City is the metro area name.
	City string

	// Count is the number of observations for this city and role.
	Count int

	// Average is the arithmetic mean salary ("city average").
	Average float64
}

// TopCityPremium is a ranked CityStat augmented with its difference from
// the national average of the same role.
type TopCityPremium struct {
	CityStat

	// NationalAverage is the mean salary of the role across all cities.
	NationalAverage float64

	// Premium is Average - NationalAverage.
	Premium float64

	// PremiumPct is 100 * Premium / NationalAverage.
	PremiumPct float64
}

// Summary is the aggregated result for one role.
// It is built once by the analysis package and then only read.
type Summary struct {
	// Role is the role the summary was computed for.
	Role string

	// Observations is the number of rows that matched Role.
	Observations int

	// NationalAverage is the mean salary over all observations of Role.
	NationalAverage float64

	// Top holds the top cities ranked by city average, highest first.
	Top []TopCityPremium

	// Display holds the same cities ordered by premium, lowest first.
	// It is used for chart layout only.
	Display []TopCityPremium
}

// Largest returns the city with the largest premium.
// The second return value is false when the summary has no cities.
func (s *Summary) Largest() (TopCityPremium, bool) {
	if len(s.Display) == 0 {
		return TopCityPremium{}, false
	}
	return s.Display[len(s.Display)-1], true
}
