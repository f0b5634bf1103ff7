// Package analysis turns an observation table into a per-role summary.
//
// The work is split into small pure functions that can be tested on their own:
//
//	FilterByRole -> NationalAverage -> GroupByCity -> RankByAverage -> TopN -> Premiums -> DisplayOrder
//
// None of them mutate their input. Summarize chains them together.
package analysis
