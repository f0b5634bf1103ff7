package model

import (
	"slices"
	"testing"
)

func sampleObservations() []Observation {
	return []Observation{
		{Year: 2024, Role: "Engineer", City: "Austin", State: "TX", Salary: 100000},
		{Year: 2024, Role: "Analyst", City: "Boston", State: "MA", Salary: 120000},
		{Year: 2024, Role: "Engineer", City: "Boston", State: "MA", Salary: 150000},
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var table Table
		if table.Len() != 0 || len(table.Rows()) != 0 || len(table.Roles()) != 0 {
			t.Error("expected empty table")
		}
	})

	t.Run("mutating the source slice does not change the table", func(t *testing.T) {
		t.Parallel()

		rows := sampleObservations()
		table := NewTable(rows)
		rows[0].Salary = 1

		if got := table.Rows()[0].Salary; got != 100000 {
			t.Errorf("expected table to keep its own copy, got %v", got)
		}
	})

	t.Run("mutating Rows does not change the table", func(t *testing.T) {
		t.Parallel()

		table := NewTable(sampleObservations())
		rows := table.Rows()
		rows[1].City = "Chicago"

		if got := table.Rows()[1].City; got != "Boston" {
			t.Errorf("expected Boston, got %s", got)
		}
	})

	t.Run("roles in first-seen order", func(t *testing.T) {
		t.Parallel()

		table := NewTable(sampleObservations())
		if got := table.Roles(); !slices.Equal(got, []string{"Engineer", "Analyst"}) {
			t.Errorf("unexpected roles %v", got)
		}
	})
}

func TestSummaryLargest(t *testing.T) {
	t.Parallel()

	t.Run("empty summary", func(t *testing.T) {
		t.Parallel()

		if _, ok := (&Summary{}).Largest(); ok {
			t.Error("expected no largest premium")
		}
	})

	t.Run("last display entry", func(t *testing.T) {
		t.Parallel()

		s := &Summary{Display: []TopCityPremium{
			{CityStat: CityStat{City: "Austin"}, Premium: -1000},
			{CityStat: CityStat{City: "Boston"}, Premium: 5000},
		}}
		got, ok := s.Largest()
		if !ok || got.City != "Boston" {
			t.Errorf("expected Boston, got %+v", got)
		}
	})
}

func TestNewRun(t *testing.T) {
	t.Parallel()

	run := NewRun("Engineer", "/tmp/out", 5)
	if run.Role != "Engineer" || run.OutputDir != "/tmp/out" || run.TopN != 5 {
		t.Errorf("unexpected run %+v", run)
	}
	if run.PerformedSteps == nil || len(run.PerformedSteps) != 0 {
		t.Error("expected empty performed steps")
	}
	if run.Summary != nil {
		t.Error("expected no summary yet")
	}
}
