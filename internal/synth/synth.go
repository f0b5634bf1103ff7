package synth

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nao1215/citypremium/internal/dataset"
	"github.com/nao1215/citypremium/internal/model"
)

// Generate draws def.Samples salaries for every (city, role) pair.
//
// Each salary is drawn from a normal distribution with mean base*multiplier
// and standard deviation StdDevRatio*mean, clamped into the salary band and
// rounded to cents. Rows are emitted city by city, role by role.
func Generate(def *dataset.Definition, seed uint64) model.Table {
	src := rand.NewPCG(seed, seed)

	rows := make([]model.Observation, 0, len(def.Cities)*len(def.Roles)*def.Samples)
	for _, city := range def.Cities {
		for _, role := range def.Roles {
			mean := city.Base * role.Multiplier
			dist := distuv.Normal{Mu: mean, Sigma: mean * def.Salary.StdDevRatio, Src: src}
			for range def.Samples {
				salary := def.Salary.Clamp(dist.Rand())
				rows = append(rows, model.Observation{
					Year:   def.Year,
					Role:   role.Name,
					City:   city.Name,
					State:  city.State,
					Salary: roundCents(salary),
				})
			}
		}
	}
	return model.NewTable(rows)
}

// roundCents rounds v to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
