package orders

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/olprint/backoffice/internal/models"
	"github.com/shopspring/decimal"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) string {
	return epoch.AddDate(0, 0, offset).Format(models.DateLayout)
}

// TestListOrdersMatchesBruteForce checks the store filter against a filter over
// parsed dates for random order sets and filter combinations.
func TestListOrdersMatchesBruteForce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	statuses := models.OrderStatuses()

	properties.Property("result equals brute-force subset", prop.ForAll(
		func(days []int, statusIdx []int, filterStatus, from, to int) bool {
			n := len(days)
			if len(statusIdx) < n {
				n = len(statusIdx)
			}
			seed := make([]models.Order, n)
			for i := 0; i < n; i++ {
				seed[i] = models.Order{
					ID:     fmt.Sprintf("ORD-%03d", i),
					Date:   day(days[i]),
					Status: statuses[statusIdx[i]],
					Total:  decimal.NewFromInt(int64(i)),
					Items:  1,
				}
			}

			f := Filter{Status: models.StatusAll}
			if filterStatus >= 0 {
				f.Status = statuses[filterStatus]
			}
			if from >= 0 {
				f.From = day(from)
			}
			if to >= 0 {
				f.To = day(to)
			}

			got, err := NewStore(seed).ListOrders(f)
			if err != nil {
				return false
			}

			want := 0
			for i, o := range seed {
				d := epoch.AddDate(0, 0, days[i])
				if filterStatus >= 0 && o.Status != statuses[filterStatus] {
					continue
				}
				if from >= 0 && d.Before(epoch.AddDate(0, 0, from)) {
					continue
				}
				if to >= 0 && d.After(epoch.AddDate(0, 0, to)) {
					continue
				}
				want++
			}
			if len(got) != want {
				return false
			}
			for _, o := range got {
				if !f.Matches(o) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 400)),
		gen.SliceOf(gen.IntRange(0, len(statuses)-1)),
		gen.IntRange(-1, len(statuses)-1),
		gen.IntRange(-1, 400),
		gen.IntRange(-1, 400),
	))

	properties.Property("update status is reflected by list", prop.ForAll(
		func(target, statusIdx int) bool {
			seed := make([]models.Order, 10)
			for i := range seed {
				seed[i] = models.Order{ID: fmt.Sprintf("ORD-%03d", i), Date: day(i), Status: models.StatusPending, Items: 1}
			}
			s := NewStore(seed)
			id := seed[target].ID
			if _, err := s.UpdateStatus(id, statuses[statusIdx]); err != nil {
				return false
			}
			got, err := s.ListOrders(Filter{Status: statuses[statusIdx]})
			if err != nil {
				return false
			}
			for _, o := range got {
				if o.ID == id {
					return true
				}
			}
			return false
		},
		gen.IntRange(0, 9),
		gen.IntRange(0, len(statuses)-1),
	))

	properties.TestingRun(t)
}
