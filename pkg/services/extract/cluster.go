package extract

import (
	"math"
	"math/rand"
	"sort"

	"invoice-scan/pkg/models"
)

// A document needs at least this many numeric tokens inside the table span
// before column positions can be inferred.
const minNumericTokens = 3

// Restarts for the k-means partition; the best inertia wins. Single-start
// Lloyd's is too sensitive to its initial centers on skewed layouts.
const kmeansRestarts = 10

// ColumnBands are the inferred horizontal centers of the three numeric
// table columns. Bands are recomputed per document and never persist.
type ColumnBands struct {
	Quantity  float64
	UnitPrice float64
	Total     float64
}

// ColumnIdentity assigns column meanings to the sorted cluster centers.
// The clustering math stays fixed while the identity strategy can be
// swapped, e.g. for one anchored on the table's header keywords.
type ColumnIdentity interface {
	// Identify receives exactly three centers sorted ascending.
	Identify(centers []float64) ColumnBands
	Name() string
}

// PositionalIdentity maps centers to columns by position alone: quantity
// leftmost, unit price in the middle, total rightmost. This holds for the
// common invoice layout but is not validated against the header row.
type PositionalIdentity struct{}

func (PositionalIdentity) Identify(centers []float64) ColumnBands {
	return ColumnBands{
		Quantity:  centers[0],
		UnitPrice: centers[1],
		Total:     centers[2],
	}
}

func (PositionalIdentity) Name() string { return "positional" }

// clusterColumns partitions the numeric tokens inside the table span into
// three column bands by horizontal center. Returns false when there are too
// few numeric tokens to cluster; the caller degrades to an empty item list.
func clusterColumns(tokens []models.Token, span tableSpan, identity ColumnIdentity) (ColumnBands, bool) {
	var centers []float64
	for _, t := range tokens {
		if t.Top < span.Top || t.Top > span.Bottom {
			continue
		}
		if !isNumericText(t.Text) {
			continue
		}
		centers = append(centers, t.CenterX())
	}

	if len(centers) < minNumericTokens {
		return ColumnBands{}, false
	}

	clustered := kmeans1D(centers, 3, kmeansRestarts)
	return identity.Identify(clustered), true
}

// kmeans1D runs Lloyd's algorithm over one-dimensional values with multiple
// random restarts, returning the k cluster centers sorted ascending. The
// RNG is fixed-seed so a given document always clusters the same way.
func kmeans1D(values []float64, k, restarts int) []float64 {
	rng := rand.New(rand.NewSource(0))

	best := make([]float64, k)
	bestInertia := math.Inf(1)

	for r := 0; r < restarts; r++ {
		centers := make([]float64, k)
		for i := range centers {
			centers[i] = values[rng.Intn(len(values))]
		}

		assign := make([]int, len(values))
		for iter := 0; iter < 100; iter++ {
			changed := false
			for i, v := range values {
				c := nearestCenter(v, centers)
				if assign[i] != c {
					assign[i] = c
					changed = true
				}
			}
			if iter > 0 && !changed {
				break
			}

			sums := make([]float64, k)
			counts := make([]int, k)
			for i, v := range values {
				sums[assign[i]] += v
				counts[assign[i]]++
			}
			for c := range centers {
				if counts[c] > 0 {
					centers[c] = sums[c] / float64(counts[c])
				}
			}
		}

		inertia := 0.0
		for i, v := range values {
			d := v - centers[assign[i]]
			inertia += d * d
		}
		if inertia < bestInertia {
			bestInertia = inertia
			copy(best, centers)
		}
	}

	sort.Float64s(best)
	return best
}

func nearestCenter(v float64, centers []float64) int {
	nearest := 0
	nearestDist := math.Abs(v - centers[0])
	for c := 1; c < len(centers); c++ {
		if d := math.Abs(v - centers[c]); d < nearestDist {
			nearest = c
			nearestDist = d
		}
	}
	return nearest
}
