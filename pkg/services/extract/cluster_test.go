package extract

import (
	"testing"

	"invoice-scan/pkg/models"
)

func TestClusterColumnsTooFewNumericTokens(t *testing.T) {
	span := tableSpan{Top: 100, Bottom: 400}
	tokens := []models.Token{
		tokW("Widget", 50, 150, 60),
		tokW("2", 290, 150, 20),
		tokW("50.00", 390, 150, 40),
	}
	// Only two numeric tokens inside the span.
	if _, ok := clusterColumns(tokens, span, PositionalIdentity{}); ok {
		t.Fatal("expected clustering to refuse fewer than 3 numeric tokens")
	}
}

func TestClusterColumnsIgnoresTokensOutsideSpan(t *testing.T) {
	span := tableSpan{Top: 100, Bottom: 200}
	tokens := []models.Token{
		tokW("1", 100, 50, 20),  // above the table
		tokW("2", 100, 300, 20), // below the table
		tokW("3", 100, 150, 20),
	}
	if _, ok := clusterColumns(tokens, span, PositionalIdentity{}); ok {
		t.Fatal("tokens outside the span must not count toward the minimum")
	}
}

func TestClusterColumnsThreeBands(t *testing.T) {
	span := tableSpan{Top: 100, Bottom: 400}
	var tokens []models.Token
	// Three rows of qty/price/total tokens centered near x=300, x=410, x=510.
	for _, top := range []int{150, 170, 190} {
		tokens = append(tokens,
			tokW("Widget", 40, top, 80), // description, not numeric
			tokW("2", 290, top, 20),
			tokW("50.00", 390, top, 40),
			tokW("100.00", 490, top, 40),
		)
	}

	bands, ok := clusterColumns(tokens, span, PositionalIdentity{})
	if !ok {
		t.Fatal("expected clustering to succeed")
	}
	if !(bands.Quantity < bands.UnitPrice && bands.UnitPrice < bands.Total) {
		t.Fatalf("bands not ordered: %+v", bands)
	}
	if bands.Quantity < 290 || bands.Quantity > 310 {
		t.Errorf("quantity band = %v, want ~300", bands.Quantity)
	}
	if bands.UnitPrice < 400 || bands.UnitPrice > 420 {
		t.Errorf("unit price band = %v, want ~410", bands.UnitPrice)
	}
	if bands.Total < 500 || bands.Total > 520 {
		t.Errorf("total band = %v, want ~510", bands.Total)
	}
}

func TestKmeans1D(t *testing.T) {
	values := []float64{10, 12, 14, 200, 202, 204, 400, 402, 404}
	centers := kmeans1D(values, 3, kmeansRestarts)
	if len(centers) != 3 {
		t.Fatalf("got %d centers, want 3", len(centers))
	}
	want := []float64{12, 202, 402}
	for i, c := range centers {
		if c < want[i]-1 || c > want[i]+1 {
			t.Errorf("center %d = %v, want ~%v", i, c, want[i])
		}
	}
}

func TestKmeans1DDeterministic(t *testing.T) {
	values := []float64{300, 305, 410, 415, 510, 515, 300, 410, 510}
	a := kmeans1D(values, 3, kmeansRestarts)
	b := kmeans1D(values, 3, kmeansRestarts)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("kmeans1D not deterministic: %v vs %v", a, b)
		}
	}
}
