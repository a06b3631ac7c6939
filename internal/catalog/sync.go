package catalog

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/raghu62-rp/OSM-main/internal/domain"
)

// ProductFetcher is what Sync needs from the catalog client.
type ProductFetcher interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// Sync serves the product list with a transport-failure fallback to the
// bundled static dataset. Concurrent fetches for the list are collapsed
// into one request via singleflight.
type Sync struct {
	client   ProductFetcher
	fallback []domain.Product
	sfg      singleflight.Group
	log      zerolog.Logger
}

func NewSync(client ProductFetcher, log zerolog.Logger) *Sync {
	return &Sync{
		client:   client,
		fallback: StaticProducts(),
		log:      log,
	}
}

// Products never fails: a catalog outage is absorbed and the static
// dataset is returned instead.
func (s *Sync) Products(ctx context.Context) []domain.Product {
	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		products, errFetch := s.client.Products(ctx)
		if errFetch != nil {
			s.log.Warn().Err(errFetch).Msg("catalog fetch failed, serving static dataset")
			return s.fallback, nil
		}
		return products, nil
	})
	if err != nil {
		return s.fallback
	}
	return v.([]domain.Product)
}

// Product looks a single product up by id.
func (s *Sync) Product(ctx context.Context, id string) (domain.Product, bool) {
	for _, p := range s.Products(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter narrows a product list by category and a case-insensitive search
// over name and category. An empty or "all" category matches everything.
func Filter(products []domain.Product, search, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	search = strings.ToLower(search)
	for _, p := range products {
		if category != "" && category != "all" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
