package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/metrics"
	"github.com/menaget/ordermgmt/internal/port"
)

const (
	// allProductsCacheKey is the single fixed key for the paginated listing,
	// whichever page/limit produced the cached envelope. Invalidation on
	// create only ever targets this key.
	allProductsCacheKey = "all_products"

	productCacheKeyPrefix = "product_"
)

type ProductService struct {
	products port.ProductRepository
	cache    port.Cache
	metrics  *metrics.Metrics
}

func NewProduct(products port.ProductRepository, cache port.Cache, m *metrics.Metrics) *ProductService {
	return &ProductService{
		products: products,
		cache:    cache,
		metrics:  m,
	}
}

// CreateProduct inserts the record and drops the cached listing envelope.
// The per-product keys are left alone, writes never populate the cache.
func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.products.InsertProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.InsertProduct: %w", err)
	}

	s.cache.Delete(allProductsCacheKey)

	return created, nil
}

// ListProducts is a cache-aside read under the fixed listing key: a cached
// envelope is returned verbatim even if page or limit differ from the
// request. On a miss the ranged query and the count run concurrently.
func (s *ProductService) ListProducts(ctx context.Context, page, limit int) (domain.ProductPage, error) {
	if cached, ok := s.cache.Get(allProductsCacheKey); ok {
		if env, ok := cached.(domain.ProductPage); ok {
			s.metrics.CacheHit("products_list")
			return env, nil
		}
	}
	s.metrics.CacheMiss("products_list")

	var (
		products []domain.Product
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if products, err = s.products.ListProducts(gctx, skipFor(page, limit), int64(limit)); err != nil {
			return fmt.Errorf("products.ListProducts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = s.products.CountProducts(gctx); err != nil {
			return fmt.Errorf("products.CountProducts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.ProductPage{}, fmt.Errorf("g.Wait: %w", err)
	}

	env := domain.ProductPage{
		Products: products,
		Total:    total,
		Pages:    pageCount(total, limit),
	}

	s.cache.Set(allProductsCacheKey, env)

	return env, nil
}

// GetProduct is a cache-aside read keyed by the product id.
func (s *ProductService) GetProduct(ctx context.Context, productID primitive.ObjectID) (domain.Product, error) {
	key := productCacheKeyPrefix + productID.Hex()

	if cached, ok := s.cache.Get(key); ok {
		if product, ok := cached.(domain.Product); ok {
			s.metrics.CacheHit("product")
			return product, nil
		}
	}
	s.metrics.CacheMiss("product")

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	s.cache.Set(key, product)

	return product, nil
}
