package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/menaget/ordermgmt/internal/domain"
	"github.com/menaget/ordermgmt/internal/port"
	"github.com/menaget/ordermgmt/internal/repository"
)

type productRepositorySuite struct {
	suite.Suite

	client    *mongo.Client
	db        *mongo.Database
	repo      port.ProductRepository
	container testcontainers.Container
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(productRepositorySuite))
}

func (suite *productRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startMongo(ctx)
	suite.NoError(err)

	suite.client, err = repository.Connect(ctx, connStr)
	suite.NoError(err)

	suite.db = suite.client.Database("ordermgmt_test")
	suite.repo = repository.NewProduct(suite.db)
}

func (suite *productRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.client != nil {
		suite.NoError(suite.client.Disconnect(ctx))
	}

	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *productRepositorySuite) TestInsertProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		productFunc func() domain.Product
	}{
		{
			name:        "valid product with all fields: ok",
			productFunc: fakeProduct,
		},
		{
			name: "no description: ok",
			productFunc: func() domain.Product {
				p := fakeProduct()
				p.Description = ""
				return p
			},
		},
		{
			name: "zero price: ok",
			productFunc: func() domain.Product {
				p := fakeProduct()
				p.Price = decimal.Zero
				return p
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttProduct := tt.productFunc()

			created, err := suite.repo.InsertProduct(ctx, ttProduct)
			require.NoError(t, err)

			actual, err := suite.repo.GetProduct(ctx, created.ID)
			require.NoError(t, err)

			expected := ttProduct
			expected.ID = created.ID
			assertProduct(t, expected, actual)
		})
	}
}

func (suite *productRepositorySuite) TestGetProduct_notFound() {
	t := suite.T()

	_, err := suite.repo.GetProduct(t.Context(), primitive.NewObjectID())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *productRepositorySuite) TestListProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	const n = 5
	for range n {
		_, err := suite.repo.InsertProduct(ctx, fakeProduct())
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		skip    int64
		limit   int64
		wantLen int
	}{
		{name: "first page covers all", skip: 0, limit: 10, wantLen: 5},
		{name: "limit cuts the page", skip: 0, limit: 3, wantLen: 3},
		{name: "skip into the tail", skip: 3, limit: 3, wantLen: 2},
		{name: "skip past the end", skip: 10, limit: 3, wantLen: 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			products, err := suite.repo.ListProducts(t.Context(), tt.skip, tt.limit)
			require.NoError(t, err)
			assert.Len(t, products, tt.wantLen)
		})
	}

	total, err := suite.repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, n, total)
}

func (suite *productRepositorySuite) TestGetProductsByIDs() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	first, err := suite.repo.InsertProduct(ctx, fakeProduct())
	require.NoError(t, err)

	_, err = suite.repo.InsertProduct(ctx, fakeProduct())
	require.NoError(t, err)

	products, err := suite.repo.GetProductsByIDs(ctx, []primitive.ObjectID{first.ID, primitive.NewObjectID()})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assertProduct(t, first, products[0])
}

func (suite *productRepositorySuite) deleteAll() {
	ctx := suite.T().Context()

	_, err := suite.db.Collection("products").DeleteMany(ctx, bson.M{})
	suite.NoError(err)
}

func fakeProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Description: gofakeit.Sentence(5),
	}
}

// decimalComparer treats amounts as equal when they compare equal, whatever
// the internal exponent.
var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func assertProduct(t *testing.T, expected domain.Product, actual domain.Product) {
	t.Helper()

	diff := cmp.Diff(expected, actual, decimalComparer, cmpopts.EquateEmpty())
	assert.Empty(t, diff)
}
