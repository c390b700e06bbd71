package tests

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_pos/api"
	"api_pos/internal/config"
	"api_pos/internal/sales"
	"api_pos/internal/storage"
	"api_pos/internal/users"
	"api_pos/pkg/client"
)

type testEnv struct {
	server *httptest.Server
	seller *users.User
}

func setupServer(t *testing.T) *testEnv {
	t.Helper()

	// 1. Configurar Gin
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// 2. Base sqlite en archivo temporal, transacciones serializadas
	dsn := "file:" + filepath.Join(t.TempDir(), "pos.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := storage.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	cfg := config.Config{
		DBDriver:   "sqlite",
		DBDSN:      dsn,
		JWTSecret:  "test-secret",
		JWTTTL:     time.Hour,
		BcryptCost: 4,
	}
	logger := zaptest.NewLogger(t)
	api.InitRoutesWithLogger(router, db, cfg, logger)

	// 3. Cuenta de vendedor para los tests
	userService := users.NewService(
		users.NewRepository(db),
		users.NewPasswordHasher(cfg.BcryptCost),
		users.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		logger,
	)
	seller, err := userService.Create("maria", "secret123", users.RoleSeller)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, seller: seller}
}

func newClient(t *testing.T, env *testEnv) *client.Client {
	t.Helper()
	c := client.New(env.server.URL)
	t.Cleanup(func() { c.Close() })
	return c
}

// TestSalesHappyPath_FullFlow covers login -> create product -> sell it out
// -> rejected resale -> ledger and report reads.
func TestSalesHappyPath_FullFlow(t *testing.T) {
	env := setupServer(t)
	c := newClient(t, env)

	var productID uint

	t.Run("POST_Login", func(t *testing.T) {
		_, err := c.Login("maria", "wrong-password")
		require.Error(t, err, "wrong password must be rejected")

		resp, err := c.Login("maria", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token, "login must issue a session token")
		assert.Equal(t, env.seller.ID, resp.User.ID)
		assert.Equal(t, users.RoleSeller, resp.User.Role)
	})

	t.Run("POST_CreateProduct", func(t *testing.T) {
		product, err := c.CreateProduct(client.ProductInput{
			Code:     "A1",
			Name:     "Widget",
			Price:    9.99,
			Quantity: 5,
		})
		require.NoError(t, err)
		require.NotZero(t, product.ID)
		productID = product.ID

		// Round-trip: los campos numéricos vuelven como números.
		listed, err := c.ListProducts()
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "A1", listed[0].Code)
		assert.Equal(t, "Widget", listed[0].Name)
		assert.True(t, listed[0].Price.Equal(decimal.NewFromFloat(9.99)), "got %s", listed[0].Price)
		assert.Equal(t, 5, listed[0].Quantity)
	})

	t.Run("POST_CreateSale_DrainsStock", func(t *testing.T) {
		sale, err := c.CreateSale(sales.CreateInput{
			Items: []sales.ItemInput{
				{ProductID: productID, Quantity: 5, UnitPrice: decimal.NewFromFloat(9.99)},
			},
			Total:    decimal.NewFromFloat(49.95),
			SellerID: env.seller.ID,
		})
		require.NoError(t, err)
		assert.NotZero(t, sale.ID)
		assert.False(t, sale.Date.IsZero())
		assert.True(t, sale.Total.Equal(decimal.NewFromFloat(49.95)))
		assert.Equal(t, "maria", sale.Seller.Name)
		require.Len(t, sale.Items, 1)
		assert.Equal(t, 5, sale.Items[0].Quantity)
		assert.Equal(t, "Widget", sale.Items[0].Product.Name)

		listed, err := c.ListProducts()
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, 0, listed[0].Quantity, "selling the remaining stock drives quantity to zero")
	})

	t.Run("POST_CreateSale_InsufficientStock", func(t *testing.T) {
		_, err := c.CreateSale(sales.CreateInput{
			Items: []sales.ItemInput{
				{ProductID: productID, Quantity: 5, UnitPrice: decimal.NewFromFloat(9.99)},
			},
			Total:    decimal.NewFromFloat(49.95),
			SellerID: env.seller.ID,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient stock for product")

		listed, err := c.ListProducts()
		require.NoError(t, err)
		assert.Equal(t, 0, listed[0].Quantity, "a rejected sale must not touch stock")
	})

	t.Run("GET_Sales_NewestFirst", func(t *testing.T) {
		second, err := c.CreateProduct(client.ProductInput{
			Code: "B2", Name: "Gadget", Price: 4.50, Quantity: 10,
		})
		require.NoError(t, err)

		_, err = c.CreateSale(sales.CreateInput{
			Items: []sales.ItemInput{
				{ProductID: second.ID, Quantity: 2, UnitPrice: decimal.NewFromFloat(4.50)},
			},
			Total:    decimal.NewFromFloat(9.00),
			SellerID: env.seller.ID,
		})
		require.NoError(t, err)

		listed, err := c.ListSales()
		require.NoError(t, err)
		require.Len(t, listed, 2)
		require.Len(t, listed[0].Items, 1)
		assert.Equal(t, "Gadget", listed[0].Items[0].Product.Name, "newest sale comes first")
		assert.Equal(t, "Widget", listed[1].Items[0].Product.Name)
	})

	t.Run("GET_SalesReport", func(t *testing.T) {
		report, err := c.SalesReport("", "")
		require.NoError(t, err)
		assert.Equal(t, 2, report.SaleCount)
		assert.True(t, report.TotalRevenue.Equal(decimal.NewFromFloat(58.95)), "got %s", report.TotalRevenue)
		assert.Equal(t, 7, report.TotalUnits)

		// Un rango en el pasado no incluye nada.
		empty, err := c.SalesReport("2000-01-01", "2000-12-31")
		require.NoError(t, err)
		assert.Zero(t, empty.SaleCount)
	})

	t.Run("GET_SalesReport_PDF", func(t *testing.T) {
		pdf, err := c.SalesReportPDF("", "")
		require.NoError(t, err)
		require.NotEmpty(t, pdf)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})
}

func TestAuthRequired(t *testing.T) {
	env := setupServer(t)
	anonymous := newClient(t, env)

	// Sin login: el catálogo se puede leer, todo lo demás no.
	_, err := anonymous.ListProducts()
	assert.NoError(t, err)

	_, err = anonymous.CreateProduct(client.ProductInput{Code: "A1", Name: "Widget", Price: 1, Quantity: 1})
	assert.Error(t, err)

	_, err = anonymous.ListSales()
	assert.Error(t, err)

	_, err = anonymous.CreateSale(sales.CreateInput{
		Items:    []sales.ItemInput{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromFloat(1)}},
		Total:    decimal.NewFromFloat(1),
		SellerID: env.seller.ID,
	})
	assert.Error(t, err)
}

func TestProductLifecycle(t *testing.T) {
	env := setupServer(t)
	c := newClient(t, env)

	_, err := c.Login("maria", "secret123")
	require.NoError(t, err)

	product, err := c.CreateProduct(client.ProductInput{Code: "A1", Name: "Widget", Price: 9.99, Quantity: 5})
	require.NoError(t, err)

	updated, err := c.UpdateProduct(product.ID, client.ProductInput{Code: "A1", Name: "Widget XL", Price: 12.50, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, "Widget XL", updated.Name)

	_, err = c.UpdateProduct(product.ID+100, client.ProductInput{Code: "Z9", Name: "Ghost", Price: 1, Quantity: 1})
	require.Error(t, err, "updating a missing product must fail")

	require.NoError(t, c.DeleteProduct(product.ID))
	assert.Error(t, c.DeleteProduct(product.ID), "second delete must report not found")

	listed, err := c.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateSale_BadRequests(t *testing.T) {
	env := setupServer(t)
	c := newClient(t, env)

	_, err := c.Login("maria", "secret123")
	require.NoError(t, err)

	product, err := c.CreateProduct(client.ProductInput{Code: "A1", Name: "Widget", Price: 9.99, Quantity: 5})
	require.NoError(t, err)

	// Venta sin líneas
	_, err = c.CreateSale(sales.CreateInput{SellerID: env.seller.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")

	// Total que no cuadra con las líneas
	_, err = c.CreateSale(sales.CreateInput{
		Items:    []sales.ItemInput{{ProductID: product.ID, Quantity: 1, UnitPrice: decimal.NewFromFloat(9.99)}},
		Total:    decimal.NewFromFloat(1.00),
		SellerID: env.seller.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total")

	// Producto inexistente
	_, err = c.CreateSale(sales.CreateInput{
		Items:    []sales.ItemInput{{ProductID: product.ID + 100, Quantity: 1, UnitPrice: decimal.NewFromFloat(9.99)}},
		Total:    decimal.NewFromFloat(9.99),
		SellerID: env.seller.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")

	// Nada de esto movió el stock.
	listed, err := c.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, 5, listed[0].Quantity)
}
