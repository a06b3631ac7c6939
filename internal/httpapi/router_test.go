package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghu62-rp/OSM-main/internal/catalog"
	"github.com/raghu62-rp/OSM-main/internal/domain"
	"github.com/raghu62-rp/OSM-main/internal/session"
	"github.com/raghu62-rp/OSM-main/internal/store"
)

type offlineFetcher struct{}

func (offlineFetcher) Products(context.Context) ([]domain.Product, error) {
	return nil, errors.New("catalog down")
}

type offlineHealth struct{}

func (offlineHealth) Health(context.Context) (catalog.HealthStatus, error) {
	return catalog.HealthStatus{}, errors.New("catalog down")
}

type recordingSubmitter struct {
	calls int
}

func (s *recordingSubmitter) Submit(context.Context, domain.OrderPayload, string) (string, error) {
	s.calls++
	return "", errors.New("order store down")
}

func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	log := zerolog.Nop()
	sync := catalog.NewSync(offlineFetcher{}, log)
	poller := catalog.NewPoller(offlineHealth{}, time.Hour, log)
	sessions := session.NewManager(store.NewMemoryStore(), &recordingSubmitter{}, time.Millisecond, log)

	srv := httptest.NewServer(NewRouter(sessions, sync, poller, 10*time.Second))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func getJSON(t *testing.T, client *http.Client, url string, out interface{}) int {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, client *http.Client, url string, body interface{}, out interface{}) int {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_ProductsFallBackToStaticDataset(t *testing.T) {
	srv, client := newTestServer(t)

	var body struct {
		Products []domain.Product `json:"products"`
	}
	status := getJSON(t, client, srv.URL+"/api/v1/products", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body.Products, 10)
}

func TestRouter_ProductSearch(t *testing.T) {
	srv, client := newTestServer(t)

	var body struct {
		Products []domain.Product `json:"products"`
	}
	status := getJSON(t, client, srv.URL+"/api/v1/products?search=yoga", &body)

	assert.Equal(t, http.StatusOK, status)
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Yoga Mat", body.Products[0].Name)
}

func TestRouter_AddUnknownProduct(t *testing.T) {
	srv, client := newTestServer(t)

	status := postJSON(t, client, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: "nope"}, nil)

	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_CartFlow(t *testing.T) {
	srv, client := newTestServer(t)

	var c CartResponseDTO
	status := postJSON(t, client, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: "p1"}, &c)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, c.ItemCount)

	status = postJSON(t, client, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: "p1"}, &c)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "199.98", c.Total.StringFixed(2))

	// the cart belongs to the session cookie: a fresh client sees nothing
	_, freshClient := newClientWithJar(t)
	var fresh CartResponseDTO
	status = getJSON(t, freshClient, srv.URL+"/api/v1/cart/", &fresh)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, fresh.ItemCount)
}

func newClientWithJar(t *testing.T) (*cookiejar.Jar, *http.Client) {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return jar, &http.Client{Jar: jar}
}

func TestRouter_CheckoutHappyPathWithRemoteDown(t *testing.T) {
	srv, client := newTestServer(t)

	status := postJSON(t, client, srv.URL+"/api/v1/cart/items",
		AddItemRequestDTO{ProductID: "p9"}, nil)
	require.Equal(t, http.StatusCreated, status)

	req := CheckoutRequestDTO{
		Address: domain.Address{
			FullName:    "Ravi Kumar",
			Phone:       "9398593918",
			Email:       "ravi@example.com",
			AddressLine: "12-3 MG Road",
			City:        "Hyderabad",
			State:       "Telangana",
			Pincode:     "500081",
			Country:     "India",
		},
		Method: "upi",
		UPIID:  "ravi@ibl",
	}

	var resp CheckoutResponseDTO
	status = postJSON(t, client, srv.URL+"/api/v1/checkout", req, &resp)

	require.Equal(t, http.StatusCreated, status)
	require.NotNil(t, resp.Order)
	assert.Regexp(t, `^ORD[0-9A-Z]{9}$`, resp.Order.OrderID)
	assert.Equal(t, "PAID", resp.Receipt.Status)

	// cart cleared
	var c CartResponseDTO
	getJSON(t, client, srv.URL+"/api/v1/cart/", &c)
	assert.Equal(t, 0, c.ItemCount)

	// order visible in history and trackable
	var list struct {
		Orders []domain.Order `json:"orders"`
	}
	getJSON(t, client, srv.URL+"/api/v1/orders/", &list)
	require.Len(t, list.Orders, 1)

	var view struct {
		Steps []struct {
			Status    string `json:"status"`
			Completed bool   `json:"completed"`
		} `json:"steps"`
	}
	status = getJSON(t, client, srv.URL+"/api/v1/orders/"+resp.Order.OrderID+"/tracking", &view)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, view.Steps, 5)
	assert.True(t, view.Steps[0].Completed)
	assert.True(t, view.Steps[1].Completed)
	assert.False(t, view.Steps[4].Completed)
}

func TestRouter_CheckoutValidationFailure(t *testing.T) {
	srv, client := newTestServer(t)

	postJSON(t, client, srv.URL+"/api/v1/cart/items", AddItemRequestDTO{ProductID: "p1"}, nil)

	var errResp ErrorResponse
	status := postJSON(t, client, srv.URL+"/api/v1/checkout", CheckoutRequestDTO{
		Method: "upi",
		UPIID:  "broken",
	}, &errResp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_failed", errResp.Code)
	assert.Equal(t, "missing address field", errResp.Error)

	// cart untouched
	var c CartResponseDTO
	getJSON(t, client, srv.URL+"/api/v1/cart/", &c)
	assert.Equal(t, 1, c.ItemCount)
}

func TestRouter_CheckoutEmptyCart(t *testing.T) {
	srv, client := newTestServer(t)

	var errResp ErrorResponse
	status := postJSON(t, client, srv.URL+"/api/v1/checkout", CheckoutRequestDTO{
		Address: domain.Address{
			FullName: "R", Phone: "9398593918", Email: "r@e.com",
			AddressLine: "x", City: "y", State: "z", Pincode: "500081",
		},
		Method: "wallet",
	}, &errResp)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "empty_cart", errResp.Code)
}

func TestRouter_WishlistToggle(t *testing.T) {
	srv, client := newTestServer(t)

	var toggle ToggleResponseDTO
	status := postJSON(t, client, srv.URL+"/api/v1/wishlist/", ToggleRequestDTO{ProductID: "p1"}, &toggle)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, toggle.Added)

	var body struct {
		Products []domain.Product `json:"products"`
	}
	getJSON(t, client, srv.URL+"/api/v1/wishlist/", &body)
	require.Len(t, body.Products, 1)

	status = postJSON(t, client, srv.URL+"/api/v1/wishlist/", ToggleRequestDTO{ProductID: "p1"}, &toggle)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, toggle.Added)
}

func TestRouter_HealthReportsCatalogFlag(t *testing.T) {
	srv, client := newTestServer(t)

	var body struct {
		OK               bool `json:"ok"`
		CatalogReachable bool `json:"catalog_reachable"`
	}
	status := getJSON(t, client, srv.URL+"/health", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.OK)
	// poller has not run; the optimistic default stands
	assert.True(t, body.CatalogReachable)
}

func TestRouter_UnknownOrderTracking(t *testing.T) {
	srv, client := newTestServer(t)

	status := getJSON(t, client, srv.URL+"/api/v1/orders/ORDMISSING99/tracking", nil)

	assert.Equal(t, http.StatusNotFound, status)
}
