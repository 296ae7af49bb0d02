package clients_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ecom/internal/clients"

	"github.com/stretchr/testify/assert"
)

func newCallerFor(t *testing.T, service string, handler http.HandlerFunc) *clients.Caller {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	resolver := clients.NewResolver(map[string]string{service: server.URL})
	return clients.NewCaller(resolver, 2*time.Second)
}

func TestCaller_GetJSON_Success(t *testing.T) {
	caller := newCallerFor(t, "product-service", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/prod-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prod-1","name":"Laptop","price":1200,"stock_quantity":10,"active":true}`))
	})

	var product clients.ProductDetails
	found, err := caller.GetJSON(context.Background(), "product-service", "/api/products/prod-1", &product)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Laptop", product.Name)
	assert.Equal(t, 10, product.StockQuantity)
}

func TestCaller_GetJSON_ClientErrorIsAbsentResult(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		caller := newCallerFor(t, "product-service", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message":"Product not found"}`))
		})

		var product clients.ProductDetails
		found, err := caller.GetJSON(context.Background(), "product-service", "/api/products/missing", &product)

		assert.NoError(t, err)
		assert.False(t, found)
	}
}

func TestCaller_GetJSON_ServerErrorFails(t *testing.T) {
	caller := newCallerFor(t, "product-service", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var product clients.ProductDetails
	found, err := caller.GetJSON(context.Background(), "product-service", "/api/products/prod-1", &product)

	assert.False(t, found)
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestCaller_GetJSON_UnknownService(t *testing.T) {
	resolver := clients.NewResolver(map[string]string{})
	caller := clients.NewCaller(resolver, time.Second)

	found, err := caller.GetJSON(context.Background(), "nowhere", "/", nil)

	assert.False(t, found)
	assert.ErrorContains(t, err, "no instances configured")
}

func TestResolver_RoundRobin(t *testing.T) {
	var hitsA, hitsB int
	serverA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsA++
		w.Write([]byte(`{}`))
	}))
	defer serverA.Close()
	serverB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsB++
		w.Write([]byte(`{}`))
	}))
	defer serverB.Close()

	resolver := clients.NewResolver(map[string]string{
		"product-service": serverA.URL + "," + serverB.URL,
	})
	caller := clients.NewCaller(resolver, time.Second)

	for i := 0; i < 4; i++ {
		_, err := caller.GetJSON(context.Background(), "product-service", "/", nil)
		assert.NoError(t, err)
	}

	assert.Equal(t, 2, hitsA)
	assert.Equal(t, 2, hitsB)
}

func TestProductClient_GetProduct(t *testing.T) {
	caller := newCallerFor(t, clients.ProductServiceName, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products/prod-1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Product not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"prod-1","name":"Laptop","price":1200,"stock_quantity":10,"active":true}`))
	})
	client := clients.NewProductClient(caller)

	product, err := client.GetProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", product.Name)

	product, err = client.GetProduct(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestUserClient_GetUser(t *testing.T) {
	caller := newCallerFor(t, clients.UserServiceName, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/user-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":"user-1","email":"jane@example.com","role":"CUSTOMER"}`))
	})
	client := clients.NewUserClient(caller)

	user, err := client.GetUser(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	user, err = client.GetUser(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
