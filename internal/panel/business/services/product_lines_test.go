package services_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"commerceadmin_api/config"
	"commerceadmin_api/config/values"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/business/models/dto/request"
	"commerceadmin_api/internal/panel/business/services"
)

func testAPIConfig(baseURL string) config.PanelAPIConfig {
	return config.PanelAPIConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 30,
		RateLimitRPS:   1000,
		RateBurst:      100,
	}
}

func TestProductLineCreate_ValidationSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)

	_, err := svc.Create(context.Background(), models.ProductLine{})
	require.Error(t, err)

	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, int32(0), requests.Load(), "validation failure must not reach the network")
}

func TestProductLineCreate_ReturnsServerEcho(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/product-lines" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":2,"productLine":"Trucks","textDescription":"Pickup trucks"}`))
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)

	created, err := svc.Create(context.Background(), models.ProductLine{
		ProductLine:     "Trucks",
		TextDescription: "Pickup trucks",
	})
	require.NoError(t, err)
	require.Equal(t, 2, created.ID)
}

func TestProductLineList_OmitsAbsentParams(t *testing.T) {
	var lastQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)

	_, err := svc.List(context.Background(), request.ListParams{})
	require.NoError(t, err)
	require.Equal(t, "", lastQuery)

	params := request.PageOf(2, 50)
	params.Sort = "createdAt"
	params.Direction = "desc"
	_, err = svc.List(context.Background(), params)
	require.NoError(t, err)
	require.Contains(t, lastQuery, "page=2")
	require.Contains(t, lastQuery, "size=50")
	require.Contains(t, lastQuery, "sort=createdAt")
	require.Contains(t, lastQuery, "direction=desc")
}

func TestProductLineList_AcceptsPageEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"id":1,"productLine":"Sedans","textDescription":"Four-door cars"}],"totalElements":1,"totalPages":1,"number":0,"size":25}`))
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)

	lines, err := svc.List(context.Background(), request.ListParams{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Sedans", lines[0].ProductLine)
}

func TestProductLineGetByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)

	var notFound *models.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, 99, notFound.ID)
}

func TestProductLineDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/product-lines/7" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)
	require.NoError(t, svc.Delete(context.Background(), 7))
}

func TestProductLineBulkDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/product-lines/bulk-delete" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := services.NewProductLineService(testAPIConfig(server.URL), values.PanelLimits{}, nil)
	require.NoError(t, svc.BulkDelete(context.Background(), []int{1, 2, 3}))
}
