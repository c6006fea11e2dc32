package clients_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"commerceadmin_api/config"
	"commerceadmin_api/internal/panel/business/models"
	"commerceadmin_api/internal/panel/pkg/clients"
)

func testAPIConfig(baseURL string) config.PanelAPIConfig {
	return config.PanelAPIConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 30,
		RateLimitRPS:   1000,
		RateBurst:      100,
	}
}

func TestRequest_DecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"productLine":"Sedans","textDescription":"Four-door cars"}`))
	}))
	defer server.Close()

	client := clients.NewBaseClient(testAPIConfig(server.URL), nil, "[ test ]")

	var line models.ProductLine
	err := client.Request(context.Background(), http.MethodGet, "/product-lines/1", nil, &line)
	require.NoError(t, err)
	require.Equal(t, 1, line.ID)
	require.Equal(t, "Sedans", line.ProductLine)
}

func TestRequest_NotFoundEnvelopeMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	}))
	defer server.Close()

	client := clients.NewBaseClient(testAPIConfig(server.URL), nil, "[ test ]")

	err := client.Request(context.Background(), http.MethodGet, "/product-lines/99", nil, &models.ProductLine{})
	require.Error(t, err)
	require.Equal(t, "Not found", err.Error())

	var requestErr *models.RequestError
	require.True(t, errors.As(err, &requestErr))
	require.Equal(t, http.StatusNotFound, requestErr.Status)
}

func TestRequest_GenericMessageWhenBodyUnparseable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := clients.NewBaseClient(testAPIConfig(server.URL), nil, "[ test ]")

	err := client.Request(context.Background(), http.MethodGet, "/orders", nil, &[]models.Order{})
	require.Error(t, err)
	require.Equal(t, "HTTP error! status: 500", err.Error())
}

func TestRequest_NoContentResolvesToNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := clients.NewBaseClient(testAPIConfig(server.URL), nil, "[ test ]")

	line := models.ProductLine{ProductLine: "untouched"}
	err := client.Request(context.Background(), http.MethodDelete, "/product-lines/1", nil, &line)
	require.NoError(t, err)
	require.Equal(t, "untouched", line.ProductLine)
}

func TestRequest_TimeoutYieldsTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testAPIConfig(server.URL)
	cfg.TimeoutSeconds = 1
	client := clients.NewBaseClient(cfg, nil, "[ test ]")

	err := client.Request(context.Background(), http.MethodGet, "/orders", nil, &[]models.Order{})
	require.Error(t, err)

	var timeoutErr *models.TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
}

func TestUploadClient_TwoPartForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form failed: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image part: %v", err)
		}
		file.Close()
		if header.Filename != "sedan.png" {
			t.Errorf("unexpected filename %s", header.Filename)
		}
		if !strings.Contains(r.FormValue("data"), "Sedans") {
			t.Errorf("metadata part missing payload")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"productLine":"Sedans","textDescription":"Four-door cars"}`))
	}))
	defer server.Close()

	client := clients.NewUploadClient(testAPIConfig(server.URL), nil)

	var created models.ProductLine
	meta := models.ProductLine{ProductLine: "Sedans", TextDescription: "Four-door cars"}
	err := client.Upload(context.Background(), "/product-lines", "sedan.png", strings.NewReader("png-bytes"), meta, &created)
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
}
