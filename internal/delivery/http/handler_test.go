package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "bakehouse-api/internal/delivery/http"
	"bakehouse-api/internal/models"
	"bakehouse-api/internal/repository"
	"bakehouse-api/internal/service"
)

type svcStub struct {
	create     func(req models.OrderRequest, meta service.RequestMeta) (service.CreateResult, error)
	list       func(status string, limit, offset int) (service.ListResult, error)
	get        func(number string) (models.Order, error)
	lastMeta   service.RequestMeta
	lastStatus string
}

var _ service.Order = (*svcStub)(nil)

func (s *svcStub) CreateOrder(_ context.Context, req models.OrderRequest, meta service.RequestMeta) (service.CreateResult, error) {
	s.lastMeta = meta
	if s.create != nil {
		return s.create(req, meta)
	}
	return service.CreateResult{OrderID: "order-1", OrderNumber: "BK-20260830-AB12CD"}, nil
}

func (s *svcStub) ListOrders(_ context.Context, status string, limit, offset int) (service.ListResult, error) {
	s.lastStatus = status
	if s.list != nil {
		return s.list(status, limit, offset)
	}
	return service.ListResult{Orders: []models.Order{}}, nil
}

func (s *svcStub) GetOrderByNumber(_ context.Context, number string) (models.Order, error) {
	if s.get != nil {
		return s.get(number)
	}
	return models.Order{}, service.ErrNotFound
}

func router(s service.Order) http.Handler {
	return httpdelivery.NewHandler(s, nil).InitRoutes()
}

const janeJSON = `{"name":"Jane","email":"jane@x.com","phone":"0701234567","productName":"Honey Cake","quantity":2,"unitPrice":20,"totalPrice":40}`

func TestCreateOrder_OK(t *testing.T) {
	s := &svcStub{}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(janeJSON))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("X-Real-Ip", "10.9.9.9")
	req.Header.Set("User-Agent", "test-agent")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool   `json:"success"`
		OrderID     string `json:"orderId"`
		OrderNumber string `json:"orderNumber"`
		Message     string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "order-1", resp.OrderID)
	require.Equal(t, "BK-20260830-AB12CD", resp.OrderNumber)
	require.NotEmpty(t, resp.Message)

	// forwarded-for beats real-ip, first hop only
	require.Equal(t, "203.0.113.9", s.lastMeta.IPAddress)
	require.Equal(t, "test-agent", s.lastMeta.UserAgent)
}

func TestCreateOrder_RealIPFallback(t *testing.T) {
	s := &svcStub{}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(janeJSON))
	req.Header.Set("X-Real-Ip", "10.9.9.9")
	r.ServeHTTP(w, req)
	require.Equal(t, "10.9.9.9", s.lastMeta.IPAddress)

	s2 := &svcStub{}
	r2 := router(s2)
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(janeJSON))
	r2.ServeHTTP(w2, req2)
	require.Equal(t, "unknown", s2.lastMeta.IPAddress)
}

func TestCreateOrder_ValidationFailed_400(t *testing.T) {
	s := &svcStub{
		create: func(models.OrderRequest, service.RequestMeta) (service.CreateResult, error) {
			return service.CreateResult{}, &service.ValidationError{Fields: models.FieldErrors{
				"email": "must be a valid email address",
				"name":  "is required",
			}}
		},
	}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"email":"nope"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)
	require.Len(t, resp.Details, 2)
	require.Equal(t, "is required", resp.Details["name"])
}

func TestCreateOrder_MalformedJSON_400(t *testing.T) {
	r := router(&svcStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"name":`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid request body")
}

func TestCreateOrder_TypeMismatch_FieldError(t *testing.T) {
	r := router(&svcStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"name":"Jane","quantity":"two"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Validation failed")
	require.Contains(t, w.Body.String(), "quantity")
}

func TestCreateOrder_StoreFailure_500(t *testing.T) {
	s := &svcStub{
		create: func(models.OrderRequest, service.RequestMeta) (service.CreateResult, error) {
			return service.CreateResult{}, repository.ErrStoreUnavailable
		},
	}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(janeJSON))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error     string `json:"error"`
		Details   string `json:"details"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Failed to create order", resp.Error)
	require.NotEmpty(t, resp.Timestamp)
}

func TestListOrders_InvalidStatus_400(t *testing.T) {
	s := &svcStub{
		list: func(string, int, int) (service.ListResult, error) {
			return service.ListResult{}, service.ErrInvalidStatus
		},
	}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=definitely-not-a-status", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid status value")
}

func TestListOrders_OK_NoCacheHeaders(t *testing.T) {
	s := &svcStub{
		list: func(status string, limit, offset int) (service.ListResult, error) {
			require.Equal(t, "new", status)
			require.Equal(t, 10, limit)
			require.Equal(t, 0, offset)
			return service.ListResult{
				Orders:     make([]models.Order, 10),
				TotalCount: 25,
				HasMore:    true,
			}, nil
		},
	}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=new&limit=10&offset=0", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	require.Equal(t, "no-cache", w.Header().Get("Pragma"))

	var resp struct {
		Orders     []models.Order `json:"orders"`
		TotalCount int            `json:"totalCount"`
		HasMore    bool           `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 10)
	require.Equal(t, 25, resp.TotalCount)
	require.True(t, resp.HasMore)
}

func TestGetOrderByNumber_NotFound_404(t *testing.T) {
	r := router(&svcStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/BK-00000000-000000", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "order not found")
}

func TestGetOrderByNumber_OK(t *testing.T) {
	s := &svcStub{
		get: func(number string) (models.Order, error) {
			require.Equal(t, "BK-20260830-AB12CD", number)
			return models.Order{OrderNumber: number, Status: models.OrderStatusNew}, nil
		},
	}
	r := router(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/BK-20260830-AB12CD", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"orderNumber":"BK-20260830-AB12CD"`)
}

func TestHandler_NoRoute(t *testing.T) {
	r := router(&svcStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	r := router(&svcStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestServer_RunShutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
