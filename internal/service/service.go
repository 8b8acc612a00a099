package service

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"bakehouse-api/internal/models"
	"bakehouse-api/internal/ordernum"
	"bakehouse-api/internal/repository"
)

// Order is the intake pipeline plus the companion read path.
type Order interface {
	CreateOrder(ctx context.Context, req models.OrderRequest, meta RequestMeta) (CreateResult, error)
	ListOrders(ctx context.Context, status string, limit, offset int) (ListResult, error)
	GetOrderByNumber(ctx context.Context, number string) (models.Order, error)
}

// Notifier is what the pipeline needs from the notification dispatcher.
type Notifier interface {
	SendCustomerConfirmation(ctx context.Context, order models.Order) (string, error)
	SendAdminAlert(ctx context.Context, order models.Order) (string, error)
}

// RequestMeta is captured from request headers once at creation time.
type RequestMeta struct {
	Referrer  string
	UserAgent string
	IPAddress string
}

type CreateResult struct {
	OrderID     string
	OrderNumber string
}

type ListResult struct {
	Orders     []models.Order `json:"orders"`
	TotalCount int            `json:"totalCount"`
	HasMore    bool           `json:"hasMore"`
}

type Service struct {
	store    repository.DocumentStore
	notifier Notifier
	generate ordernum.Func
	v        *validator.Validate
	now      func() time.Time
}

type Option func(*Service)

// WithNumberFunc pins the order-number generator, mainly for tests.
func WithNumberFunc(f ordernum.Func) Option { return func(s *Service) { s.generate = f } }

// WithClock pins the creation timestamp source.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(store repository.DocumentStore, notifier Notifier, opts ...Option) *Service {
	v := validator.New()
	// report field errors under their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	s := &Service{
		store:    store,
		notifier: notifier,
		generate: ordernum.Generate,
		v:        v,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
