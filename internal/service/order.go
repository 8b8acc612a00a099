package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"bakehouse-api/internal/models"
)

const (
	DefaultListLimit = 50
	maxListLimit     = 100
)

// CreateOrder runs the intake pipeline: validate, assign a number, build
// the document, persist, then announce. Persistence failure is fatal to
// the request; notification failures are logged and swallowed so the
// already-persisted order always wins.
func (s *Service) CreateOrder(ctx context.Context, req models.OrderRequest, meta RequestMeta) (CreateResult, error) {
	normalized, ferrs := s.ValidateOrderRequest(req)
	if len(ferrs) > 0 {
		return CreateResult{}, &ValidationError{Fields: ferrs}
	}

	number := s.generate()
	order := BuildOrder(normalized, meta, number, s.now().UTC())

	id, err := s.store.Create(ctx, order)
	if err != nil {
		return CreateResult{}, err
	}
	order.ID = id

	s.announce(ctx, order)

	return CreateResult{OrderID: id, OrderNumber: number}, nil
}

// announce attempts both notifications with independent error capture; a
// failed customer confirmation never blocks the admin alert.
func (s *Service) announce(ctx context.Context, order models.Order) {
	if s.notifier == nil {
		return
	}

	log := logrus.WithField("order_number", order.OrderNumber)

	if id, err := s.notifier.SendCustomerConfirmation(ctx, order); err != nil {
		log.WithError(err).Error("customer confirmation failed")
	} else {
		log.WithField("message_id", id).Info("customer confirmation sent")
	}

	if id, err := s.notifier.SendAdminAlert(ctx, order); err != nil {
		log.WithError(err).Error("admin alert failed")
	} else {
		log.WithField("message_id", id).Info("admin alert sent")
	}
}

// ListOrders reads one page of orders, newest first, plus the matching
// total. A status filter must clear the allowlist before any query runs;
// the value is then bound as a $param, never spliced into the GROQ text.
func (s *Service) ListOrders(ctx context.Context, status string, limit, offset int) (ListResult, error) {
	filter := `_type == "order"`
	params := map[string]any{}

	if status != "" {
		st, err := models.ToOrderStatus(status)
		if err != nil {
			return ListResult{}, ErrInvalidStatus
		}
		filter += ` && status == $status`
		params["status"] = string(st)
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	// offset and limit are server-parsed integers, safe to inline
	pageQuery := fmt.Sprintf(`*[%s] | order(_createdAt desc) [%d...%d]`, filter, offset, offset+limit)
	orders := []models.Order{}
	if err := s.store.Fetch(ctx, pageQuery, params, &orders); err != nil {
		return ListResult{}, err
	}

	var total int
	if err := s.store.Fetch(ctx, fmt.Sprintf(`count(*[%s])`, filter), params, &total); err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Orders:     orders,
		TotalCount: total,
		HasMore:    offset+limit < total,
	}, nil
}

// GetOrderByNumber fetches a single order; the number is bound as a
// $param like every other user-supplied value.
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (models.Order, error) {
	var order models.Order
	err := s.store.Fetch(ctx,
		`*[_type == "order" && orderNumber == $number][0]`,
		map[string]any{"number": number},
		&order)
	if err != nil {
		return models.Order{}, err
	}
	if order.OrderNumber == "" {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}
