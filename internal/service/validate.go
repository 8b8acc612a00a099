package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bakehouse-api/internal/models"
)

// ValidateOrderRequest schema-checks the raw payload and, when it passes,
// returns a normalized copy with defaults applied. A non-empty FieldErrors
// map means the request must be rejected as a whole.
func (s *Service) ValidateOrderRequest(req models.OrderRequest) (models.OrderRequest, models.FieldErrors) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.v.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return req, models.FieldErrors{"request": err.Error()}
		}
		return req, fieldErrors(verrs)
	}

	return applyDefaults(req), nil
}

func fieldErrors(verrs validator.ValidationErrors) models.FieldErrors {
	out := make(models.FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fieldName(fe)] = fieldMessage(fe)
	}
	return out
}

// fieldName strips the root struct from the namespace so nested item
// errors come out as items[0].quantity.
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func applyDefaults(req models.OrderRequest) models.OrderRequest {
	if req.OrderType == "" {
		req.OrderType = "custom-quote"
	}
	if req.ProductType == "" {
		req.ProductType = "cake"
	}
	if req.DesignType == "" {
		req.DesignType = "standard"
	}
	if req.DeliveryMethod == "" {
		req.DeliveryMethod = models.DeliveryMethodCollection
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "not-selected"
	}

	for i := range req.Items {
		it := &req.Items[i]
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.ProductType == "" {
			it.ProductType = req.ProductType
		}
		if it.DesignType == "" {
			it.DesignType = req.DesignType
		}
	}

	return req
}
