package service

import (
	"time"

	"bakehouse-api/internal/models"
)

const fallbackProductName = "Custom order"

// BuildOrder assembles the canonical order document from a validated
// request. Pure: no I/O, no clock reads.
func BuildOrder(req models.OrderRequest, meta RequestMeta, number string, createdAt time.Time) models.Order {
	return models.Order{
		Type:        models.DocumentType,
		OrderNumber: number,
		Status:      models.OrderStatusNew,
		Customer: models.Customer{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Address:  req.Address,
			City:     req.City,
			Postcode: req.Postcode,
		},
		Items: buildItems(req),
		Delivery: models.Delivery{
			DateNeeded:      req.DateNeeded,
			DeliveryMethod:  req.DeliveryMethod,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryNotes:   req.DeliveryNotes,
			GiftNote:        req.GiftNote,
		},
		Pricing:  buildPricing(req),
		Messages: buildMessages(req),
		Metadata: models.Metadata{
			Source:    models.SourceWebsite,
			Referrer:  firstNonEmpty(req.Referrer, meta.Referrer),
			UserAgent: meta.UserAgent,
			IPAddress: meta.IPAddress,
		},
		CreatedAt: createdAt,
	}
}

// buildItems honors an explicit items override; otherwise exactly one
// line is synthesized from the top-level commercial fields. The result is
// never empty.
func buildItems(req models.OrderRequest) []models.OrderItem {
	if len(req.Items) > 0 {
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, models.OrderItem{
				ProductType:         it.ProductType,
				ProductID:           it.ProductID,
				ProductName:         firstNonEmpty(it.ProductName, fallbackProductName),
				DesignType:          it.DesignType,
				Quantity:            it.Quantity,
				UnitPrice:           it.UnitPrice,
				TotalPrice:          lineTotal(it.TotalPrice, it.UnitPrice, it.Quantity),
				Size:                it.Size,
				Flavor:              it.Flavor,
				SpecialInstructions: it.SpecialInstructions,
			})
		}
		return items
	}

	return []models.OrderItem{{
		ProductType:         req.ProductType,
		ProductID:           req.ProductID,
		ProductName:         firstNonEmpty(req.ProductName, fallbackProductName),
		DesignType:          req.DesignType,
		Quantity:            req.Quantity,
		UnitPrice:           req.UnitPrice,
		TotalPrice:          lineTotal(req.TotalPrice, req.UnitPrice, req.Quantity),
		Size:                req.Size,
		Flavor:              req.Flavor,
		SpecialInstructions: req.SpecialInstructions,
	}}
}

// Totals are client-supplied and recorded, not recomputed; only a missing
// line total falls back to unit price times quantity.
func lineTotal(total, unit float64, qty int) float64 {
	if total > 0 {
		return total
	}
	return unit * float64(qty)
}

func buildPricing(req models.OrderRequest) models.Pricing {
	total := req.Total
	if total == 0 {
		total = lineTotal(req.TotalPrice, req.UnitPrice, req.Quantity)
	}
	subtotal := req.Subtotal
	if subtotal == 0 {
		subtotal = total
	}
	return models.Pricing{
		Subtotal:      subtotal,
		DeliveryFee:   req.DeliveryFee,
		Discount:      req.Discount,
		Total:         total,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
	}
}

// buildMessages appends in a fixed order: the customer message with any
// attachments, then additional notes, then the gift note. The dashboard
// renders the slice chronologically, so insertion order matters.
func buildMessages(req models.OrderRequest) []models.OrderMessage {
	var msgs []models.OrderMessage

	if req.Message != "" || len(req.Attachments) > 0 {
		msgs = append(msgs, models.OrderMessage{
			Message:     req.Message,
			Attachments: req.Attachments,
		})
	}

	if note := firstNonEmpty(req.Note, req.DeliveryNotes); note != "" {
		msgs = append(msgs, models.OrderMessage{Message: "Additional Notes: " + note})
	}

	if req.GiftNote != "" {
		msgs = append(msgs, models.OrderMessage{Message: "Gift Note: " + req.GiftNote})
	}

	return msgs
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
