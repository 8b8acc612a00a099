package models

import (
	"time"
)

const (
	DocumentType = "order"

	SourceWebsite = "website"

	DeliveryMethodCollection = "collection"
	DesignTypeIndividual     = "individual"

	PaymentStatusPending = "pending"
)

// Order is the canonical order document as persisted in the content store.
// The store assigns _id on create; everything else is set once by the
// intake pipeline and never mutated here.
type Order struct {
	ID          string         `json:"_id,omitempty"`
	Type        string         `json:"_type"`
	OrderNumber string         `json:"orderNumber"`
	Status      OrderStatus    `json:"status"`
	Customer    Customer       `json:"customer"`
	Items       []OrderItem    `json:"items"`
	Delivery    Delivery       `json:"delivery"`
	Pricing     Pricing        `json:"pricing"`
	Messages    []OrderMessage `json:"messages,omitempty"`
	Metadata    Metadata       `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

type OrderItem struct {
	ProductType         string  `json:"productType"`
	ProductID           string  `json:"productId,omitempty"`
	ProductName         string  `json:"productName"`
	DesignType          string  `json:"designType"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unitPrice"`
	TotalPrice          float64 `json:"totalPrice"`
	Size                string  `json:"size,omitempty"`
	Flavor              string  `json:"flavor,omitempty"`
	SpecialInstructions string  `json:"specialInstructions,omitempty"`
}

type Delivery struct {
	DateNeeded      string `json:"dateNeeded,omitempty"`
	DeliveryMethod  string `json:"deliveryMethod"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	DeliveryNotes   string `json:"deliveryNotes,omitempty"`
	GiftNote        string `json:"giftNote,omitempty"`
}

// Pricing is recorded as submitted by the client; totals are not recomputed
// server-side.
type Pricing struct {
	Subtotal      float64 `json:"subtotal"`
	DeliveryFee   float64 `json:"deliveryFee"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod"`
}

// OrderMessage entries are appended in a fixed order at build time; the
// slice order is what the dashboard renders chronologically.
type OrderMessage struct {
	Message     string   `json:"message"`
	Attachments []string `json:"attachments,omitempty"`
}

type Metadata struct {
	Source    string `json:"source"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	IPAddress string `json:"ipAddress"`
}
