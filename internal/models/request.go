package models

// OrderRequest is the untrusted intake payload from the website order form.
// Only the identity/contact minimum is required; everything else is
// defaulted or passed through during document building.
type OrderRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`

	OrderType   string `json:"orderType"`
	ProductType string `json:"productType"`
	DesignType  string `json:"designType"`

	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"  validate:"gte=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	TotalPrice  float64 `json:"totalPrice" validate:"gte=0"`
	Size        string  `json:"size"`
	Flavor      string  `json:"flavor"`

	DateNeeded      string `json:"dateNeeded"`
	DeliveryMethod  string `json:"deliveryMethod"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryNotes   string `json:"deliveryNotes"`
	GiftNote        string `json:"giftNote"`

	Message             string `json:"message"`
	Note                string `json:"note"`
	SpecialInstructions string `json:"specialInstructions"`

	Referrer string `json:"referrer"`

	Subtotal      float64 `json:"subtotal"    validate:"gte=0"`
	DeliveryFee   float64 `json:"deliveryFee" validate:"gte=0"`
	Discount      float64 `json:"discount"    validate:"gte=0"`
	Total         float64 `json:"total"       validate:"gte=0"`
	PaymentMethod string  `json:"paymentMethod"`

	Items       []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	Attachments []string           `json:"attachments"`
}

// OrderItemRequest is one line of an explicit items override.
type OrderItemRequest struct {
	ProductType         string  `json:"productType"`
	ProductID           string  `json:"productId"`
	ProductName         string  `json:"productName"`
	DesignType          string  `json:"designType"`
	Quantity            int     `json:"quantity"   validate:"gte=0"`
	UnitPrice           float64 `json:"unitPrice"  validate:"gte=0"`
	TotalPrice          float64 `json:"totalPrice" validate:"gte=0"`
	Size                string  `json:"size"`
	Flavor              string  `json:"flavor"`
	SpecialInstructions string  `json:"specialInstructions"`
}

// FieldErrors maps a request field to a human-readable problem with it.
type FieldErrors map[string]string
