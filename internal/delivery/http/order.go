package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bakehouse-api/internal/models"
	"bakehouse-api/internal/service"
)

type createOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	Message     string `json:"message"`
}

// CreateOrder
// @Summary CreateOrder
// @Description Takes a new order from the website form, persists it and sends the confirmation emails
// @ID create-order
// @Accept json
// @Produce json
// @Param order body models.OrderRequest true "order payload"
// @Success 200 {object} createOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			validationFailed(c, models.FieldErrors{
				typeErr.Field: fmt.Sprintf("must be a %s", typeErr.Type),
			})
			return
		}
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.CreateOrder(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			validationFailed(c, verr.Fields)
			return
		}
		serverError(c, "Failed to create order", err)
		return
	}

	c.JSON(http.StatusOK, createOrderResponse{
		Success:     true,
		OrderID:     res.OrderID,
		OrderNumber: res.OrderNumber,
		Message:     "Order received. We will be in touch shortly to confirm the details.",
	})
}

// ListOrders
// @Summary ListOrders
// @Description Lists orders newest-first with optional status filter and offset pagination
// @ID list-orders
// @Produce json
// @Param status query string false "status filter (allowlisted)"
// @Param limit query int false "page size" default(50)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.ListResult
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	limit := intQuery(c, "limit", service.DefaultListLimit)
	offset := intQuery(c, "offset", 0)

	res, err := h.svc.ListOrders(c.Request.Context(), status, limit, offset)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		serverError(c, "Failed to fetch orders", err)
		return
	}

	noCache(c)
	c.JSON(http.StatusOK, res)
}

// GetOrderByNumber
// @Summary GetOrderByNumber
// @Description Fetches a single order via its order number
// @ID get-order-by-number
// @Produce json
// @Param number path string true "order number"
// @Success 200 {object} models.Order
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{number} [get]
func (h *Handler) GetOrderByNumber(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order number")
		return
	}

	order, err := h.svc.GetOrderByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "order not found")
			return
		}
		serverError(c, "Failed to fetch order", err)
		return
	}

	noCache(c)
	c.JSON(http.StatusOK, order)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

// requestMeta captures attribution once at creation time. IP preference:
// first forwarded-for hop, then real-ip, then "unknown".
func requestMeta(c *gin.Context) service.RequestMeta {
	ip := "unknown"
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		ip = strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	} else if real := c.GetHeader("X-Real-Ip"); real != "" {
		ip = real
	}

	return service.RequestMeta{
		Referrer:  c.GetHeader("Referer"),
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: ip,
	}
}
