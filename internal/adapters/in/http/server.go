// Package http contains the inbound HTTP adapter. It translates the JSON
// surface into commands and queries and maps their outcomes back to status
// codes: validation failures are 400, a missing receipt is 404, an
// unreachable store is 503, and a partial completion is still 200 with
// success=false in the body.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"completion/internal/core/application/usecases/commands"
	"completion/internal/core/application/usecases/queries"
	"completion/internal/core/ports"
	"completion/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getReceiptHandler queries.GetReceiptQueryHandler
	getHealthHandler  queries.GetHealthQueryHandler

	sender ports.NotificationSender
}

// NewServer creates a new HTTP server with the required command and query handlers.
// The notification sender is consulted only for its mode on the health endpoint.
func NewServer(
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getReceiptHandler queries.GetReceiptQueryHandler,
	getHealthHandler queries.GetHealthQueryHandler,
	sender ports.NotificationSender,
) *Server {
	return &Server{
		completeOrderHandler: completeOrderHandler,
		getReceiptHandler:    getReceiptHandler,
		getHealthHandler:     getHealthHandler,
		sender:               sender,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/", s.CompleteOrder)
	e.GET("/receipt/:receiptId", s.GetReceipt)
	e.GET("/health", s.GetHealth)
}

// CompleteOrderRequest is the POST / body. Required fields are pointers so a
// missing field can be told apart from a zero value.
type CompleteOrderRequest struct {
	OrderID       *string    `json:"orderId"`
	CustomerID    *string    `json:"customerId"`
	OrderTotal    *float64   `json:"orderTotal"`
	DeliveryTime  *time.Time `json:"deliveryTime"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerName  string     `json:"customerName"`
}

// ErrorResponse is the body of every non-200 response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// EmailOutcome reports the notification step.
type EmailOutcome struct {
	Sent    bool   `json:"sent"`
	Address string `json:"address"`
}

// LoyaltyOutcome reports the loyalty step.
type LoyaltyOutcome struct {
	Updated       bool `json:"updated"`
	PointsAwarded int  `json:"pointsAwarded"`
}

// ReceiptOutcome reports the persistence step.
type ReceiptOutcome struct {
	Stored      bool      `json:"stored"`
	ReceiptID   string    `json:"receiptId"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// CompletionData is the data section of a completion response.
type CompletionData struct {
	OrderID    string         `json:"orderId"`
	CustomerID string         `json:"customerId"`
	ReceiptID  string         `json:"receiptId"`
	Email      EmailOutcome   `json:"email"`
	Loyalty    LoyaltyOutcome `json:"loyalty"`
	Receipt    ReceiptOutcome `json:"receipt"`
}

// CompleteOrderResponse is the 200 envelope of POST /.
type CompleteOrderResponse struct {
	Success bool           `json:"success"`
	Data    CompletionData `json:"data"`
	Message string         `json:"message"`
}

// CompleteOrder handles POST / - runs the order completion workflow.
//
// Validation failures are terminal and cause no side effects. Once the
// command is accepted the response status is 200 even when one or more steps
// failed; callers must inspect the success flag, not just the status code.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	var request CompleteOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
		})
	}

	var missing []string
	if request.OrderID == nil {
		missing = append(missing, "orderId")
	}
	if request.CustomerID == nil {
		missing = append(missing, "customerId")
	}
	if request.OrderTotal == nil {
		missing = append(missing, "orderTotal")
	}
	if len(missing) > 0 {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing required fields: " + strings.Join(missing, ", "),
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(
		*request.OrderID,
		*request.CustomerID,
		*request.OrderTotal,
		request.DeliveryTime,
		request.CustomerEmail,
		request.CustomerName,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid completion data: " + err.Error(),
		})
	}

	result, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: err.Error(),
		})
	}

	address := request.CustomerEmail
	if address == "" {
		address = "not provided"
	}

	return ctx.JSON(http.StatusOK, CompleteOrderResponse{
		Success: result.Success,
		Data: CompletionData{
			OrderID:    result.OrderID,
			CustomerID: result.CustomerID,
			ReceiptID:  result.Receipt.ID(),
			Email: EmailOutcome{
				Sent:    result.NotificationSent,
				Address: address,
			},
			Loyalty: LoyaltyOutcome{
				Updated:       result.LoyaltyUpdated,
				PointsAwarded: result.PointsAwarded,
			},
			Receipt: ReceiptOutcome{
				Stored:      result.ReceiptStored,
				ReceiptID:   result.Receipt.ID(),
				GeneratedAt: result.Receipt.GeneratedAt(),
			},
		},
		Message: "Order completion processed successfully",
	})
}

// ReceiptData is the read model of GET /receipt/:receiptId.
type ReceiptData struct {
	ReceiptID    string     `json:"receiptId"`
	OrderID      string     `json:"orderId"`
	CustomerID   string     `json:"customerId"`
	OrderTotal   float64    `json:"orderTotal"`
	TaxAmount    float64    `json:"taxAmount"`
	DeliveryFee  float64    `json:"deliveryFee"`
	DeliveryTime *time.Time `json:"deliveryTime"`
	Status       string     `json:"status"`
	GeneratedAt  time.Time  `json:"generatedAt"`
}

// GetReceiptResponse is the 200 envelope of GET /receipt/:receiptId.
type GetReceiptResponse struct {
	Success bool        `json:"success"`
	Data    ReceiptData `json:"data"`
}

// GetReceipt handles GET /receipt/:receiptId - retrieves a stored receipt.
// A missing receipt is 404; a store failure is 503.
func (s *Server) GetReceipt(ctx echo.Context) error {
	query, err := queries.NewGetReceiptQuery(ctx.Param("receiptId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid receipt id: " + err.Error(),
		})
	}

	response, err := s.getReceiptHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error: "Receipt not found",
			})
		}
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Database not available",
		})
	}

	return ctx.JSON(http.StatusOK, GetReceiptResponse{
		Success: true,
		Data: ReceiptData{
			ReceiptID:    response.ReceiptID,
			OrderID:      response.OrderID,
			CustomerID:   response.CustomerID,
			OrderTotal:   response.OrderTotal,
			TaxAmount:    response.TaxAmount,
			DeliveryFee:  response.DeliveryFee,
			DeliveryTime: response.DeliveryTime,
			Status:       response.Status,
			GeneratedAt:  response.GeneratedAt,
		},
	})
}

// HealthResponse reports process and datastore liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Emailer   string `json:"emailer"`
}

// GetHealth handles GET /health - liveness probe for the service and its store.
func (s *Server) GetHealth(ctx echo.Context) error {
	response, err := s.getHealthHandler.Handle(ctx.Request().Context(), queries.NewGetHealthQuery())
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: err.Error(),
		})
	}

	emailer := "configured"
	if s.sender.Simulated() {
		emailer = "simulated"
	}

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "connected",
		Emailer:   emailer,
	}
	status := http.StatusOK
	if !response.DatabaseReachable {
		health.Status = "degraded"
		health.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, health)
}
