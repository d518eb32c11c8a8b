package handler

import (
	"log/slog"
	"net/http"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loginRequest carries staff credentials.
type loginRequest struct {
	StaffID  string `json:"staff_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// refundRequest carries one staff-signed refund.
type refundRequest struct {
	Phone  string `json:"phone" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	Reason string `json:"reason"`
}

// StaffHandler serves the staff endpoints: login and order adjustments.
type StaffHandler struct {
	cfg         *config.Config
	logger      *slog.Logger
	hasher      service.PasswordHasher
	staffTokens service.StaffTokenService
	orders      usecase.OrderUsecase
}

// StaffHandlerParams holds dependencies for the StaffHandler
type StaffHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	Hasher      service.PasswordHasher
	StaffTokens service.StaffTokenService
	Orders      usecase.OrderUsecase
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		cfg:         params.Config,
		logger:      params.Logger,
		hasher:      params.Hasher,
		staffTokens: params.StaffTokens,
		orders:      params.Orders,
	}
}

// Login checks staff credentials against the configured bcrypt hashes and
// issues a signing token.
func (h *StaffHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "failed to parse login payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "staff_id and password are required")
	}

	var hash string
	if h.cfg.Staff != nil {
		hash = h.cfg.Staff.Credentials[req.StaffID]
	}
	if hash == "" || !h.hasher.Check(req.Password, hash) {
		h.logger.Warn("Staff login rejected", slog.String("staff_id", req.StaffID))

		return response.Unauthorized(c, "INVALID_CREDENTIALS", "invalid staff id or password")
	}

	token, err := h.staffTokens.Sign(req.StaffID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "")
}

// AppendRefund appends a staff-signed refund to an order.
func (h *StaffHandler) AppendRefund(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "order id must be a UUID")
	}

	var req refundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "failed to parse refund payload")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "phone and a positive amount are required")
	}

	refund, err := h.orders.AppendRefund(
		c.Request().Context(),
		req.Phone,
		orderID,
		req.Amount,
		req.Reason,
		middleware.StaffToken(c),
	)
	if err != nil {
		return h.mapRefundError(c, err)
	}

	return response.Success(c, http.StatusCreated, refund, "refund appended")
}

func (h *StaffHandler) mapRefundError(c echo.Context, err error) error {
	cause := errors.Cause(err)
	switch {
	case errors.Is(cause, repository.ErrCustomerNotFound):
		return response.NotFound(c, "CUSTOMER_NOT_FOUND", "customer not found")
	case errors.Is(cause, repository.ErrOrderNotFound):
		return response.NotFound(c, "ORDER_NOT_FOUND", "order not found")
	case errors.Is(cause, entity.ErrRefundExceedsTotal):
		return response.Conflict(c, "REFUND_EXCEEDS_TOTAL", "refund sum exceeds order total")
	case errors.Is(cause, domainerrors.ErrStaffTokenInvalid):
		return response.Unauthorized(c, "INVALID_STAFF_TOKEN", "staff token invalid")
	default:
		return err
	}
}
