package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/config"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/auth"
	mockSvc "bazaar/internal/mocks/service"
	mockUC "bazaar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type staffFixture struct {
	handler     *StaffHandler
	staffTokens *mockSvc.MockStaffTokenService
	orders      *mockUC.MockOrderUsecase
}

func newStaffFixture(t *testing.T) *staffFixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("counter-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	fixture := &staffFixture{
		staffTokens: mockSvc.NewMockStaffTokenService(t),
		orders:      mockUC.NewMockOrderUsecase(t),
	}
	fixture.handler = NewStaffHandler(StaffHandlerParams{
		Config: &config.Config{
			Staff: &config.StaffConfig{
				Credentials: map[string]string{"staff-42": string(hash)},
			},
		},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hasher:      auth.NewBcryptHasher(),
		StaffTokens: fixture.staffTokens,
		Orders:      fixture.orders,
	})

	return fixture
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStaffHandler_Login(t *testing.T) {
	fixture := newStaffFixture(t)

	fixture.staffTokens.EXPECT().Sign("staff-42").Return("signed-token", nil).Once()

	c, rec := postJSON("/staff/login", `{"staff_id":"staff-42","password":"counter-secret"}`)
	require.NoError(t, fixture.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestStaffHandler_Login_WrongPassword(t *testing.T) {
	fixture := newStaffFixture(t)

	c, rec := postJSON("/staff/login", `{"staff_id":"staff-42","password":"guess"}`)
	require.NoError(t, fixture.handler.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	fixture.staffTokens.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestStaffHandler_Login_UnknownStaff(t *testing.T) {
	fixture := newStaffFixture(t)

	c, rec := postJSON("/staff/login", `{"staff_id":"nobody","password":"counter-secret"}`)
	require.NoError(t, fixture.handler.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffHandler_AppendRefund(t *testing.T) {
	fixture := newStaffFixture(t)
	orderID := uuid.New()

	refund := &entity.Refund{ID: uuid.New(), Amount: 50_000, StaffID: "staff-42"}
	fixture.orders.EXPECT().
		AppendRefund(mock.Anything, "+9647701234567", orderID, int64(50_000), "damaged bag", "raw-token").
		Return(refund, nil).Once()

	c, rec := postJSON("/staff/orders/"+orderID.String()+"/refunds",
		`{"phone":"+9647701234567","amount":50000,"reason":"damaged bag"}`)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())
	c.Set(middleware.ContextKeyStaffToken, "raw-token")

	require.NoError(t, fixture.handler.AppendRefund(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), refund.ID.String())
}

func TestStaffHandler_AppendRefund_InvalidOrderID(t *testing.T) {
	fixture := newStaffFixture(t)

	c, rec := postJSON("/staff/orders/not-a-uuid/refunds", `{"phone":"+1","amount":1}`)
	c.SetParamNames("orderID")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fixture.handler.AppendRefund(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaffHandler_AppendRefund_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"order not found", errors.Wrap(repository.ErrOrderNotFound, "append refund"), http.StatusNotFound},
		{"refund exceeds total", entity.ErrRefundExceedsTotal, http.StatusConflict},
		{"staff token invalid", domainerrors.ErrStaffTokenInvalid, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newStaffFixture(t)
			orderID := uuid.New()

			fixture.orders.EXPECT().
				AppendRefund(mock.Anything, mock.Anything, orderID, mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.err).Once()

			c, rec := postJSON(fmt.Sprintf("/staff/orders/%s/refunds", orderID),
				`{"phone":"+9647701234567","amount":50000}`)
			c.SetParamNames("orderID")
			c.SetParamValues(orderID.String())

			require.NoError(t, fixture.handler.AppendRefund(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
