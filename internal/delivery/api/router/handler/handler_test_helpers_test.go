package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/response"
	"crm/internal/delivery/api/router"
	"crm/internal/delivery/api/router/handler"
	"crm/internal/delivery/api/validator"
	"crm/internal/delivery/middleware"
	"crm/internal/domain/entity"
	mockSvc "crm/internal/mocks/service"
	mockUsecase "crm/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

// apiFixtures holds the server under test and its mocked usecases.
type apiFixtures struct {
	server      *echo.Echo
	actor       entity.Actor
	tokenSvc    *mockSvc.MockTokenService
	mergeUC     *mockUsecase.MockMergeUsecase
	duplicateUC *mockUsecase.MockDuplicateUsecase
	dismissalUC *mockUsecase.MockDismissalUsecase
}

// apiResponse mirrors the response envelope for decoding.
type apiResponse struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fx := apiFixtures{
		actor:       entity.Actor{ID: uuid.New(), TenantID: uuid.New(), Name: "Operator"},
		tokenSvc:    mockSvc.NewMockTokenService(t),
		mergeUC:     mockUsecase.NewMockMergeUsecase(t),
		duplicateUC: mockUsecase.NewMockDuplicateUsecase(t),
		dismissalUC: mockUsecase.NewMockDismissalUsecase(t),
	}
	fx.tokenSvc.EXPECT().ValidateToken(testToken).Return(&fx.actor, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	router.NewRouter(router.RouterParams{
		HealthHandler:    &handler.HealthHandler{},
		DuplicateHandler: handler.NewDuplicateHandler(handler.DuplicateHandlerParams{DuplicateUC: fx.duplicateUC, Logger: logger}),
		DismissalHandler: handler.NewDismissalHandler(handler.DismissalHandlerParams{DismissalUC: fx.dismissalUC, Logger: logger}),
		MergeHandler:     handler.NewMergeHandler(handler.MergeHandlerParams{MergeUC: fx.mergeUC, Logger: logger}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(fx.tokenSvc, logger),
	}).RegisterRoutes(e)
	fx.server = e

	return fx
}

// do sends an authenticated request and decodes the response envelope.
func (fx apiFixtures) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	var resp apiResponse
	if rec.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	}

	return rec, resp
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	return data
}
