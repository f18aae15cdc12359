package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Jack28cas/zeroshade/internal/api/rest"
	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	apierrors "github.com/Jack28cas/zeroshade/internal/api/shared/errors"
	"github.com/Jack28cas/zeroshade/internal/mocks"
)

const testAddress = "0x0def000000000000000000000000000000000000000000000000000000000001"

type testHandlerMocks struct {
	executor *mocks.MockAPIExecutor
	clock    *mocks.MockClock
	router   *gin.Engine
	now      time.Time
}

func setupTestRouter(t *testing.T, guards ...gin.HandlerFunc) *testHandlerMocks {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		executor: mocks.NewMockAPIExecutor(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		router:   gin.New(),
		now:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.executor, tm.clock), guards...)

	return tm
}

func (tm *testHandlerMocks) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func TestHandler_HealthCheck(t *testing.T) {
	tm := setupTestRouter(t)
	tm.clock.EXPECT().Now().Return(tm.now)

	w := tm.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2025-01-02T03:04:05Z"}`, w.Body.String())
}

func TestHandler_ListTokens(t *testing.T) {
	tm := setupTestRouter(t)
	tm.executor.EXPECT().ListTokens(gomock.Any()).Return([]dto.Token{
		{Address: testAddress, Name: "Foo", Symbol: "FOO", Creator: "0xabc", CreatedAt: tm.now},
	}, nil)

	w := tm.do(http.MethodGet, "/api/tokens", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"address":"`+testAddress+`","name":"Foo","symbol":"FOO","creator":"0xabc","createdAt":"2025-01-02T03:04:05Z"}]`, w.Body.String())
}

func TestHandler_ListTokens_Empty(t *testing.T) {
	tm := setupTestRouter(t)
	tm.executor.EXPECT().ListTokens(gomock.Any()).Return([]dto.Token{}, nil)

	w := tm.do(http.MethodGet, "/api/tokens", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListTokens_Error(t *testing.T) {
	tm := setupTestRouter(t)
	tm.executor.EXPECT().ListTokens(gomock.Any()).Return(nil, apierrors.NewDatabaseError("connection refused"))

	w := tm.do(http.MethodGet, "/api/tokens", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestHandler_RegisterToken(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().
			RegisterToken(gomock.Any(), dto.RegisterTokenRequest{Address: testAddress, Name: "Foo"}).
			Return(&dto.Token{Address: testAddress, Name: "Foo", Symbol: "UNK", CreatedAt: tm.now}, nil)

		w := tm.do(http.MethodPost, "/api/tokens", `{"address":"`+testAddress+`","name":"Foo"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"symbol":"UNK"`)
	})

	t.Run("missing address", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().
			RegisterToken(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewBadRequestError("Token address is required"))

		w := tm.do(http.MethodPost, "/api/tokens", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Token address is required"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		tm := setupTestRouter(t)

		w := tm.do(http.MethodPost, "/api/tokens", `{"address":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})
}

func TestHandler_GetToken(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().GetToken(gomock.Any(), testAddress).Return(&dto.Token{Address: testAddress, Name: "Foo"}, nil)

		w := tm.do(http.MethodGet, "/api/tokens/"+testAddress, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Foo"`)
	})

	t.Run("not found", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().GetToken(gomock.Any(), "0x404").Return(nil, nil)

		w := tm.do(http.MethodGet, "/api/tokens/0x404", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Token not found"}`, w.Body.String())
	})

	t.Run("unexpected error", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().GetToken(gomock.Any(), testAddress).Return(nil, errors.New("boom"))

		w := tm.do(http.MethodGet, "/api/tokens/"+testAddress, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	})
}

func TestHandler_GetTokensByCreator(t *testing.T) {
	tm := setupTestRouter(t)
	tm.executor.EXPECT().GetTokensByCreator(gomock.Any(), "0xabc").Return([]dto.Token{{Address: testAddress, Creator: "0xabc"}}, nil)

	w := tm.do(http.MethodGet, "/api/tokens/creator/0xabc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"creator":"0xabc"`)
}

func TestHandler_RefreshToken(t *testing.T) {
	tm := setupTestRouter(t)
	tm.executor.EXPECT().RefreshToken(gomock.Any(), testAddress).Return(&dto.Token{Address: testAddress, Name: "Unknown", Symbol: "UNK"}, nil)

	w := tm.do(http.MethodPost, "/api/tokens/"+testAddress+"/refresh", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Unknown"`)
}

func TestHandler_DeployToken(t *testing.T) {
	t.Run("deploys", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().DeployToken(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req dto.DeployTokenRequest) (*dto.DeployTokenResponse, error) {
				assert.Equal(t, "Foo", req.TokenName)
				assert.Equal(t, "1000000", req.Supply())
				return &dto.DeployTokenResponse{Success: true, Address: testAddress, TransactionHash: "0x1"}, nil
			})

		w := tm.do(http.MethodPost, "/api/tokens/deploy",
			`{"tokenName":"Foo","tokenSymbol":"FOO","initialSupply":1000000,"ownerAddress":"0xabc"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"address":"`+testAddress+`","transactionHash":"0x1"}`, w.Body.String())
	})

	t.Run("deployment failure message reaches the client", func(t *testing.T) {
		tm := setupTestRouter(t)
		tm.executor.EXPECT().DeployToken(gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewServiceError("failed to deploy token: starkli is not installed or not in PATH"))

		w := tm.do(http.MethodPost, "/api/tokens/deploy",
			`{"tokenName":"Foo","tokenSymbol":"FOO","initialSupply":"1","ownerAddress":"0xabc"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to deploy token: starkli is not installed or not in PATH"}`, w.Body.String())
	})

	t.Run("guard rejects", func(t *testing.T) {
		deny := func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		}
		tm := setupTestRouter(t, deny)

		w := tm.do(http.MethodPost, "/api/tokens/deploy", `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
