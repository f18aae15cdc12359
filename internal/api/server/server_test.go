package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/api/middleware"
	"github.com/Jack28cas/zeroshade/internal/api/server"
	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	"github.com/Jack28cas/zeroshade/internal/api/shared/executor"
	"github.com/Jack28cas/zeroshade/internal/deployer"
	"github.com/Jack28cas/zeroshade/internal/metrics"
	"github.com/Jack28cas/zeroshade/internal/mocks"
	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

const (
	deployedAddress = "0xDEF0123456789abcdef0123456789abcdef0123456789abcdef0123456789ab"
	storedAddress   = "0x0def0123456789abcdef0123456789abcdef0123456789abcdef0123456789ab"
	registered      = "0x0000000000000000000000000000000000000000000000000000000000000123"
)

// memStore keeps tokens in memory for end-to-end request flows. Creation
// times keep microsecond precision like the postgres column.
type memStore struct {
	mu      sync.Mutex
	tokens  map[string]schema.Token
	cursors map[string]uint64
}

func newMemStore() *memStore {
	return &memStore{tokens: map[string]schema.Token{}, cursors: map[string]uint64{}}
}

func (s *memStore) UpsertToken(_ context.Context, token *schema.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *token
	stored.CreatedAt = stored.CreatedAt.Truncate(time.Microsecond)
	s.tokens[token.Address] = stored
	return nil
}

func (s *memStore) GetTokenByAddress(_ context.Context, address string) (*schema.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[address]
	if !ok {
		return nil, nil
	}
	return &token, nil
}

func (s *memStore) ListTokens(_ context.Context) ([]schema.Token, error) {
	return s.filter(func(schema.Token) bool { return true }), nil
}

func (s *memStore) ListTokensByCreator(_ context.Context, creator string) ([]schema.Token, error) {
	return s.filter(func(t schema.Token) bool { return t.Creator == creator }), nil
}

func (s *memStore) filter(keep func(schema.Token) bool) []schema.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]schema.Token, 0)
	for _, t := range s.tokens {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result
}

func (s *memStore) GetBlockCursor(_ context.Context, name string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursors[name], nil
}

func (s *memStore) SetBlockCursor(_ context.Context, name string, blockNumber uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursors[name] = blockNumber
	return nil
}

type testServer struct {
	runner   *mocks.MockCommandRunner
	resolver *mocks.MockMetadataResolver
	handler  http.Handler
}

func setupTestServer(t *testing.T, auth middleware.AuthConfig) *testServer {
	ctrl := gomock.NewController(t)

	ts := &testServer{
		runner:   mocks.NewMockCommandRunner(ctrl),
		resolver: mocks.NewMockMetadataResolver(ctrl),
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	clock := adapter.NewClock()

	dep := deployer.New(deployer.Config{
		ScriptPath: "scripts/deploy_token.sh",
		Account:    "/keys/account.json",
		Keystore:   "/keys/keystore.json",
		Timeout:    time.Minute,
	}, ts.runner)
	exec := executor.NewExecutor(newMemStore(), ts.resolver, dep, clock, m)

	srv := server.New(server.Config{Auth: auth}, exec, clock, m, reg)
	router, err := srv.Router()
	require.NoError(t, err)
	ts.handler = router

	return ts
}

func (ts *testServer) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func (ts *testServer) expectDeployment() {
	ts.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd adapter.Command) (*adapter.CommandResult, error) {
			if cmd.Stdin != "Foo\nFOO\n1000000\n" {
				return &adapter.CommandResult{ExitCode: 1, Stderr: "unexpected input"}, nil
			}
			return &adapter.CommandResult{
				Stdout: "Declaring...\nToken Address: " + deployedAddress + "\nDone\n",
			}, nil
		})
}

const deployBody = `{"tokenName":"Foo","tokenSymbol":"FOO","initialSupply":"1000000","ownerAddress":"0xabc"}`

func TestServer_DeployThenLookup(t *testing.T) {
	ts := setupTestServer(t, middleware.AuthConfig{})
	ts.expectDeployment()

	w := ts.do(http.MethodPost, "/api/tokens/deploy", deployBody, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var deployed dto.DeployTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deployed))
	assert.True(t, deployed.Success)
	assert.Equal(t, deployedAddress, deployed.Address)

	w = ts.do(http.MethodGet, "/api/tokens/"+deployedAddress, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var token dto.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	assert.Equal(t, "0xabc", token.Creator)
	assert.Equal(t, "Foo", token.Name)
	assert.Equal(t, "FOO", token.Symbol)

	w = ts.do(http.MethodGet, "/api/tokens/creator/0xabc", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var byCreator []dto.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &byCreator))
	require.Len(t, byCreator, 1)
	assert.Equal(t, storedAddress, byCreator[0].Address)

	// the padded encoding finds the same record
	w = ts.do(http.MethodGet, "/api/tokens/"+storedAddress, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"creator":"0xabc"`)
}

func TestServer_RegisterIsIdempotent(t *testing.T) {
	ts := setupTestServer(t, middleware.AuthConfig{})
	ts.resolver.EXPECT().ResolveName(gomock.Any(), registered).Return("Unknown").Times(1)
	ts.resolver.EXPECT().ResolveSymbol(gomock.Any(), registered).Return("UNK").Times(1)

	first := ts.do(http.MethodPost, "/api/tokens", `{"address":"0x123"}`, nil)
	require.Equal(t, http.StatusOK, first.Code)

	// a differently encoded address is the same token
	second := ts.do(http.MethodPost, "/api/tokens", `{"address":"0x0123"}`, nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	w := ts.do(http.MethodGet, "/api/tokens", "", nil)
	var tokens []dto.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	assert.Len(t, tokens, 1)
}

func TestServer_DeployRequiresAuthWhenConfigured(t *testing.T) {
	ts := setupTestServer(t, middleware.AuthConfig{APIKeys: []string{"secret"}})

	w := ts.do(http.MethodPost, "/api/tokens/deploy", deployBody, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.expectDeployment()
	w = ts.do(http.MethodPost, "/api/tokens/deploy", deployBody, map[string]string{"Authorization": "ApiKey secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// reads stay public
	w = ts.do(http.MethodGet, "/api/tokens", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := setupTestServer(t, middleware.AuthConfig{})

	w := ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	w = ts.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "zeroshade_http_requests_total")
}

func TestServer_InvalidJWTKey(t *testing.T) {
	srv := server.New(server.Config{Auth: middleware.AuthConfig{JWTPublicKey: "garbage"}}, nil, adapter.NewClock(), nil, nil)
	_, err := srv.Router()
	assert.Error(t, err)
}
