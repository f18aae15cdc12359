package executor_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jack28cas/zeroshade/internal/api/shared/dto"
	apierrors "github.com/Jack28cas/zeroshade/internal/api/shared/errors"
	"github.com/Jack28cas/zeroshade/internal/api/shared/executor"
	"github.com/Jack28cas/zeroshade/internal/deployer"
	"github.com/Jack28cas/zeroshade/internal/domain"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/mocks"
	"github.com/Jack28cas/zeroshade/internal/store/schema"
)

const (
	testAddress = "0x0def000000000000000000000000000000000000000000000000000000000001"
	testOwner   = "0xabc"
)

type testExecutorMocks struct {
	store    *mocks.MockStore
	resolver *mocks.MockMetadataResolver
	deployer *mocks.MockDeployer
	clock    *mocks.MockClock
	now      time.Time
	executor executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	return setupTestExecutorAt(t, time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC))
}

// setupTestExecutorAt builds the executor with a clock frozen at now
func setupTestExecutorAt(t *testing.T, now time.Time) *testExecutorMocks {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		store:    mocks.NewMockStore(ctrl),
		resolver: mocks.NewMockMetadataResolver(ctrl),
		deployer: mocks.NewMockDeployer(ctrl),
		clock:    mocks.NewMockClock(ctrl),
		now:      now,
	}
	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()
	tm.executor = executor.NewExecutor(tm.store, tm.resolver, tm.deployer, tm.clock, nil)

	return tm
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, apierrors.AsAPIError(err).Status)
}

func TestExecutor_ListTokens(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	tm.store.EXPECT().ListTokens(ctx).Return([]schema.Token{
		{Address: "0x2", Name: "B", Symbol: "B", CreatedAt: tm.now},
		{Address: "0x1", Name: "A", Symbol: "A", Creator: testOwner, CreatedAt: tm.now.Add(-time.Hour)},
	}, nil)

	tokens, err := tm.executor.ListTokens(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "0x2", tokens[0].Address)
	assert.Equal(t, testOwner, tokens[1].Creator)
}

func TestExecutor_ListTokens_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	tm.store.EXPECT().ListTokens(ctx).Return(nil, errors.New("connection refused"))

	_, err := tm.executor.ListTokens(ctx)
	requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Internal server error", apierrors.AsAPIError(err).Message)
}

func TestExecutor_RegisterToken(t *testing.T) {
	t.Run("missing address", func(t *testing.T) {
		tm := setupTestExecutor(t)
		_, err := tm.executor.RegisterToken(context.Background(), dto.RegisterTokenRequest{Address: " "})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("existing token returned without chain reads", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()
		existing := &schema.Token{Address: testAddress, Name: "Old", Symbol: "OLD", Creator: testOwner, CreatedAt: tm.now.Add(-time.Hour)}

		tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(existing, nil)

		token, err := tm.executor.RegisterToken(ctx, dto.RegisterTokenRequest{Address: testAddress, Name: "New"})
		require.NoError(t, err)
		assert.Equal(t, "Old", token.Name)
		assert.Equal(t, testOwner, token.Creator)
	})

	t.Run("reads only missing fields", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, nil)
		tm.resolver.EXPECT().ResolveSymbol(ctx, testAddress).Return("UNK")
		tm.store.EXPECT().UpsertToken(ctx, &schema.Token{
			Address:   testAddress,
			Name:      "Foo",
			Symbol:    "UNK",
			Creator:   "",
			CreatedAt: tm.now,
		}).Return(nil)

		token, err := tm.executor.RegisterToken(ctx, dto.RegisterTokenRequest{Address: testAddress, Name: "Foo"})
		require.NoError(t, err)
		assert.Equal(t, "Foo", token.Name)
		assert.Equal(t, "UNK", token.Symbol)
		assert.Equal(t, "", token.Creator)
		assert.Equal(t, tm.now, token.CreatedAt)
	})

	t.Run("store failure", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, errors.New("timeout"))

		_, err := tm.executor.RegisterToken(ctx, dto.RegisterTokenRequest{Address: testAddress})
		requireStatus(t, err, http.StatusInternalServerError)
	})

	t.Run("second registration returns the identical record", func(t *testing.T) {
		tm := setupTestExecutorAt(t, time.Date(2026, 10, 18, 13, 27, 21, 240612454, time.UTC))
		ctx := context.Background()

		// stored keeps what a timestamptz column would keep
		var stored schema.Token
		gomock.InOrder(
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, nil),
			tm.store.EXPECT().UpsertToken(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, token *schema.Token) error {
					stored = *token
					stored.CreatedAt = stored.CreatedAt.Truncate(time.Microsecond)
					return nil
				}),
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).DoAndReturn(
				func(context.Context, string) (*schema.Token, error) {
					token := stored
					return &token, nil
				}),
		)

		req := dto.RegisterTokenRequest{Address: testAddress, Name: "Foo", Symbol: "FOO"}
		first, err := tm.executor.RegisterToken(ctx, req)
		require.NoError(t, err)
		second, err := tm.executor.RegisterToken(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 240612000, first.CreatedAt.Nanosecond())
	})

	t.Run("address is stored in canonical form", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, nil)
		tm.store.EXPECT().UpsertToken(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, token *schema.Token) error {
				assert.Equal(t, testAddress, token.Address)
				return nil
			})

		token, err := tm.executor.RegisterToken(ctx, dto.RegisterTokenRequest{Address: " 0xDEF000000000000000000000000000000000000000000000000000000000001 ", Name: "Foo", Symbol: "FOO"})
		require.NoError(t, err)
		assert.Equal(t, testAddress, token.Address)
	})
}

func TestExecutor_GetToken(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(&schema.Token{Address: testAddress, Name: "Foo"}, nil)
	tm.store.EXPECT().GetTokenByAddress(ctx, "0xmissing").Return(nil, nil)

	token, err := tm.executor.GetToken(ctx, testAddress)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "Foo", token.Name)

	token, err = tm.executor.GetToken(ctx, "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestExecutor_GetTokensByCreator(t *testing.T) {
	tm := setupTestExecutor(t)
	ctx := context.Background()

	tm.store.EXPECT().ListTokensByCreator(ctx, testOwner).Return(nil, nil)

	tokens, err := tm.executor.GetTokensByCreator(ctx, testOwner)
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestExecutor_RefreshToken(t *testing.T) {
	t.Run("preserves creator and creation time", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()
		created := tm.now.Add(-24 * time.Hour)
		existing := &schema.Token{Address: testAddress, Name: "Old", Symbol: "OLD", Creator: testOwner, CreatedAt: created}
		updated := &schema.Token{Address: testAddress, Name: "Foo", Symbol: "UNK", Creator: testOwner, CreatedAt: created}

		tm.resolver.EXPECT().Resolve(ctx, testAddress).Return(metadata.TokenMetadata{Name: "Foo", Symbol: "UNK"})
		gomock.InOrder(
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(existing, nil),
			tm.store.EXPECT().UpsertToken(ctx, updated).Return(nil),
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(updated, nil),
		)

		token, err := tm.executor.RefreshToken(ctx, testAddress)
		require.NoError(t, err)
		assert.Equal(t, "Foo", token.Name)
		assert.Equal(t, "UNK", token.Symbol)
		assert.Equal(t, testOwner, token.Creator)
		assert.Equal(t, created, token.CreatedAt)
	})

	t.Run("unknown token gets a fresh record", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()
		fresh := &schema.Token{Address: testAddress, Name: "Unknown", Symbol: "UNK", Creator: "", CreatedAt: tm.now}

		tm.resolver.EXPECT().Resolve(ctx, testAddress).Return(metadata.TokenMetadata{Name: "Unknown", Symbol: "UNK"})
		gomock.InOrder(
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, nil),
			tm.store.EXPECT().UpsertToken(ctx, fresh).Return(nil),
			tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(fresh, nil),
		)

		token, err := tm.executor.RefreshToken(ctx, testAddress)
		require.NoError(t, err)
		assert.Equal(t, "Unknown", token.Name)
	})

	t.Run("read back failure", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.resolver.EXPECT().Resolve(ctx, testAddress).Return(metadata.TokenMetadata{Name: "Foo", Symbol: "FOO"})
		tm.store.EXPECT().GetTokenByAddress(ctx, testAddress).Return(nil, nil).Times(2)
		tm.store.EXPECT().UpsertToken(ctx, gomock.Any()).Return(nil)

		_, err := tm.executor.RefreshToken(ctx, testAddress)
		requireStatus(t, err, http.StatusInternalServerError)
		assert.Equal(t, "Failed to retrieve updated token", apierrors.AsAPIError(err).Message)
	})
}

func deployRequest(supply int64) dto.DeployTokenRequest {
	d := decimal.NewFromInt(supply)
	return dto.DeployTokenRequest{
		TokenName:     "Foo",
		TokenSymbol:   "FOO",
		InitialSupply: &d,
		OwnerAddress:  testOwner,
	}
}

func TestExecutor_DeployToken(t *testing.T) {
	t.Run("deploys and registers under the owner", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.deployer.EXPECT().Deploy(gomock.Any(), deployer.Request{
			Name:          "Foo",
			Symbol:        "FOO",
			InitialSupply: "1000000",
			Owner:         testOwner,
		}).Return(&deployer.Result{Address: testAddress, TransactionHash: "0x123"}, nil)
		tm.store.EXPECT().UpsertToken(gomock.Any(), &schema.Token{
			Address:   testAddress,
			Name:      "Foo",
			Symbol:    "FOO",
			Creator:   testOwner,
			CreatedAt: tm.now,
		}).Return(nil)

		resp, err := tm.executor.DeployToken(ctx, deployRequest(1000000))
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, testAddress, resp.Address)
		assert.Equal(t, "0x123", resp.TransactionHash)
	})

	t.Run("stores the canonical address and answers with the extracted one", func(t *testing.T) {
		tm := setupTestExecutorAt(t, time.Date(2026, 1, 2, 3, 4, 5, 999999999, time.UTC))
		ctx := context.Background()

		extracted := "0xDEF000000000000000000000000000000000000000000000000000000000001"
		tm.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(&deployer.Result{Address: extracted}, nil)
		tm.store.EXPECT().UpsertToken(gomock.Any(), &schema.Token{
			Address:   testAddress,
			Name:      "Foo",
			Symbol:    "FOO",
			Creator:   testOwner,
			CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 999999000, time.UTC),
		}).Return(nil)

		resp, err := tm.executor.DeployToken(ctx, deployRequest(1))
		require.NoError(t, err)
		assert.Equal(t, extracted, resp.Address)
	})

	t.Run("persistence failure does not fail the deployment", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(&deployer.Result{Address: testAddress}, nil)
		tm.store.EXPECT().UpsertToken(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		resp, err := tm.executor.DeployToken(ctx, deployRequest(1))
		require.NoError(t, err)
		assert.Equal(t, testAddress, resp.Address)
	})

	t.Run("deployment failure is reported", func(t *testing.T) {
		tm := setupTestExecutor(t)
		ctx := context.Background()

		tm.deployer.EXPECT().Deploy(gomock.Any(), gomock.Any()).Return(nil, &deployer.Error{
			Err:     domain.ErrDeployerNotInstalled,
			Message: domain.ErrDeployerNotInstalled.Error(),
		})

		_, err := tm.executor.DeployToken(ctx, deployRequest(1))
		requireStatus(t, err, http.StatusInternalServerError)
		assert.Contains(t, apierrors.AsAPIError(err).Message, "starkli is not installed or not in PATH")
	})

	t.Run("missing owner", func(t *testing.T) {
		tm := setupTestExecutor(t)
		req := deployRequest(1)
		req.OwnerAddress = ""

		_, err := tm.executor.DeployToken(context.Background(), req)
		requireStatus(t, err, http.StatusBadRequest)
	})
}
