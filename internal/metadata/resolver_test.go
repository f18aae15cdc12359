package metadata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Jack28cas/zeroshade/internal/chainvalue"
	"github.com/Jack28cas/zeroshade/internal/metadata"
	"github.com/Jack28cas/zeroshade/internal/mocks"
)

func setupResolver(t *testing.T) (*mocks.MockStarknetReader, metadata.Resolver) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockStarknetReader(ctrl)
	return reader, metadata.NewResolver(reader, nil)
}

func TestResolver_Resolve(t *testing.T) {
	reader, resolver := setupResolver(t)
	ctx := context.Background()

	reader.EXPECT().TokenName(ctx, "0xdef").Return(chainvalue.Wrapped("name", chainvalue.Text("418296213317")), nil)
	reader.EXPECT().TokenSymbol(ctx, "0xdef").Return(chainvalue.Wrapped("symbol", chainvalue.Text("5457229")), nil)

	md := resolver.Resolve(ctx, "0xdef")
	assert.Equal(t, "418296213317", md.Name)
	assert.Equal(t, "5457229", md.Symbol)
}

func TestResolver_PerFieldPlaceholders(t *testing.T) {
	reader, resolver := setupResolver(t)
	ctx := context.Background()

	reader.EXPECT().TokenName(ctx, "0xdef").Return(nil, errors.New("contract not found"))
	reader.EXPECT().TokenSymbol(ctx, "0xdef").Return(chainvalue.Wrapped("symbol", chainvalue.Text("5457229")), nil)

	md := resolver.Resolve(ctx, "0xdef")
	assert.Equal(t, "Unknown", md.Name)
	assert.Equal(t, "5457229", md.Symbol)
}

func TestResolver_SymbolFailure(t *testing.T) {
	reader, resolver := setupResolver(t)
	ctx := context.Background()

	reader.EXPECT().TokenSymbol(ctx, "0xdef").Return(nil, errors.New("reverted"))

	assert.Equal(t, "UNK", resolver.ResolveSymbol(ctx, "0xdef"))
}

func TestResolver_EmptyTextUsesPlaceholder(t *testing.T) {
	reader, resolver := setupResolver(t)
	ctx := context.Background()

	reader.EXPECT().TokenName(ctx, "0xdef").Return(chainvalue.Wrapped("name", chainvalue.Text("  ")), nil)

	assert.Equal(t, "Unknown", resolver.ResolveName(ctx, "0xdef"))
}

func TestResolver_NullResult(t *testing.T) {
	reader, resolver := setupResolver(t)
	ctx := context.Background()

	reader.EXPECT().TokenSymbol(ctx, "0xdef").Return(chainvalue.Null{}, nil)

	// a null result decodes to the generic null text, not the symbol placeholder
	assert.Equal(t, "Unknown", resolver.ResolveSymbol(ctx, "0xdef"))
}
