package deployer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jack28cas/zeroshade/internal/domain"
)

const (
	tokenAddress = "0x0000c1da35e0ca183429db3e8fcb0425b9308e6cd50850412ce7aa899ce84960"
	otherAddress = "0x07ee147bfd2037bcbfe96196689a3ba52e47271a7c5517880ed0f6c88d218c98"
	txHash       = "0x04ea108d263eac17f70af11fef789816d39b2fdf96d051da10c1d27c0f50e67b"
)

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
		found    bool
	}{
		{
			name:     "pin labelled address",
			output:   "Declaring...\n📍 Token Address: " + tokenAddress + "\nDone",
			expected: tokenAddress,
			found:    true,
		},
		{
			name:     "labelled address is case insensitive",
			output:   "token address:   " + tokenAddress,
			expected: tokenAddress,
			found:    true,
		},
		{
			name:     "labelled address wins over later bare addresses",
			output:   "Token Address: " + tokenAddress + "\nclass hash " + otherAddress,
			expected: tokenAddress,
			found:    true,
		},
		{
			name:     "contract deployed line",
			output:   "Contract deployed: " + tokenAddress,
			expected: tokenAddress,
			found:    true,
		},
		{
			name:     "last bare address",
			output:   "class " + otherAddress + "\nthen " + tokenAddress + "\n",
			expected: tokenAddress,
			found:    true,
		},
		{
			name:   "short hex is not an address",
			output: "Token Address: 0xabc",
			found:  false,
		},
		{
			name:   "no address",
			output: "nothing here",
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, ok := ExtractAddress(tt.output)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, address)
		})
	}
}

func TestExtractTransactionHash(t *testing.T) {
	assert.Equal(t, txHash, ExtractTransactionHash("Transaction hash: "+txHash))
	assert.Equal(t, txHash, ExtractTransactionHash("deploy transaction sent:  "+txHash))
	assert.Equal(t, "", ExtractTransactionHash("Token Address: "+tokenAddress))
}

func TestDiagnoseFailure(t *testing.T) {
	t.Run("tool missing on stdout", func(t *testing.T) {
		err := DiagnoseFailure("❌ starkli no está instalado", "")
		assert.True(t, errors.Is(err, domain.ErrDeployerNotInstalled))
		assert.Contains(t, err.Error(), "starkli is not installed or not in PATH")
	})

	t.Run("tool missing on stderr", func(t *testing.T) {
		err := DiagnoseFailure("", "deploy.sh: line 4: starkli: command not found")
		assert.True(t, errors.Is(err, domain.ErrDeployerNotInstalled))
	})

	t.Run("script error line", func(t *testing.T) {
		err := DiagnoseFailure("Declaring class\nError: insufficient balance for fee\n", "")
		assert.True(t, errors.Is(err, domain.ErrDeploymentFailed))
		assert.Equal(t, "Deployment failed: insufficient balance for fee", err.Error())
	})

	t.Run("no recognisable output", func(t *testing.T) {
		output := strings.Repeat("x", 600)
		err := DiagnoseFailure(output, "")
		assert.True(t, errors.Is(err, domain.ErrAddressNotExtracted))
		assert.Equal(t, "Could not extract token address from script output. Script output: "+strings.Repeat("x", 500), err.Error())
	})
}

func TestTextToFelt252(t *testing.T) {
	assert.Equal(t, "1000", TextToFelt252("1000"))
	assert.Equal(t, "1000", TextToFelt252(" 1000 "))
	assert.Equal(t, "65792", TextToFelt252("ZST"))
	assert.Equal(t, "0", TextToFelt252(""))
}
