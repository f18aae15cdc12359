package deployer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Jack28cas/zeroshade/internal/adapter"
	"github.com/Jack28cas/zeroshade/internal/logger"
)

// Config holds the deployment script settings
type Config struct {
	ScriptPath       string
	WorkDir          string
	Account          string
	Keystore         string
	KeystorePassword string
	RPCURL           string
	Timeout          time.Duration
}

// Request describes a token to deploy
type Request struct {
	Name          string
	Symbol        string
	InitialSupply string
	Owner         string
}

// Result is a successful deployment
type Result struct {
	Address         string
	TransactionHash string
}

// Deployer deploys new token contracts
//
//go:generate mockgen -source=deployer.go -destination=../mocks/deployer.go -package=mocks -mock_names=Deployer=MockDeployer
type Deployer interface {
	// Deploy runs the deployment procedure and returns the new token address
	Deploy(ctx context.Context, req Request) (*Result, error)
}

type scriptDeployer struct {
	config Config
	runner adapter.CommandRunner
}

// New creates a deployer that drives the deployment shell script
func New(config Config, runner adapter.CommandRunner) Deployer {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Minute
	}
	if home, err := os.UserHomeDir(); err == nil {
		if config.Account == "" {
			config.Account = filepath.Join(home, ".starkli", "accounts", "sepolia", "my.json")
		}
		if config.Keystore == "" {
			config.Keystore = filepath.Join(home, ".starkli", "keystores", "my_keystore.json")
		}
	}
	return &scriptDeployer{config: config, runner: runner}
}

// Deploy runs the script and extracts the deployed address from its output.
// A script that exits non-zero after printing an address is still a success.
func (d *scriptDeployer) Deploy(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	logger.InfoCtx(ctx, "Deploying token via script",
		zap.String("name", req.Name),
		zap.String("symbol", req.Symbol),
		zap.String("script", d.config.ScriptPath),
		zap.String("work_dir", d.config.WorkDir))

	result, err := d.runner.Run(ctx, d.command(req))
	if result == nil {
		return nil, fmt.Errorf("failed to deploy token: failed to run deployment script: %w", err)
	}
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("failed to deploy token: deployment timed out after %s", d.config.Timeout)
		}
		logger.WarnCtx(ctx, "Deployment script exited with error, checking output",
			zap.Int("exit_code", result.ExitCode),
			zap.Error(err))
	}

	address, ok := ExtractAddress(result.Stdout)
	if !ok {
		logger.WarnCtx(ctx, "No token address in deployment output",
			zap.String("stdout", result.Stdout),
			zap.String("stderr", result.Stderr))
		return nil, fmt.Errorf("failed to deploy token: %w", DiagnoseFailure(result.Stdout, result.Stderr))
	}

	deployed := &Result{
		Address:         address,
		TransactionHash: ExtractTransactionHash(result.Stdout),
	}
	logger.InfoCtx(ctx, "Token deployed",
		zap.String("address", deployed.Address),
		zap.String("transaction_hash", deployed.TransactionHash))

	return deployed, nil
}

// command builds the script invocation. Inputs travel through the environment
// and stdin only, never through a shell string.
func (d *scriptDeployer) command(req Request) adapter.Command {
	return adapter.Command{
		Name: "bash",
		Args: []string{d.config.ScriptPath},
		Dir:  d.config.WorkDir,
		Env: []string{
			"ACCOUNT=" + d.config.Account,
			"KEYSTORE=" + d.config.Keystore,
			"RPC=" + d.config.RPCURL,
			"KEYSTORE_PASSWORD=" + d.config.KeystorePassword,
			"STARKNET_KEYSTORE_PASSWORD=" + d.config.KeystorePassword,
			"TOKEN_NAME_INPUT=" + req.Name,
			"TOKEN_SYMBOL_INPUT=" + req.Symbol,
			"INITIAL_SUPPLY=" + req.InitialSupply,
			"OWNER_ADDRESS=" + req.Owner,
			"TOKEN_NAME_FELT=" + TextToFelt252(req.Name),
			"TOKEN_SYMBOL_FELT=" + TextToFelt252(req.Symbol),
		},
		Stdin: req.Name + "\n" + req.Symbol + "\n" + req.InitialSupply + "\n",
	}
}
