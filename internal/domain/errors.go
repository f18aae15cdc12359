package domain

import "errors"

var (
	// ErrInvalidAddress is returned when a token address is missing or malformed
	ErrInvalidAddress = errors.New("invalid token address")

	// ErrAddressNotExtracted is returned when the deployment output carries no token address
	ErrAddressNotExtracted = errors.New("could not extract token address")

	// ErrDeployerNotInstalled is returned when the deployment toolchain is missing
	ErrDeployerNotInstalled = errors.New("starkli is not installed or not in PATH")

	// ErrDeploymentFailed is returned when the deployment procedure reports an error
	ErrDeploymentFailed = errors.New("deployment failed")
)
