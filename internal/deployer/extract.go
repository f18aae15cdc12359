package deployer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jack28cas/zeroshade/internal/domain"
)

const outputPreviewLength = 500

var (
	// labelled address lines, most specific first
	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)📍 Token Address:\s*(0x[a-fA-F0-9]{60,})`),
		regexp.MustCompile(`(?i)Token Address:\s*(0x[a-fA-F0-9]{60,})`),
		regexp.MustCompile(`(?i)Contract deployed:\s*(0x[a-fA-F0-9]{60,})`),
	}
	bareAddressPattern = regexp.MustCompile(`(?i)(0x[a-fA-F0-9]{60,})`)
	txHashPattern      = regexp.MustCompile(`(?i)transaction.*?:\s*(0x[a-fA-F0-9]{60,})`)
	errorLinePattern   = regexp.MustCompile(`(?i)Error[^:]*:\s*(.+)`)

	toolMissingMarkers = []string{
		"starkli no está instalado",
		"starkli: command not found",
		"starkli: not found",
	}
	errorMarkers = []string{
		"Error al desplegar",
		"Error:",
	}
)

// Error describes a deployment whose output carried no token address
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExtractAddress returns the deployed token address found in the script output.
// Labelled lines win; otherwise the last address-like value in the output is used.
func ExtractAddress(output string) (string, bool) {
	for _, p := range addressPatterns {
		if m := p.FindStringSubmatch(output); m != nil {
			return m[1], true
		}
	}

	all := bareAddressPattern.FindAllStringSubmatch(output, -1)
	if len(all) == 0 {
		return "", false
	}
	return all[len(all)-1][1], true
}

// ExtractTransactionHash returns the deployment transaction hash, or "" when absent
func ExtractTransactionHash(output string) string {
	if m := txHashPattern.FindStringSubmatch(output); m != nil {
		return m[1]
	}
	return ""
}

// DiagnoseFailure explains why no address could be extracted from the output
func DiagnoseFailure(stdout, stderr string) error {
	combined := stdout + "\n" + stderr

	for _, marker := range toolMissingMarkers {
		if strings.Contains(combined, marker) {
			return &Error{
				Err:     domain.ErrDeployerNotInstalled,
				Message: "starkli is not installed or not in PATH. Please install starkli and ensure it is available to the deployment script",
			}
		}
	}

	for _, marker := range errorMarkers {
		if strings.Contains(stdout, marker) {
			msg := "Unknown deployment error"
			if m := errorLinePattern.FindStringSubmatch(stdout); m != nil {
				msg = strings.TrimSpace(m[1])
			}
			return &Error{
				Err:     domain.ErrDeploymentFailed,
				Message: fmt.Sprintf("Deployment failed: %s", msg),
			}
		}
	}

	return &Error{
		Err:     domain.ErrAddressNotExtracted,
		Message: fmt.Sprintf("Could not extract token address from script output. Script output: %s", preview(stdout)),
	}
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > outputPreviewLength {
		runes = runes[:outputPreviewLength]
	}
	return string(runes)
}
