// Package platform provides the host shutdown capability behind a small
// provider interface so the dispatcher's side effect stays mockable.
package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// Command maps an operating system identifier to its shutdown directive.
// Recognized identifiers are the runtime.GOOS values "windows", "linux" and
// "darwin"; matching is exact and case-sensitive. The second return value
// is false for any other identifier, which is the expected outcome on
// unsupported platforms rather than an error.
func Command(osName string) (string, bool) {
	switch osName {
	case "windows":
		return "shutdown /s /t 1", true
	case "linux":
		return "shutdown -h now", true
	case "darwin":
		return "sudo shutdown -h now", true
	}
	return "", false
}

// Provider is the shutdown capability handed to the dispatcher.
type Provider interface {
	// Shutdown issues the host shutdown sequence. Fire-and-forget: a nil
	// error means the command was dispatched, not that the host halted.
	Shutdown() error

	// Directive returns the command string this provider executes.
	Directive() string
}

// NewProvider resolves the shutdown provider for the given operating system
// identifier. Returns (nil, false) when the OS is unrecognized.
func NewProvider(osName string) (Provider, bool) {
	directive, ok := Command(osName)
	if !ok {
		return nil, false
	}
	return &execProvider{directive: directive}, true
}

// execProvider executes the resolved directive via os/exec.
type execProvider struct {
	directive string
}

func (p *execProvider) Directive() string {
	return p.directive
}

func (p *execProvider) Shutdown() error {
	argv := strings.Fields(p.directive)
	cmd := exec.Command(argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", p.directive, err, strings.TrimSpace(string(output)))
	}
	return nil
}
