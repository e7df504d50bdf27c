// Package opener launches external links in the user's browser.
package opener

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// ErrUnsupportedURL is returned for anything other than http(s) URLs.
var ErrUnsupportedURL = errors.New("unsupported url")

// Browser opens links with the platform's default browser.
type Browser struct {
	Logger *slog.Logger

	// openURL is swapped in tests.
	openURL func(string) error
}

// New returns a Browser that logs failures to logger.
func New(logger *slog.Logger) *Browser {
	return &Browser{Logger: logger, openURL: browser.OpenURL}
}

// Open launches target. It is fire-and-forget: failures are logged, never
// returned.
func (b *Browser) Open(target string) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := b.open(target); err != nil {
		logger.Warn("open link failed", "url", target, "error", err)
		return
	}
	logger.Debug("opened link", "url", target)
}

func (b *Browser) open(target string) error {
	// link labels keep the daemon's surrounding whitespace
	target = strings.TrimSpace(target)
	if err := Validate(target); err != nil {
		return err
	}
	fn := b.openURL
	if fn == nil {
		fn = browser.OpenURL
	}
	if err := fn(target); err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	return nil
}

// Validate accepts absolute http and https URLs.
func Validate(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, target)
	}
	return nil
}
