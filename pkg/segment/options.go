package segment

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/secretcookie/pkg/encryption"
	"github.com/dmitrymomot/secretcookie/pkg/transport"
)

// Option configures a Segment or a Manager.
type Option func(*options)

type options struct {
	config    Config
	encrypter encryption.Encrypter
	logger    *slog.Logger
	now       func() time.Time
	maxSize   int
}

func newOptions(opts []Option) options {
	o := options{
		config:  DefaultConfig(),
		logger:  slog.Default(),
		now:     time.Now,
		maxSize: transport.MaxCookieSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithConfig merges cfg over the current configuration.
// Only non-empty fields override.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = o.config.Merge(cfg)
	}
}

// WithTTL sets the cookie lifetime in seconds.
func WithTTL(seconds int) Option {
	return func(o *options) {
		o.config.TTL = strconv.Itoa(seconds)
	}
}

func WithPath(path string) Option {
	return func(o *options) {
		o.config.Path = path
	}
}

// WithDomain sets the cookie domain. An empty domain scopes the cookie to the
// current host.
func WithDomain(domain string) Option {
	return func(o *options) {
		o.config.Domain = domain
	}
}

func WithSecure(secure bool) Option {
	return func(o *options) {
		o.config.Secure = strconv.FormatBool(secure)
	}
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(o *options) {
		o.config.HTTPOnly = strconv.FormatBool(httpOnly)
	}
}

// WithSameSite sets the SameSite policy: None, Lax or Strict.
func WithSameSite(sameSite string) Option {
	return func(o *options) {
		o.config.SameSite = sameSite
	}
}

// WithKey sets the encryption key and optional previous keys for rotation.
func WithKey(key string, fallback ...string) Option {
	return func(o *options) {
		o.config.Key = key
		o.config.FallbackKeys = strings.Join(fallback, ",")
	}
}

func WithAlgo(algo string) Option {
	return func(o *options) {
		o.config.Algo = algo
	}
}

func WithCipher(cipher string) Option {
	return func(o *options) {
		o.config.Cipher = cipher
	}
}

// WithEncrypter makes NewManager use enc instead of building one from the
// configuration.
func WithEncrypter(enc encryption.Encrypter) Option {
	return func(o *options) {
		o.encrypter = enc
	}
}

// WithLogger sets the logger diagnostics are reported to. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides time.Now when computing cookie expiry.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithMaxCookieSize sets the Set-Cookie size limit for HTTP transports
// created by the Manager.
func WithMaxCookieSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.maxSize = size
		}
	}
}
