package segment

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/secretcookie/pkg/encryption"
)

// Defaults applied when a Config field is empty or invalid.
const (
	DefaultAlgo     = encryption.AlgoSHA256
	DefaultCipher   = encryption.CipherAES256CTR
	DefaultKey      = "SecretCookie" // placeholder, must be overridden in any real deployment
	DefaultTTL      = 3600
	DefaultPath     = "/"
	DefaultSecure   = false
	DefaultHTTPOnly = true
	DefaultSameSite = "Strict"
)

// MaxTTL is the largest lifetime in seconds that still fits a time.Duration.
// Larger values are treated as invalid.
const MaxTTL = int64(math.MaxInt64 / time.Second)

// Config holds segment settings.
//
// Fields are strings because they usually come from the environment, YAML or
// flags. TTL, Secure, HTTPOnly and SameSite are validated when the segment is
// saved; invalid values fall back to their defaults with a diagnostic instead
// of failing.
type Config struct {
	Algo   string `env:"SEGMENT_ALGO" envDefault:"SHA256" yaml:"algo"`
	Cipher string `env:"SEGMENT_CIPHER" envDefault:"AES-256-CTR" yaml:"cipher"`
	Key    string `env:"SEGMENT_KEY" envDefault:"SecretCookie" yaml:"key"`
	// FallbackKeys is a comma-separated list of previous keys still accepted
	// when decrypting.
	FallbackKeys string `env:"SEGMENT_FALLBACK_KEYS" envDefault:"" yaml:"fallback_keys"`
	// TTL is the cookie lifetime in seconds.
	TTL      string `env:"SEGMENT_TTL" envDefault:"3600" yaml:"ttl"`
	Path     string `env:"SEGMENT_PATH" envDefault:"/" yaml:"path"`
	Domain   string `env:"SEGMENT_DOMAIN" envDefault:"" yaml:"domain"`
	Secure   string `env:"SEGMENT_SECURE" envDefault:"false" yaml:"secure"`
	HTTPOnly string `env:"SEGMENT_HTTP_ONLY" envDefault:"true" yaml:"httponly"`
	// SameSite is one of None, Lax or Strict, case-insensitive.
	SameSite string `env:"SEGMENT_SAME_SITE" envDefault:"Strict" yaml:"samesite"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Algo:     DefaultAlgo,
		Cipher:   DefaultCipher,
		Key:      DefaultKey,
		TTL:      strconv.Itoa(DefaultTTL),
		Path:     DefaultPath,
		Secure:   strconv.FormatBool(DefaultSecure),
		HTTPOnly: strconv.FormatBool(DefaultHTTPOnly),
		SameSite: DefaultSameSite,
	}
}

// Merge returns c with every non-empty field of override applied.
func (c Config) Merge(override Config) Config {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&c.Algo, override.Algo)
	set(&c.Cipher, override.Cipher)
	set(&c.Key, override.Key)
	set(&c.FallbackKeys, override.FallbackKeys)
	set(&c.TTL, override.TTL)
	set(&c.Path, override.Path)
	set(&c.Domain, override.Domain)
	set(&c.Secure, override.Secure)
	set(&c.HTTPOnly, override.HTTPOnly)
	set(&c.SameSite, override.SameSite)

	return c
}

// Keys returns Key followed by the parsed FallbackKeys.
// Blank entries are dropped.
func (c Config) Keys() []string {
	keys := make([]string, 0, 1)
	if c.Key != "" {
		keys = append(keys, c.Key)
	}

	for _, k := range strings.Split(c.FallbackKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return keys
}

// EncryptionConfig returns the settings for encryption.New.
func (c Config) EncryptionConfig() encryption.Config {
	return encryption.Config{
		Algo:   c.Algo,
		Cipher: c.Cipher,
		Keys:   c.Keys(),
	}
}

// cookieSettings are the validated, typed cookie attributes.
type cookieSettings struct {
	ttl      int
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Config field names reported in diagnostics.
const (
	fieldTTL      = "ttl"
	fieldSecure   = "secure"
	fieldHTTPOnly = "httponly"
	fieldSameSite = "samesite"
)

// validate parses the cookie attributes, resetting invalid fields to their
// defaults in place. It returns the names of the fields that were reset.
func (c *Config) validate() (cookieSettings, []string) {
	var (
		s       cookieSettings
		invalid []string
		err     error
	)

	if s.ttl, err = strconv.Atoi(strings.TrimSpace(c.TTL)); err != nil || int64(s.ttl) > MaxTTL || int64(s.ttl) < -MaxTTL {
		s.ttl = DefaultTTL
		c.TTL = strconv.Itoa(DefaultTTL)
		invalid = append(invalid, fieldTTL)
	}

	if s.secure, err = strconv.ParseBool(strings.TrimSpace(c.Secure)); err != nil {
		s.secure = DefaultSecure
		c.Secure = strconv.FormatBool(DefaultSecure)
		invalid = append(invalid, fieldSecure)
	}

	if s.httpOnly, err = strconv.ParseBool(strings.TrimSpace(c.HTTPOnly)); err != nil {
		s.httpOnly = DefaultHTTPOnly
		c.HTTPOnly = strconv.FormatBool(DefaultHTTPOnly)
		invalid = append(invalid, fieldHTTPOnly)
	}

	var ok bool
	if s.sameSite, ok = parseSameSite(c.SameSite); !ok {
		s.sameSite = http.SameSiteStrictMode
		c.SameSite = DefaultSameSite
		invalid = append(invalid, fieldSameSite)
	}

	return s, invalid
}

func parseSameSite(v string) (http.SameSite, bool) {
	switch cases.Fold().String(strings.TrimSpace(v)) {
	case "none":
		return http.SameSiteNoneMode, true
	case "lax":
		return http.SameSiteLaxMode, true
	case "strict":
		return http.SameSiteStrictMode, true
	default:
		return 0, false
	}
}
