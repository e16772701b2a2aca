package segment

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/secretcookie/pkg/encryption"
	"github.com/dmitrymomot/secretcookie/pkg/logger"
	"github.com/dmitrymomot/secretcookie/pkg/transport"
)

// Manager opens segments that share one configuration and Encrypter.
// It is immutable and safe for concurrent use.
type Manager struct {
	opts options
	enc  encryption.Encrypter
}

// NewManager creates a Manager. Unless WithEncrypter is given, the Encrypter
// is built from the configured algo, cipher and keys.
func NewManager(opts ...Option) (*Manager, error) {
	o := newOptions(opts)

	enc := o.encrypter
	if enc == nil {
		var err error
		if enc, err = encryption.New(o.config.EncryptionConfig()); err != nil {
			return nil, err
		}
		if o.config.Key == DefaultKey {
			o.logger.Warn("segment key is the built-in placeholder, set SEGMENT_KEY",
				logger.Component("segment"))
		}
	}

	return &Manager{opts: o, enc: enc}, nil
}

// NewFromConfig creates a Manager from cfg merged over the defaults.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return NewManager(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Config returns the merged configuration.
func (m *Manager) Config() Config {
	return m.opts.config
}

// Open creates and resolves the segment name over tr.
func (m *Manager) Open(ctx context.Context, tr transport.Transport, name string) *Segment {
	return newSegment(ctx, name, tr, m.enc, m.opts)
}

// Request opens the segment name for an HTTP request.
// Save must run before the response header is written.
func (m *Manager) Request(w http.ResponseWriter, r *http.Request, name string) *Segment {
	return m.Open(r.Context(), m.transport(w, r), name)
}

func (m *Manager) transport(w http.ResponseWriter, r *http.Request) *transport.HTTP {
	return transport.NewHTTP(w, r, transport.WithMaxSize(m.opts.maxSize))
}
