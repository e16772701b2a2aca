package segment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/secretcookie/pkg/bag"
	"github.com/dmitrymomot/secretcookie/pkg/encryption"
	"github.com/dmitrymomot/secretcookie/pkg/logger"
	"github.com/dmitrymomot/secretcookie/pkg/transport"
)

// Segment is a named set of values stored encrypted in a single cookie.
//
// A Segment is resolved from the incoming cookie when it is created and
// written back by Save only if it was changed. It is meant to live for one
// request and is not safe for concurrent use.
type Segment struct {
	ctx    context.Context
	name   string
	config Config
	values *bag.Bag
	enc    encryption.Encrypter
	tr     transport.Transport
	logger *slog.Logger
	now    func() time.Time

	changed bool
	debug   []string
}

// New creates the segment name and resolves it from tr using enc.
//
// A missing cookie or one that cannot be decrypted yields an empty segment and
// a diagnostic; New never fails. ctx is only used for logging.
func New(ctx context.Context, name string, tr transport.Transport, enc encryption.Encrypter, opts ...Option) *Segment {
	return newSegment(ctx, name, tr, enc, newOptions(opts))
}

func newSegment(ctx context.Context, name string, tr transport.Transport, enc encryption.Encrypter, o options) *Segment {
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Segment{
		ctx:    ctx,
		name:   name,
		config: o.config,
		enc:    enc,
		tr:     tr,
		logger: o.logger.With(logger.Segment(name)),
		now:    o.now,
	}
	s.resolve()

	return s
}

// resolve loads the bag from the incoming cookie.
func (s *Segment) resolve() {
	raw, ok := s.tr.Read(s.name)
	if !ok {
		s.record(slog.LevelDebug, "segment not found",
			fmt.Sprintf("The %s segment is not found in the client.", s.name), nil)
		s.values = bag.New(nil)
		return
	}

	// An empty payload is indistinguishable from a failed decryption here.
	values, err := s.enc.Decrypt(raw)
	if err != nil || len(values) == 0 {
		s.record(slog.LevelWarn, "segment could not be decrypted",
			fmt.Sprintf("Segment %s could not be decrypted; an empty or invalid value.", s.name), err)
		s.values = bag.New(nil)
		return
	}

	s.values = bag.New(values)
}

// Name returns the segment (cookie) name.
func (s *Segment) Name() string {
	return s.name
}

// Has reports whether key is set.
func (s *Segment) Has(key string) bool {
	return s.values.Has(key)
}

// Get returns the value under key or def if it is not set.
func (s *Segment) Get(key string, def any) any {
	return s.values.Get(key, def)
}

// Set stores value under key and marks the segment as changed.
func (s *Segment) Set(key string, value any) *Segment {
	s.values.Set(key, value)
	s.changed = true
	return s
}

// Remove deletes key and marks the segment as changed.
func (s *Segment) Remove(key string) *Segment {
	s.values.Remove(key)
	s.changed = true
	return s
}

// Clear removes every key and marks the segment as changed.
func (s *Segment) Clear() *Segment {
	s.values.Clear()
	s.changed = true
	return s
}

// All returns a snapshot of every stored value.
func (s *Segment) All() map[string]any {
	return s.values.All()
}

// Keys returns the stored keys.
func (s *Segment) Keys() []string {
	return s.values.Keys()
}

// Len returns the number of stored keys.
func (s *Segment) Len() int {
	return s.values.Len()
}

// Changed reports whether the segment has unsaved changes.
func (s *Segment) Changed() bool {
	return s.changed
}

// Debug returns the diagnostics collected so far, oldest first.
func (s *Segment) Debug() []string {
	return slices.Clone(s.debug)
}

// Save encrypts the values and emits the cookie if the segment changed since
// the last successful save. Invalid cookie settings fall back to defaults and
// are reported through Debug.
//
// Save returns an error wrapping ErrPersistFailed only when encryption or the
// transport fails; the segment then stays changed.
func (s *Segment) Save() error {
	if !s.changed {
		return nil
	}

	values := s.values.All()
	attrs := s.attributes()

	value, err := s.enc.Encrypt(values)
	if err != nil {
		return s.fail("could not be encrypted", err)
	}

	if err := s.tr.Write(s.name, value, attrs); err != nil {
		return s.fail("could not be written", err)
	}

	s.changed = false
	return nil
}

// Close saves pending changes. It allows `defer seg.Close()`.
func (s *Segment) Close() error {
	return s.Save()
}

// attributes validates the cookie settings and builds the outgoing attributes.
func (s *Segment) attributes() transport.Attributes {
	settings, invalid := s.config.validate()
	for _, field := range invalid {
		s.record(slog.LevelWarn, "invalid segment config, using default",
			fmt.Sprintf("The default value is used because the %q value is invalid.", field), nil,
			logger.Field(field))
	}

	attrs := transport.Attributes{
		Expires:  s.now().Add(time.Duration(settings.ttl) * time.Second),
		MaxAge:   settings.ttl,
		Path:     s.config.Path,
		Secure:   settings.secure,
		HTTPOnly: settings.httpOnly,
		SameSite: settings.sameSite,
	}
	if settings.ttl <= 0 {
		attrs.MaxAge = -1
	}
	if s.config.Domain != "" {
		attrs.Domain = s.config.Domain
	}

	return attrs
}

func (s *Segment) fail(what string, err error) error {
	s.record(slog.LevelError, "segment persistence failed",
		fmt.Sprintf("Segment %s %s.", s.name, what), err)
	return fmt.Errorf("%w: segment %q %s: %w", ErrPersistFailed, s.name, what, err)
}

// record appends a diagnostic and logs it.
func (s *Segment) record(level slog.Level, msg, diagnostic string, err error, attrs ...slog.Attr) {
	s.debug = append(s.debug, diagnostic)
	attrs = append(attrs, logger.Diagnostic(diagnostic), logger.Error(err))
	s.logger.LogAttrs(s.ctx, level, msg, attrs...)
}

// Value returns the value under key asserted to T, or def when the key is
// missing or holds another type.
func Value[T any](s *Segment, key string, def T) T {
	return bag.Value(s.values, key, def)
}
