// Package auth implements the demo-mode authentication system. Sign-in and
// sign-up always succeed after a simulated delay against fabricated users;
// there is no credential store. That behavior is deliberate and must be kept
// unless the whole module is replaced with a real backend.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/siddiq-x/AI-tutor/internal/store"
)

// ErrMissingCredentials is returned when email or password is empty.
// It is the only failure path: any non-empty credentials succeed.
var ErrMissingCredentials = errors.New("email and password are required")

// DefaultDelay simulates the latency of a real auth round trip.
const DefaultDelay = 1 * time.Second

// User is a fabricated user record.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// Session holds the current user and fabricated tokens. It is mirrored to
// the KV store so it survives restarts.
type Session struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Service is the process-wide auth state holder. Subscribers registered via
// OnChange are notified on every mutation.
type Service struct {
	mu      sync.Mutex
	kv      store.KV
	delay   time.Duration
	now     func() time.Time
	session *Session
	subs    map[int]func(*Session)
	nextSub int
}

// Option configures a Service.
type Option func(*Service)

// WithDelay overrides the simulated sign-in delay. Tests pass 0.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithClock overrides the time source used for fabricated IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service persisting sessions through kv.
func New(kv store.KV, opts ...Option) *Service {
	s := &Service{
		kv:    kv,
		delay: DefaultDelay,
		now:   time.Now,
		subs:  make(map[int]func(*Session)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadSession reads the persisted session. Called once at startup; a missing
// or corrupt blob resolves to a nil session, not an error the caller must
// handle specially.
func (s *Service) LoadSession(ctx context.Context) (*Session, error) {
	raw, err := s.kv.Get(ctx, store.KeyAuthSession)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.User == nil {
		// Treat a corrupt mirror as signed out.
		return nil, nil
	}

	s.mu.Lock()
	s.session = &sess
	s.mu.Unlock()
	return &sess, nil
}

// SignInWithPassword signs in with any non-empty credentials. It fabricates
// a user with a timestamp-derived id, persists the session, and notifies
// subscribers.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return s.establish(ctx, email, password, "")
}

// SignUp behaves like SignInWithPassword but records an optional display name.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*Session, error) {
	return s.establish(ctx, email, password, displayName)
}

func (s *Service) establish(ctx context.Context, email, password, displayName string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	ms := s.now().UnixMilli()
	sess := &Session{
		User: &User{
			ID:          fmt.Sprintf("mock-%d", ms),
			Email:       email,
			DisplayName: displayName,
		},
		AccessToken:  fmt.Sprintf("mock-access-%d", ms),
		RefreshToken: fmt.Sprintf("mock-refresh-%d", ms),
	}

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	s.notify(sess)
	return sess, nil
}

// SignOut clears the session, persists the cleared state, and notifies
// subscribers.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.kv.Delete(ctx, store.KeyAuthSession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.notify(nil)
	return nil
}

// Session returns the current session, or nil when signed out.
func (s *Service) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// User returns the current user, or nil when signed out.
func (s *Service) User() *User {
	sess := s.Session()
	if sess == nil {
		return nil
	}
	return sess.User
}

// OnChange registers a subscriber invoked on every session mutation.
// The returned function unsubscribes it.
func (s *Service) OnChange(cb func(*Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = cb
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Service) notify(sess *Session) {
	s.mu.Lock()
	cbs := make([]func(*Session), 0, len(s.subs))
	for _, cb := range s.subs {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	for _, cb := range cbs {
		cb(sess)
	}
}

func (s *Service) persist(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyAuthSession, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *Service) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
