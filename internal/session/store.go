package session

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rioharsa/storefront-gateway/internal/domain"
)

// Browse holds everything one client's storefront view depends on: the
// current filter snapshot, the last fetch outcome, and the auth gate. Echo
// handlers run concurrently, so every read and write goes through the mutex;
// snapshot replacement is a single struct assignment under that lock.
type Browse struct {
	ID string

	mu       sync.Mutex
	criteria domain.FilterCriteria
	seq      uint64
	result   *domain.ResultEnvelope
	fetchErr error

	authState      domain.SessionState
	profile        *domain.UserProfile
	token          string
	resolveRunning bool

	lastSeen time.Time
}

// Update applies a mutation to the filter snapshot and tags the session with
// a new fetch sequence number. A nil mutate just re-tags, for refreshes that
// change nothing. The returned seq is the caller's ticket for ApplyResult /
// ApplyFailure.
func (b *Browse) Update(mutate func(domain.FilterCriteria) (domain.FilterCriteria, error)) (domain.FilterCriteria, uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if mutate != nil {
		next, err := mutate(b.criteria)
		if err != nil {
			return b.criteria, b.seq, err
		}
		b.criteria = next
	}

	b.seq++

	return b.criteria, b.seq, nil
}

// ApplyResult installs a fetch result, unless a newer fetch has been issued
// since seq was handed out. Last-issued-wins: a stale response is dropped no
// matter when it arrives.
func (b *Browse) ApplyResult(seq uint64, envelope domain.ResultEnvelope) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq {
		return false
	}

	b.result = &envelope
	b.fetchErr = nil

	return true
}

// ApplyFailure records a fetch failure under the same staleness rule. The
// previous result stays visible.
func (b *Browse) ApplyFailure(seq uint64, err error) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq {
		return false
	}

	b.fetchErr = err

	return true
}

// View reads the visible state in one locked step so callers never observe a
// half-applied update.
func (b *Browse) View() (domain.FilterCriteria, *domain.ResultEnvelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.criteria, b.result, b.fetchErr
}

// HasFetched reports whether any fetch, successful or not, has completed.
func (b *Browse) HasFetched() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.result != nil || b.fetchErr != nil
}

func (b *Browse) Auth() (domain.SessionState, *domain.UserProfile, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.authState, b.profile, b.token
}

// SetResolving parks the session in the Resolving state while the presented
// credential is validated. Protected access is deferred until resolution
// lands in Anonymous or Authenticated.
func (b *Browse) SetResolving(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.authState = domain.SessionResolving
	b.profile = nil
	b.token = token
}

// BeginResolve claims the right to run credential resolution. Only one
// resolver runs per session at a time.
func (b *Browse) BeginResolve() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.authState != domain.SessionResolving || b.resolveRunning {
		return "", false
	}

	b.resolveRunning = true

	return b.token, true
}

func (b *Browse) EndResolve() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resolveRunning = false
}

// SettleAuthenticated lands a successful resolution, unless a login or
// logout beat the resolver to it. Same last-issued-wins rule as catalog
// fetches: the resolver only settles a session that is still Resolving on
// the token it claimed in BeginResolve.
func (b *Browse) SettleAuthenticated(token string, profile domain.UserProfile) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.authState != domain.SessionResolving || b.token != token {
		return false
	}

	b.authState = domain.SessionAuthenticated
	b.profile = &profile

	return true
}

// SettleAnonymous lands a failed resolution under the same staleness rule.
func (b *Browse) SettleAnonymous(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.authState != domain.SessionResolving || b.token != token {
		return false
	}

	b.authState = domain.SessionAnonymous
	b.profile = nil
	b.token = ""

	return true
}

func (b *Browse) SetAuthenticated(profile domain.UserProfile, token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.authState = domain.SessionAuthenticated
	b.profile = &profile
	b.token = token
}

// SetAnonymous clears the credential unconditionally. Used by logout and by
// failed resolution.
func (b *Browse) SetAnonymous() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.authState = domain.SessionAnonymous
	b.profile = nil
	b.token = ""
}

// Store keeps browse sessions in memory, evicting the ones idle past the
// TTL. Session lifetime matches a browser visit; nothing here needs to
// survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Browse
	ttl      time.Duration
	stop     chan struct{}
}

func CreateStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Browse),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	go s.janitor()

	return s
}

func (s *Store) Create() *Browse {
	b := &Browse{
		ID:        ulid.Make().String(),
		criteria:  domain.DefaultFilterCriteria(),
		authState: domain.SessionAnonymous,
		lastSeen:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[b.ID] = b
	s.mu.Unlock()

	return b
}

func (s *Store) Get(id string) (*Browse, bool) {
	s.mu.RLock()
	b, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		b.mu.Lock()
		b.lastSeen = time.Now()
		b.mu.Unlock()
	}

	return b, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Close() {
	close(s.stop)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)

			s.mu.Lock()
			for id, b := range s.sessions {
				b.mu.Lock()
				expired := b.lastSeen.Before(cutoff)
				b.mu.Unlock()

				if expired {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
