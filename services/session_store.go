package services

import (
	"PlanMate/config/environment"
	"PlanMate/models"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStore keeps conversation sessions in memory with a TTL instead
// of growing without bound. Each session also gets its own mutex so two
// concurrent refinement calls cannot interleave their read-modify-write.
type SessionStore struct {
	sessions *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionStore() *SessionStore {
	return NewSessionStoreWithTTL(environment.GetSessionTTL())
}

func NewSessionStoreWithTTL(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		sessions: cache.New(ttl, 10*time.Minute),
		locks:    map[string]*sync.Mutex{},
	}
	// Drop the lock alongside the session, otherwise the lock map grows
	// without bound as sessions expire.
	store.sessions.OnEvicted(func(sessionID string, _ any) {
		store.mu.Lock()
		delete(store.locks, sessionID)
		store.mu.Unlock()
	})
	return store
}

// Create stores the session under a fresh unique id and returns the id
func (s *SessionStore) Create(session *models.ConversationSession) string {
	sessionID := uuid.NewString()
	session.SessionID = sessionID
	s.sessions.SetDefault(sessionID, session)
	return sessionID
}

// Get returns the live session for an id. The TTL is refreshed so an
// active conversation does not expire mid-dialogue.
func (s *SessionStore) Get(sessionID string) (*models.ConversationSession, bool) {
	value, found := s.sessions.Get(sessionID)
	if !found {
		return nil, false
	}
	session := value.(*models.ConversationSession)
	s.sessions.SetDefault(sessionID, session)
	return session, true
}

// Lock returns the mutex guarding one session's refinement cycle
func (s *SessionStore) Lock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}
