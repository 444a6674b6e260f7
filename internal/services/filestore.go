package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type FileStore interface {
	Save(content []byte) string
	Take(token string) ([]byte, bool)
	Len() int
	Stop()
}

type storedArtifact struct {
	content []byte
	savedAt time.Time
}

// fileStore keeps generated artifacts in memory until they are downloaded
// exactly once. A janitor goroutine evicts artifacts that were never picked
// up so abandoned runs do not grow the map forever.
type fileStore struct {
	mu        sync.Mutex
	artifacts map[string]storedArtifact
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

func NewFileStore(ttl, cleanupInterval time.Duration) FileStore {
	s := &fileStore{
		artifacts: make(map[string]storedArtifact),
		ttl:       ttl,
		stopChan:  make(chan struct{}),
	}

	s.wg.Add(1)
	go s.janitor(cleanupInterval)

	return s
}

// Save implements FileStore.
func (s *fileStore) Save(content []byte) string {
	token := uuid.New().String()

	s.mu.Lock()
	s.artifacts[token] = storedArtifact{content: content, savedAt: time.Now()}
	s.mu.Unlock()

	return token
}

// Take implements FileStore. The lookup and the delete are one atomic step,
// so at most one caller ever receives the bytes for a given token.
func (s *fileStore) Take(token string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artifact, ok := s.artifacts[token]
	if !ok {
		return nil, false
	}

	delete(s.artifacts, token)
	return artifact.content, true
}

// Len implements FileStore.
func (s *fileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.artifacts)
}

// Stop implements FileStore.
func (s *fileStore) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

func (s *fileStore) janitor(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *fileStore) evictExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for token, artifact := range s.artifacts {
		if artifact.savedAt.Before(cutoff) {
			delete(s.artifacts, token)
			log.Printf("🗑️  Evicted unretrieved artifact %s\n", token)
		}
	}
}
