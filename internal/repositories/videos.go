package repositories

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/shared"
)

// VideoStore keeps each user's saved videos in insertion order, without duplicate IDs.
type VideoStore struct {
	kv     KeyValue
	logger *log.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewVideoStore creates a [VideoStore] over kv.
func NewVideoStore(kv KeyValue, logger *log.Logger) *VideoStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &VideoStore{
		kv:     kv,
		logger: shared.WithLogger(logger, "component", "videos"),
		now:    time.Now,
	}
}

// load reads the partition for userID. ok is false when the stored payload could not be
// read or decoded, in which case videos is empty and callers must not write over it.
func (s *VideoStore) load(userID string) (videos []models.VideoRecord, ok bool) {
	key := VideosKey(userID)
	if _, err := readJSON(s.kv, key, &videos); err != nil {
		s.logger.Error("unreadable saved videos", "key", key, "error", err)
		return []models.VideoRecord{}, false
	}
	if videos == nil {
		videos = []models.VideoRecord{}
	}
	return videos, true
}

func (s *VideoStore) persist(userID string, videos []models.VideoRecord) {
	key := VideosKey(userID)
	if err := writeJSON(s.kv, key, videos); err != nil {
		s.logger.Error("dropped saved videos write", "key", key, "error", err)
	}
}

// Save appends record to the user's list, stamping SavedAt, and returns the stored copy.
//
// Saving an ID that is already present is a no-op and returns the existing entry with its
// original SavedAt.
func (s *VideoStore) Save(userID string, record models.VideoRecord) models.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, ok := s.load(userID)
	for _, v := range videos {
		if v.ID == record.ID {
			return v
		}
	}

	savedAt := s.now().UTC()
	record.SavedAt = &savedAt

	if !ok {
		s.logger.Error("refusing to overwrite unreadable saved videos", "key", VideosKey(userID), "id", record.ID)
		return record
	}

	s.persist(userID, append(videos, record))
	s.logger.Debug("video saved", "user", userID, "id", record.ID)
	return record
}

// List returns the user's saved videos in insertion order, or an empty slice.
func (s *VideoStore) List(userID string) []models.VideoRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, _ := s.load(userID)
	return videos
}

// Remove deletes the entry with videoID when present and persists the result.
func (s *VideoStore) Remove(userID, videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	videos, ok := s.load(userID)
	if !ok {
		s.logger.Error("refusing to overwrite unreadable saved videos", "key", VideosKey(userID), "id", videoID)
		return
	}

	kept := videos[:0]
	for _, v := range videos {
		if v.ID != videoID {
			kept = append(kept, v)
		}
	}

	s.persist(userID, kept)
}

// FindByID returns the saved entry with videoID.
func (s *VideoStore) FindByID(userID, videoID string) (*models.VideoRecord, bool) {
	for _, v := range s.List(userID) {
		if v.ID == videoID {
			return &v, true
		}
	}
	return nil, false
}

// Clear deletes the user's whole list.
func (s *VideoStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := VideosKey(userID)
	if err := s.kv.Delete(key); err != nil {
		s.logger.Error("failed to clear saved videos", "key", key, "error", err)
	}
}
