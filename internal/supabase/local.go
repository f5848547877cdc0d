package supabase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"interviewai-backend/internal/shared/storage/object"
)

// Upload describes a resume registered with the LocalStore.
type Upload struct {
	ID       string         `json:"id"`
	UserID   string         `json:"userId"`
	Metadata ResumeMetadata `json:"metadata"`
	Analyzed bool           `json:"isAnalyzed"`
}

type localRow struct {
	userID   string
	meta     ResumeMetadata
	analyzed bool
}

// LocalStore serves resume metadata from memory and file bytes from an object.Store.
// It stands in for Supabase when no project is configured.
type LocalStore struct {
	Objects object.Store

	mu   sync.RWMutex
	rows map[string]*localRow
	now  func() time.Time
}

// NewLocalStore wraps objects with an in-memory resumes table.
func NewLocalStore(objects object.Store) *LocalStore {
	return &LocalStore{
		Objects: objects,
		rows:    make(map[string]*localRow),
		now:     time.Now,
	}
}

// Register stores the file and records a resume row for userID.
func (s *LocalStore) Register(ctx context.Context, userID, fileName string, r io.Reader) (Upload, error) {
	if s.Objects == nil {
		return Upload{}, errors.New("object store not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Upload{}, errors.New("userID is required")
	}
	obj, err := s.Objects.Put(ctx, userID, fileName, r)
	if err != nil {
		return Upload{}, err
	}

	id := uuid.NewString()
	meta := ResumeMetadata{
		FilePath:      obj.Key,
		FileName:      fileName,
		FileSizeBytes: obj.SizeBytes,
		UploadDate:    s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.rows[id] = &localRow{userID: userID, meta: meta}
	s.mu.Unlock()

	return Upload{ID: id, UserID: userID, Metadata: meta}, nil
}

// GetResumeMetadata returns the row only when it belongs to userID.
func (s *LocalStore) GetResumeMetadata(ctx context.Context, resumeID, userID string) (ResumeMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[resumeID]
	if !ok || row.userID != userID {
		return ResumeMetadata{}, ErrResumeNotFound
	}
	return row.meta, nil
}

func (s *LocalStore) Download(ctx context.Context, filePath string) ([]byte, error) {
	if s.Objects == nil {
		return nil, ErrDownloadFailed
	}
	data, err := s.Objects.Read(ctx, filePath)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, ErrDownloadFailed
		}
		return nil, errors.Join(ErrDownloadFailed, err)
	}
	return data, nil
}

func (s *LocalStore) MarkAnalyzed(ctx context.Context, resumeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[resumeID]
	if !ok {
		return ErrResumeNotFound
	}
	row.analyzed = true
	return nil
}

// Analyzed reports whether MarkAnalyzed has been applied to resumeID.
func (s *LocalStore) Analyzed(resumeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[resumeID]
	return ok && row.analyzed
}
