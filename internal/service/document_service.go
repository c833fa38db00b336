package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/filestore"
	"github.com/Govind-17/chat-with-syllbus/internal/index"
	"github.com/Govind-17/chat-with-syllbus/internal/ingest"
	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errors"
)

const defaultUploadLimit = 16 << 20

var allowedExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".txt":      {},
}

// DocumentService owns the upload-process-index lifecycle of syllabus
// documents. Processing runs in the background; Status exposes progress.
type DocumentService struct {
	store       filestore.Store
	idx         index.Index
	ingester    *ingest.Service
	uploadLimit int64

	mu        sync.Mutex
	documents map[string]*model.DocumentStatus
}

func NewDocumentService(store filestore.Store, idx index.Index, uploadLimit int64) *DocumentService {
	if uploadLimit <= 0 {
		uploadLimit = defaultUploadLimit
	}
	return &DocumentService{
		store:       store,
		idx:         idx,
		ingester:    ingest.NewService(store, idx),
		uploadLimit: uploadLimit,
		documents:   make(map[string]*model.DocumentStatus),
	}
}

// Upload validates and stores a document, then kicks off indexing in the
// background. The returned status is a snapshot taken before processing
// finishes.
func (s *DocumentService) Upload(ctx context.Context, filename string, size int64, r io.Reader) (model.DocumentStatus, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" || filename == "." {
		return model.DocumentStatus{}, fmt.Errorf("missing filename: %w", errors.ErrInvalidFile)
	}
	if _, ok := allowedExtensions[ext]; !ok {
		return model.DocumentStatus{}, fmt.Errorf("unsupported file type %q: %w", ext, errors.ErrInvalidFile)
	}
	if size > s.uploadLimit {
		return model.DocumentStatus{}, fmt.Errorf("file size %d exceeds limit %d: %w", size, s.uploadLimit, errors.ErrFileTooBig)
	}

	docID := uuid.NewString()
	key := docID + ext
	if err := s.store.Save(ctx, key, io.LimitReader(r, s.uploadLimit), size); err != nil {
		return model.DocumentStatus{}, fmt.Errorf("save upload: %w", err)
	}

	status := &model.DocumentStatus{
		DocID:    docID,
		Filename: filename,
		Key:      key,
		Size:     size,
		State:    model.DocumentStateUploaded,
		Mtime:    time.Now().Unix(),
	}
	s.mu.Lock()
	s.documents[docID] = status
	s.mu.Unlock()

	go s.process(context.WithoutCancel(ctx), docID, key, filename)
	return *status, nil
}

func (s *DocumentService) process(ctx context.Context, docID, key, filename string) {
	logger := logutil.GetLogger(ctx).With(zap.String("doc_id", docID), zap.String("filename", filename))
	s.setState(docID, model.DocumentStateProcessing, "", 0)

	chunks, err := s.ingester.Process(ctx, key, filename)
	if err != nil {
		logger.Error("document processing failed", zap.Error(err))
		s.setState(docID, model.DocumentStateFailed, err.Error(), 0)
		return
	}
	s.setState(docID, model.DocumentStateCompleted, "", chunks)
	logger.Info("document processed", zap.Int("chunks", chunks))
}

func (s *DocumentService) setState(docID, state, detail string, chunks int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.documents[docID]
	if !ok {
		return
	}
	status.State = state
	status.Detail = detail
	if chunks > 0 {
		status.Chunks = chunks
	}
	status.Mtime = time.Now().Unix()
}

func (s *DocumentService) Status(docID string) (model.DocumentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.documents[docID]
	if !ok {
		return model.DocumentStatus{}, errors.ErrNotFound
	}
	return *status, nil
}

func (s *DocumentService) List() []model.DocumentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DocumentStatus, 0, len(s.documents))
	for _, status := range s.documents {
		out = append(out, *status)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mtime > out[j].Mtime })
	return out
}

// Delete removes the stored file, its index entries and the tracking
// record.
func (s *DocumentService) Delete(ctx context.Context, docID string) error {
	s.mu.Lock()
	status, ok := s.documents[docID]
	if !ok {
		s.mu.Unlock()
		return errors.ErrNotFound
	}
	key, filename := status.Key, status.Filename
	s.mu.Unlock()

	if err := s.idx.DeleteBySource(ctx, filename); err != nil {
		return fmt.Errorf("delete index entries: %w", err)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logutil.GetLogger(ctx).Warn("failed to delete stored file", zap.String("key", key), zap.Error(err))
	}

	s.mu.Lock()
	delete(s.documents, docID)
	s.mu.Unlock()
	return nil
}

// IndexCount reports the number of vectors currently stored, for
// diagnostics.
func (s *DocumentService) IndexCount(ctx context.Context) (int, error) {
	return s.idx.Count(ctx)
}
