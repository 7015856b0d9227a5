// Package files hands out local file ids for remote web files referenced by invoices.
package files

import (
	"math"
	"net/url"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/cache"
	"github.com/arnac-io/chatpay/pkg/core"
)

// Manager is an in-memory file table. An id stays valid for the lifetime of the manager since
// invoices keep referring to it. The URL index is bounded: registering a URL that fell out of
// it yields a new id.
type Manager struct {
	logger *zap.Logger

	mu     sync.Mutex
	lastID core.FileID
	byURL  *cache.Cache[uint64, core.FileID]
	byID   map[core.FileID]core.WebFile
}

// NewManager returns a manager whose URL index holds up to size entries.
func NewManager(size int, logger *zap.Logger) *Manager {
	return &Manager{
		logger: logger,
		byURL:  cache.NewLRUCache[uint64, core.FileID](size, "files_by_url"),
		byID:   make(map[core.FileID]core.WebFile),
	}
}

// RegisterWebFile returns the id of f, registering it if its URL is not known yet.
// Metadata missing from the known entry is filled in from f.
func (m *Manager) RegisterWebFile(f core.WebFile) (core.FileID, error) {
	u, err := url.Parse(f.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return 0, core.InvalidArgument("files.register_web_file", "invalid web file URL")
	}
	key := xxhash.Sum64String(f.URL)

	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byURL.Get(key); ok {
		if known, ok := m.byID[id]; ok && known.URL == f.URL {
			m.byID[id] = merge(known, f)
			return id, nil
		}
	}
	if m.lastID == math.MaxInt32 {
		return 0, core.Internal(nil, "files.register_web_file", "file ids exhausted")
	}
	m.lastID++
	id := m.lastID
	m.byURL.Set(key, id)
	m.byID[id] = f
	m.logger.Debug("registered web file", zap.Int32("file_id", int32(id)), zap.String("mime_type", f.MimeType))
	return id, nil
}

func (m *Manager) WebFile(id core.FileID) (core.WebFile, bool) {
	if !id.IsValid() {
		return core.WebFile{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.byID[id]
	return f, ok
}

func merge(known, f core.WebFile) core.WebFile {
	if known.AccessHash == 0 {
		known.AccessHash = f.AccessHash
	}
	if known.Size == 0 {
		known.Size = f.Size
	}
	if known.MimeType == "" {
		known.MimeType = f.MimeType
	}
	if known.Width == 0 && known.Height == 0 {
		known.Width, known.Height = f.Width, f.Height
	}
	return known
}
