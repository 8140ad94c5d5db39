package tokenstore

import (
	"os"
	"path/filepath"
	"sync"

	"docnet-client/internal/app/models"
	"docnet-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// persistedSession is the on-disk shape, the file-backed equivalent of the
// docnet_token / docnet_user browser storage keys.
type persistedSession struct {
	Token string       `json:"docnet_token"`
	User  *models.User `json:"docnet_user"`
}

type fileTokenStore struct {
	Path string
	Log  *zap.Logger

	mu sync.Mutex
}

func NewFileTokenStore(path string, logger *zap.Logger) TokenStore {
	return &fileTokenStore{
		Path: path,
		Log:  logger,
	}
}

func (s *fileTokenStore) Save(token string, user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(persistedSession{Token: token, User: user})
	if err != nil {
		s.Log.Warn("tokenstore.Save error marshaling session",
			zap.Error(err),
		)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		s.Log.Warn("tokenstore.Save error creating session directory",
			zap.String(constvars.LoggingFileNameKey, s.Path),
			zap.Error(err),
		)
		return
	}

	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		s.Log.Warn("tokenstore.Save error writing session file",
			zap.String(constvars.LoggingFileNameKey, s.Path),
			zap.Error(err),
		)
	}
}

func (s *fileTokenStore) Load() (string, *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", nil
	}

	var session persistedSession
	if err := json.Unmarshal(data, &session); err != nil {
		s.Log.Warn("tokenstore.Load discarding corrupted session file",
			zap.String(constvars.LoggingFileNameKey, s.Path),
			zap.Error(err),
		)
		return "", nil
	}
	if session.Token == "" {
		return "", nil
	}
	return session.Token, session.User
}

func (s *fileTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		s.Log.Warn("tokenstore.Clear error removing session file",
			zap.String(constvars.LoggingFileNameKey, s.Path),
			zap.Error(err),
		)
	}
}
