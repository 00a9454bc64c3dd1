package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps blobs under a root directory. URIs look like
// "file://<root>/<aa>/<hash>__<hint>" — content-addressed so repeated writes
// of identical bytes are idempotent.
type FSStore struct {
	root   string
	logger *slog.Logger
}

const uriScheme = "file://"

func NewFSStore(root string, logger *slog.Logger) (*FSStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) Put(_ context.Context, hint string, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	h := hex.EncodeToString(sum[:])
	name := h[:16]
	if hint != "" {
		name += "__" + sanitizeHint(hint)
	}
	rel := filepath.Join(h[:2], name)
	path := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	uri := uriScheme + filepath.ToSlash(filepath.Join(s.root, rel))
	s.logger.Debug("blob.put", "uri", uri, "bytes", len(data))
	return uri, nil
}

func (s *FSStore) Get(_ context.Context, uri string) ([]byte, error) {
	path, err := s.pathFor(uri)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *FSStore) Delete(_ context.Context, uri string) error {
	path, err := s.pathFor(uri)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FSStore) pathFor(uri string) (string, error) {
	if !strings.HasPrefix(uri, uriScheme) {
		return "", fmt.Errorf("unsupported blob uri %q", uri)
	}
	return filepath.FromSlash(strings.TrimPrefix(uri, uriScheme)), nil
}

func sanitizeHint(hint string) string {
	var b strings.Builder
	for _, r := range hint {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	const maxHint = 80
	out := b.String()
	if len(out) > maxHint {
		out = out[:maxHint]
	}
	return out
}
