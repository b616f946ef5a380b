// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/models"
)

// profileRecord is the stored form of a profile. models.Profile hides the
// password from JSON, the record puts it back.
type profileRecord struct {
	models.Profile
	Password string `json:"password"`
}

func toRecord(p models.Profile) profileRecord {
	return profileRecord{Profile: p, Password: p.Password}
}

func (r profileRecord) toProfile() models.Profile {
	p := r.Profile
	p.Password = r.Password
	if p.Products == nil {
		p.Products = []models.Product{}
	}
	return p
}

// document is the whole on-disk state of the JSON backend.
type document struct {
	Profiles []profileRecord `json:"profiles"`
	Reviews  []models.Review `json:"reviews"`
}

// documentStore keeps all profiles and reviews in one JSON file. Every
// read-modify-write cycle holds mu, so concurrent requests in this process
// cannot overwrite each other's changes.
type documentStore struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewDocumentStore returns a store backed by the JSON document at path. The
// file and its directory are created on the first write.
func NewDocumentStore(path string, logger *logger.Logger) *documentStore {
	logger.Debug().Str("path", path).Msg("creating document store")
	return &documentStore{
		path:   path,
		logger: logger,
	}
}

// load reads the document. A missing or empty file is an empty document; a
// legacy file holding a bare array of profiles is accepted as well.
func (s *documentStore) load() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return &document{}, nil
	}

	doc := new(document)
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &doc.Profiles); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
		}
		return doc, nil
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}
	return doc, nil
}

// save replaces the document atomically: the new content is written and
// synced to a temporary file in the same directory, then renamed over the
// old one. Readers see either the old or the new document, never a mix.
func (s *documentStore) save(doc *document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	return nil
}

// modify runs fn on the loaded document under the write lock and saves the
// result when fn succeeds.
func (s *documentStore) modify(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.save(doc)
}

// read runs fn on the loaded document. Reads take the lock too so they never
// observe a document between load and save of a concurrent writer.
func (s *documentStore) read(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	return fn(doc)
}

func (d *document) indexOf(id string) int {
	for i := range d.Profiles {
		if d.Profiles[i].ID == id {
			return i
		}
	}
	return -1
}

// emailTaken reports whether a profile other than exceptID uses email.
func (d *document) emailTaken(email, exceptID string) bool {
	for i := range d.Profiles {
		if d.Profiles[i].ID != exceptID && equalEmails(d.Profiles[i].Email, email) {
			return true
		}
	}
	return false
}
