package service

import (
	"context"
	"errors"
	"sync"

	"github.com/gradehub/resultportal-backend/internal/model"
	"github.com/gradehub/resultportal-backend/internal/repository"
)

// fakeStore is an in-memory ResultStore for service tests.
type fakeStore struct {
	mu      sync.Mutex
	records map[string]model.ResultRecord
	failOn  map[string]bool // rollNo -> force upsert error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]model.ResultRecord),
		failOn:  make(map[string]bool),
	}
}

func (s *fakeStore) Upsert(_ context.Context, rec *model.ResultRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn[rec.RollNo] {
		return false, errors.New("store unavailable")
	}
	_, existed := s.records[rec.RollNo]
	s.records[rec.RollNo] = *rec
	return !existed, nil
}

func (s *fakeStore) FindByRollNoAndDOB(_ context.Context, rollNo, dob string) (*model.ResultRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[rollNo]
	if !ok || rec.DOB != dob {
		return nil, repository.ErrResultNotFound
	}
	out := rec
	return &out, nil
}

// fakeVerifier is a CodeVerifier that accepts a single fixed code.
type fakeVerifier struct {
	code    string
	sent    []string
	sendErr error
}

func (v *fakeVerifier) Send(_ context.Context, phone string) error {
	if v.sendErr != nil {
		return v.sendErr
	}
	v.sent = append(v.sent, phone)
	return nil
}

func (v *fakeVerifier) Check(_ context.Context, _, code string) (bool, error) {
	return code == v.code, nil
}
