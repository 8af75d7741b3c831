package service

import (
	"context"

	"github.com/gradehub/resultportal-backend/internal/grade"
	"github.com/gradehub/resultportal-backend/internal/model"
)

// ResultStore is the persistence surface the services need. Satisfied by
// repository.ResultRepository.
type ResultStore interface {
	Upsert(ctx context.Context, rec *model.ResultRecord) (bool, error)
	FindByRollNoAndDOB(ctx context.Context, rollNo, dob string) (*model.ResultRecord, error)
}

// ResultService handles saving and looking up result records.
type ResultService struct {
	store ResultStore
}

// NewResultService creates a new ResultService.
func NewResultService(store ResultStore) *ResultService {
	return &ResultService{store: store}
}

// Save upserts a manually entered record. Returns true when the record was
// newly created, false when an existing rollNo was overwritten.
func (s *ResultService) Save(ctx context.Context, req *model.SaveResultRequest) (bool, error) {
	return s.store.Upsert(ctx, req.Record())
}

// Find looks up a record by roll number and date of birth and attaches a
// Pass/Fail status to every subject. A miss propagates the store's
// not-found error for the caller to render as a message.
func (s *ResultService) Find(ctx context.Context, rollNo, dob string) (*model.StudentResult, error) {
	rec, err := s.store.FindByRollNoAndDOB(ctx, rollNo, dob)
	if err != nil {
		return nil, err
	}

	results := make([]model.SubjectResult, 0, len(rec.Subjects))
	for _, sub := range rec.Subjects {
		results = append(results, model.SubjectResult{
			Code:     sub.Code,
			Semester: sub.Semester,
			Grade:    sub.Grade,
			Status:   grade.Evaluate(sub.Grade),
		})
	}

	return &model.StudentResult{
		RollNo:  rec.RollNo,
		Name:    rec.Name,
		DOB:     rec.DOB,
		Course:  rec.Course,
		Results: results,
	}, nil
}
