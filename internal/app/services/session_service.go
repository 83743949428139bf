package services

import (
	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/session"
)

// SessionService manages session lifecycle
type SessionService struct {
	store   *session.Store
	catalog *catalog.Catalog
}

// NewSessionService creates a new session service instance
func NewSessionService(store *session.Store, cat *catalog.Catalog) *SessionService {
	return &SessionService{
		store:   store,
		catalog: cat,
	}
}

// Create opens a session with an empty record for the given program.
func (s *SessionService) Create(req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if _, err := s.catalog.Requirements(req.Program); err != nil {
		return nil, err
	}

	id := s.store.Create(req.Program)
	if req.StudentName != "" || req.StudentID != "" {
		err := s.store.Update(id, func(record *models.AcademicRecord) error {
			record.StudentName = req.StudentName
			record.StudentID = req.StudentID
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return &dto.SessionResponse{SessionID: id, Program: req.Program}, nil
}

// Info describes the session's program and record size.
func (s *SessionService) Info(sessionID string) (*dto.SessionInfoResponse, error) {
	record, err := s.store.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionInfoResponse{
		Program:     record.Program,
		StudentName: record.StudentName,
		StudentID:   record.StudentID,
		Entries:     len(record.Entries),
	}, nil
}

// Delete destroys a session and its record.
func (s *SessionService) Delete(sessionID string) error {
	return s.store.Delete(sessionID)
}
