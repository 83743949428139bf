package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/catalog"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/session"
)

func newSessionService(t *testing.T) *SessionService {
	t.Helper()
	cat, err := catalog.Load("")
	require.NoError(t, err)
	return NewSessionService(session.NewStore(time.Hour, zerolog.Nop()), cat)
}

func TestCreateSessionStoresStudentIdentity(t *testing.T) {
	svc := newSessionService(t)

	resp, err := svc.Create(&dto.CreateSessionRequest{
		Program:     "CSE",
		StudentName: "Mahir",
		StudentID:   "20101234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)

	info, err := svc.Info(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "CSE", info.Program)
	assert.Equal(t, "Mahir", info.StudentName)
	assert.Equal(t, "20101234", info.StudentID)
	assert.Equal(t, 0, info.Entries)
}

func TestCreateSessionUnknownProgram(t *testing.T) {
	svc := newSessionService(t)

	_, err := svc.Create(&dto.CreateSessionRequest{Program: "EEE"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownProgram)
}

func TestDeleteSession(t *testing.T) {
	svc := newSessionService(t)

	resp, err := svc.Create(&dto.CreateSessionRequest{Program: "CS"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(resp.SessionID))
	_, err = svc.Info(resp.SessionID)
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}
