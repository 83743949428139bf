package dto

// CreateSessionRequest opens a new planning session.
type CreateSessionRequest struct {
	Program     string `json:"program" binding:"required,oneof=CSE CS"`
	StudentName string `json:"studentName"`
	StudentID   string `json:"studentId"`
}

// SessionResponse returns the id the client must send in X-Session-ID.
type SessionResponse struct {
	SessionID string `json:"sessionId" example:"0b7d8f3a-0a4e-4a1e-9c66-0f6d1f0f3f2a"`
	Program   string `json:"program" example:"CSE"`
}

// SessionInfoResponse describes the current session.
type SessionInfoResponse struct {
	Program     string `json:"program" example:"CSE"`
	StudentName string `json:"studentName,omitempty"`
	StudentID   string `json:"studentId,omitempty"`
	Entries     int    `json:"entries"`
}
