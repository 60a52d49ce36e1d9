package model

// ResolveRequest is the serve surface's click payload.
type ResolveRequest struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Accidentals bool    `json:"accidentals"`
}

// ResolvedEvent wraps a stored ScoreMouseEvent with its session id.
type ResolvedEvent struct {
	ID    string          `json:"id"`
	Event ScoreMouseEvent `json:"event"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
