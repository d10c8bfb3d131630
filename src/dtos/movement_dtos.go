package dtos

// MovementSummaryDTO aplana un movimiento con los nombres de sus referencias
// para los listados.
type MovementSummaryDTO struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	Completed        bool    `json:"completed"`
	PieceName        *string `json:"pieceName,omitempty"`
	MovementTypeName *string `json:"movementTypeName,omitempty"`
	AgentName        *string `json:"agentName,omitempty"`
	UserName         *string `json:"userName,omitempty"`
}
