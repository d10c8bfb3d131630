package dtos

// PieceSummaryDTO represents a summarized view of a piece for listings,
// including the denormalized classification name.
type PieceSummaryDTO struct {
	ID                 int      `json:"id"`
	RegistrationNumber string   `json:"registrationNumber"`
	Name               string   `json:"name"`
	ClassificationName *string  `json:"classificationName,omitempty"`
	Height             *float64 `json:"height,omitempty"`
	Width              *float64 `json:"width,omitempty"`
	Depth              *float64 `json:"depth,omitempty"`
	Research           bool     `json:"research"`
}
