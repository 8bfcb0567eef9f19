package model

// Metadata is the audit block the booking API attaches to every entity.
// Timestamps are kept as the server sent them and formatted at render time.
type Metadata struct {
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
	DeletedAt *string `json:"deletedAt"`
}
