package models

// Participant is a roommate taking part in the shared ledger.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name and the natural key used by every record.
	Name string

	// CreatedAt is the Unix timestamp when the participant was added.
	CreatedAt int64
}

// Names returns the participant names in order.
func Names(participants []Participant) []string {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return names
}
