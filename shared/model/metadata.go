package model

import "time"

// Metadata holds audit timestamps, kept in UTC.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}

func NewMetadata(now time.Time) Metadata {
	now = now.UTC()

	return Metadata{CreatedAt: now, ModifiedAt: now}
}

// Touch records a modification at now.
func (m *Metadata) Touch(now time.Time) {
	m.ModifiedAt = now.UTC()
}
