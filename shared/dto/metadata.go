package dto

import (
	"tzform/shared/constant"
	"tzform/shared/model"
	"tzform/shared/timezone"
)

// Metadata renders audit timestamps in the application display zone.
type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = timezone.Format(meta.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(meta.ModifiedAt, constant.DateFormat)
}
