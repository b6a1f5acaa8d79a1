package types

import (
	"time"
)

// BaseModel is a base model for all domain models that are persisted in the
// blob store. The system is single tenant, so there is no tenant or user
// attribution here, only timestamps.
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func GetDefaultBaseModel() BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
