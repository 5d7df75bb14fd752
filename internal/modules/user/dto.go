package user

import "encoding/json"

// ProfileUpdateRequest is the full writable surface of a profile. Anything
// a client submits outside these fields never reaches the store: the
// allowlist is the type, not a runtime field filter.
type ProfileUpdateRequest struct {
	Name        *string         `json:"name,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	Avatar      *string         `json:"avatar,omitempty"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
}

type CreateAddressRequest struct {
	Type      string `json:"type" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}
