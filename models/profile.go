package models

type Language string

// Profile is the singleton identity record. It has no ID of its own; the
// remote row is keyed by the authenticated user.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

// ProfilePatch carries partial profile edits; nil fields are left as-is.
type ProfilePatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}
