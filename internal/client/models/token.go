package models

// TokenPair is the bearer credential pair issued on login or registration.
// Either both tokens are present or neither; a partial pair is never stored.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
