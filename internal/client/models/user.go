// Package models defines the client-side view of records returned by the
// DemoBank API. All types are plain snapshots of server state: they are
// replaced wholesale on every fetch and never patched field by field.
package models

// Profile carries the extended user attributes nested in the profile payload.
type Profile struct {
	PhoneNumber    string `json:"phone_number,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Address        string `json:"address,omitempty"`
	KYCVerified    bool   `json:"kyc_verified"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// User is the authenticated user as reported by GET /auth/profile/.
type User struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	Profile   Profile `json:"profile"`
}

// RegisterRequest is the payload for POST /auth/register/.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// RegisterResponse bundles the created user with its issued token pair.
type RegisterResponse struct {
	User    User       `json:"user"`
	Tokens  *TokenPair `json:"tokens"`
	Message string     `json:"message,omitempty"`
}

// ProfileUpdate is a partial update for PATCH /auth/profile/update/.
// Only non-nil fields are sent.
type ProfileUpdate struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}
