package users

import "time"

// User is an account identity established through OAuth sign-in. Role is
// either "user" or "admin"; AvatarKey is object-store bookkeeping and
// never leaves the server.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatarUrl"`
	AvatarKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
