package model

const EntityName = "auth"

// User is the signed-in staff member as the console knows them. ID stays 0
// until the profile is fetched from /Auth/me.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}

	return u.Username
}
