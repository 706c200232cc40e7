package models

// User is a registered account. The password is stored exactly as provided
// and compared by equality at login; this system does not hash credentials.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"` // never serialized
}
