package models

// User represents a registered account in the Amica application.
//
// The password field holds the bcrypt hash and is persisted with the
// record; API responses must go through WithoutPassword.
type User struct {
	Record
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
}

// WithoutPassword returns a copy of the user safe to serialize in API
// responses. The empty password is dropped by omitempty.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
