package entity

import "time"

// User is the profile projection of an account. First/last name belong here,
// not on AuthUser; registration accepts them but only this subsystem stores
// them.
type User struct {
	ID        string
	Email     string
	Username  string
	FirstName string
	LastName  string
	Confirmed bool
	Blocked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateProfile merges the non-empty fields into the profile. Empty strings
// mean "leave unchanged"; there is no way to blank a name through this path.
func (u *User) UpdateProfile(username, firstName, lastName string) {
	if username != "" {
		u.Username = username
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
}

func (u *User) IsActive() bool {
	return u.Confirmed && !u.Blocked
}
