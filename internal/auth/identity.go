package auth

// Identity is the staff member an access token was issued to.
type Identity struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the identity may use the admin API.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
