package domain

// User is a registered account. Usernames are unique and act as the primary
// key; passwords are stored as given (hashing is out of scope for this
// service).
type User struct {
	Username string `json:"username" db:"username" validate:"required,min=2"`
	Password string `json:"-" db:"password" validate:"required,min=2"`
}

// NewUser validates and constructs a User. It returns a *ValidationError
// wrapping ErrEmptyField when either field is missing, or ErrTooShort when
// either is below two characters.
func NewUser(username, password string) (*User, error) {
	u := &User{Username: username, Password: password}
	if err := checkStruct(u); err != nil {
		return nil, err
	}
	return u, nil
}
