package auth

// User is the identity record persisted in the users table. Only the
// bcrypt digest of the password is ever stored or held in memory here;
// the json tag keeps it out of API responses.
type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
}
