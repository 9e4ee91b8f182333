package domain

import "time"

// User is the signed-in identity as asserted by the session token. The auth
// provider owns credentials; we only mirror id and email.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
