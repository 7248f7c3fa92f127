package entity

import "time"

// Challenge is a one-time numeric code waiting to be echoed back by a human.
// The Handle is minted by the store and is the only way to look the code up again.
type Challenge struct {
	Handle    string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the challenge is no longer usable at now.
func (c *Challenge) ExpiredAt(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
