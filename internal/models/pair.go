package models

import "errors"

// ErrSelfPair rejects a pair built from a single user.
var ErrSelfPair = errors.New("pair requires two distinct users")

// UserPair is an unordered pair of user IDs in canonical order
// (Low < High). Both request directions between the same two users
// collapse to the same pair, which is what lets the connections table
// key on it.
type UserPair struct {
	Low  uint64
	High uint64
}

func NewUserPair(a, b uint64) (UserPair, error) {
	if a == b {
		return UserPair{}, ErrSelfPair
	}
	if a > b {
		a, b = b, a
	}
	return UserPair{Low: a, High: b}, nil
}

// Other returns the pair member that is not id. Callers must pass one
// of the two members.
func (p UserPair) Other(id uint64) uint64 {
	if p.Low == id {
		return p.High
	}
	return p.Low
}

func (p UserPair) Contains(id uint64) bool {
	return p.Low == id || p.High == id
}
