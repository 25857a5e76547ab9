package auth

import (
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

// Identity is the authenticated caller of a single request.
type Identity struct {
	SubjectID string
	Username  string
}

func (i Identity) IsZero() bool {
	return i.SubjectID == "" && i.Username == ""
}
