//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PasswordEncoder=PasswordEncoder"
package encoding

import "errors"

var ErrPasswordTooLong = errors.New("password too long")

type PasswordEncoder interface {
	HashPassword(password string) (string, error)
	CompareHash(passwordHash, password string) bool
}
