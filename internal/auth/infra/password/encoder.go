package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/farm-expense-tracker/internal/auth/app/encoding"
)

type encoder struct {
	cost int
}

func NewEncoder() encoding.PasswordEncoder {
	return encoder{cost: bcrypt.DefaultCost}
}

func NewEncoderWithCost(cost int) encoding.PasswordEncoder {
	return encoder{cost: cost}
}

func (e encoder) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", encoding.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e encoder) CompareHash(passwordHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
