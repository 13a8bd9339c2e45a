package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

type Login struct {
	users  user.Repository
	tokens *auth.Tokens
}

func NewLogin(users user.Repository, tokens *auth.Tokens) *Login {
	return &Login{users: users, tokens: tokens}
}

// Execute answers unknown email and wrong password the same way.
func (uc *Login) Execute(ctx context.Context, email, password string) (dto.AuthDTO, error) {
	email = validators.NormalizeEmail(email)
	if email == "" {
		return dto.AuthDTO{}, httperr.ErrRequired("email")
	}
	if password == "" {
		return dto.AuthDTO{}, httperr.ErrRequired("password")
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthDTO{}, httperr.ErrUnauthorized("invalid_credentials")
		}
		return dto.AuthDTO{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dto.AuthDTO{}, httperr.ErrUnauthorized("invalid_credentials")
	}

	token, err := uc.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return dto.AuthDTO{}, err
	}

	return dto.AuthDTO{User: dto.User(*u), Token: token}, nil
}
