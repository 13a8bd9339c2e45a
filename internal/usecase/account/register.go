package account

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/auth"
	"github.com/BruksfildServices01/salon-booking/internal/domain/user"
	"github.com/BruksfildServices01/salon-booking/internal/dto"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/models"
	"github.com/BruksfildServices01/salon-booking/internal/validators"
)

const minPasswordLength = 6

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type Register struct {
	users  user.Repository
	tokens *auth.Tokens
	audit  audit.Recorder

	// CheckDomain resolves the email domain before accepting it.
	CheckDomain bool
}

func NewRegister(
	users user.Repository,
	tokens *auth.Tokens,
	audit audit.Recorder,
) *Register {
	return &Register{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (dto.AuthDTO, error) {
	username := strings.TrimSpace(in.Username)
	email := validators.NormalizeEmail(in.Email)

	switch {
	case username == "":
		return dto.AuthDTO{}, httperr.ErrRequired("username")
	case email == "":
		return dto.AuthDTO{}, httperr.ErrRequired("email")
	case !validators.IsEmail(email):
		return dto.AuthDTO{}, httperr.ErrInvalid("email", "email must be a valid email address")
	case len(in.Password) < minPasswordLength:
		return dto.AuthDTO{}, httperr.ErrInvalid("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if uc.CheckDomain && !validators.IsEmailDomainValid(ctx, email) {
		return dto.AuthDTO{}, httperr.ErrInvalid("email", "email domain does not accept mail")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthDTO{}, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return dto.AuthDTO{}, httperr.ErrConflict(
				"user_already_exists",
				"username or email already registered",
			)
		}
		return dto.AuthDTO{}, err
	}

	token, err := uc.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return dto.AuthDTO{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return dto.AuthDTO{User: dto.User(*u), Token: token}, nil
}
