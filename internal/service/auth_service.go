package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
	"github.com/diegorodrguez7/carta-digital-qr/internal/repository"
)

// Demo identities used by the development login bypass.
const (
	devClientEmail     = "cliente-demo@qarta.local"
	devSuperadminEmail = "superadmin@qarta.local"
)

// AuthResult is the outcome of a successful identity resolution.
type AuthResult struct {
	Token      string            `json:"token"`
	User       *model.User       `json:"user"`
	Restaurant *model.Restaurant `json:"restaurant"`
}

// AuthService resolves inbound credentials into canonical users and issues
// session tokens.
type AuthService interface {
	// LoginDev resolves the development bypass login. The requested role maps
	// to a fixed demo identity; it synthesizes the user when absent and never
	// fails on bad input.
	LoginDev(ctx context.Context, requestedRole string) (*AuthResult, error)
	// LoginGoogle verifies an external identity credential, creating or
	// upgrading the user as needed.
	LoginGoogle(ctx context.Context, credential string) (*AuthResult, error)
}

type authService struct {
	users       repository.UserRepository
	restaurants RestaurantService
	verifier    auth.IdentityVerifier
	jwtService  *auth.JWTService
	superadmins map[string]struct{}
}

// NewAuthService creates a new authentication service. superadminEmails is
// the allow-list of addresses granted SUPERADMIN at login time.
func NewAuthService(
	users repository.UserRepository,
	restaurants RestaurantService,
	verifier auth.IdentityVerifier,
	jwtService *auth.JWTService,
	superadminEmails []string,
) AuthService {
	allow := make(map[string]struct{}, len(superadminEmails))
	for _, email := range superadminEmails {
		allow[strings.ToLower(email)] = struct{}{}
	}
	return &authService{
		users:       users,
		restaurants: restaurants,
		verifier:    verifier,
		jwtService:  jwtService,
		superadmins: allow,
	}
}

// LoginDev maps the requested role to a fixed demo identity.
func (s *authService) LoginDev(ctx context.Context, requestedRole string) (*AuthResult, error) {
	role := model.RoleClient
	email := devClientEmail
	name := "Propietario Demo"
	if requestedRole == string(model.RoleSuperadmin) {
		role = model.RoleSuperadmin
		email = devSuperadminEmail
		name = "Superadmin Qarta (dev)"
	}

	user, err := s.resolveUser(ctx, email, name, nil, role)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, user)
}

// LoginGoogle verifies the credential through the external identity verifier
// and computes the role from the allow-list, never from the credential itself.
func (s *authService) LoginGoogle(ctx context.Context, credential string) (*AuthResult, error) {
	if credential == "" {
		return nil, apperrors.NewValidation("credential")
	}

	payload, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(payload.Email)
	if email == "" {
		return nil, apperrors.ErrMissingEmailClaim
	}

	name := payload.Name
	if name == "" {
		name = email
	}
	var avatar *string
	if payload.Picture != "" {
		avatar = &payload.Picture
	}

	role := model.RoleClient
	if _, ok := s.superadmins[email]; ok {
		role = model.RoleSuperadmin
	}

	user, err := s.resolveUser(ctx, email, name, avatar, role)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, user)
}

// resolveUser finds or creates the user for email and applies the one-way
// CLIENT to SUPERADMIN upgrade when the computed role demands it.
func (s *authService) resolveUser(ctx context.Context, email, name string, avatar *string, role model.Role) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		user = &model.User{
			Email:  email,
			Name:   name,
			Avatar: avatar,
			Role:   role,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	if role == model.RoleSuperadmin && user.Role != model.RoleSuperadmin {
		user.Role = model.RoleSuperadmin
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("upgrade role: %w", err)
		}
	}
	return user, nil
}

// finish provisions the restaurant (CLIENT only) and issues the 7-day
// session token.
func (s *authService) finish(ctx context.Context, user *model.User) (*AuthResult, error) {
	restaurant, err := s.restaurants.EnsureRestaurant(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &AuthResult{
		Token:      token,
		User:       user,
		Restaurant: restaurant,
	}, nil
}
