package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/diegorodrguez7/carta-digital-qr/internal/auth"
	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
	"github.com/diegorodrguez7/carta-digital-qr/internal/model"
)

// MockRestaurantService is a mock implementation of RestaurantService.
type MockRestaurantService struct {
	mock.Mock
}

func (m *MockRestaurantService) EnsureRestaurant(ctx context.Context, user *model.User) (*model.Restaurant, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) GetForOwner(ctx context.Context, ownerID uuid.UUID) (*model.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func (m *MockRestaurantService) UpdateProfile(ctx context.Context, ownerID uuid.UUID, update ProfileUpdate) (*model.Restaurant, error) {
	args := m.Called(ctx, ownerID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

func TestAuthService_LoginGoogle(t *testing.T) {
	superadmins := []string{"admin@qarta.example"}

	tests := []struct {
		name          string
		credential    string
		setupMock     func(*MockUserRepository, *MockRestaurantService, *MockIdentityVerifier)
		expectedError error
		expectedRole  model.Role
	}{
		{
			name:          "missing credential",
			credential:    "",
			setupMock:     func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {},
			expectedError: apperrors.NewValidation("credential"),
		},
		{
			name:       "verifier rejects the credential",
			credential: "bad-token",
			setupMock: func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {
				mVerifier.On("Verify", mock.Anything, "bad-token").Return(nil, apperrors.ErrIdentityVerification)
			},
			expectedError: apperrors.ErrIdentityVerification,
		},
		{
			name:       "payload without email claim",
			credential: "token",
			setupMock: func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {
				mVerifier.On("Verify", mock.Anything, "token").Return(nil, apperrors.ErrMissingEmailClaim)
			},
			expectedError: apperrors.ErrMissingEmailClaim,
		},
		{
			name:       "new client user is created with lowercased email",
			credential: "token",
			setupMock: func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {
				mVerifier.On("Verify", mock.Anything, "token").Return(&auth.IdentityPayload{
					Email: "Nuevo@Qarta.example",
					Name:  "Nuevo Usuario",
				}, nil)
				mUsers.On("FindByEmail", mock.Anything, "nuevo@qarta.example").Return(nil, gorm.ErrRecordNotFound)
				mUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Email == "nuevo@qarta.example" && u.Role == model.RoleClient
				})).Return(nil)
				mRest.On("EnsureRestaurant", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.Restaurant{}, nil)
			},
			expectedRole: model.RoleClient,
		},
		{
			name:       "allow-listed email resolves to superadmin on first login",
			credential: "token",
			setupMock: func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {
				mVerifier.On("Verify", mock.Anything, "token").Return(&auth.IdentityPayload{
					Email: "admin@qarta.example",
				}, nil)
				mUsers.On("FindByEmail", mock.Anything, "admin@qarta.example").Return(nil, gorm.ErrRecordNotFound)
				mUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Role == model.RoleSuperadmin
				})).Return(nil)
				mRest.On("EnsureRestaurant", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil, nil)
			},
			expectedRole: model.RoleSuperadmin,
		},
		{
			name:       "prior client record is upgraded in place",
			credential: "token",
			setupMock: func(mUsers *MockUserRepository, mRest *MockRestaurantService, mVerifier *MockIdentityVerifier) {
				mVerifier.On("Verify", mock.Anything, "token").Return(&auth.IdentityPayload{
					Email: "admin@qarta.example",
				}, nil)
				mUsers.On("FindByEmail", mock.Anything, "admin@qarta.example").Return(&model.User{
					ID:    uuid.New(),
					Email: "admin@qarta.example",
					Role:  model.RoleClient,
				}, nil)
				mUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Role == model.RoleSuperadmin
				})).Return(nil)
				mRest.On("EnsureRestaurant", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil, nil)
			},
			expectedRole: model.RoleSuperadmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockRestaurants := new(MockRestaurantService)
			mockVerifier := new(MockIdentityVerifier)
			tt.setupMock(mockUsers, mockRestaurants, mockVerifier)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUsers, mockRestaurants, mockVerifier, jwtService, superadmins)

			result, err := service.LoginGoogle(context.Background(), tt.credential)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, tt.expectedRole, result.User.Role)

				claims, err := jwtService.ValidateToken(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}

			mockUsers.AssertExpectations(t)
			mockVerifier.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginDev(t *testing.T) {
	tests := []struct {
		name          string
		requestedRole string
		expectedEmail string
		expectedRole  model.Role
	}{
		{
			name:          "defaults to the demo client",
			requestedRole: "",
			expectedEmail: "cliente-demo@qarta.local",
			expectedRole:  model.RoleClient,
		},
		{
			name:          "superadmin tag maps to the demo superadmin",
			requestedRole: "SUPERADMIN",
			expectedEmail: "superadmin@qarta.local",
			expectedRole:  model.RoleSuperadmin,
		},
		{
			name:          "unknown tags fall back to client",
			requestedRole: "ROOT",
			expectedEmail: "cliente-demo@qarta.local",
			expectedRole:  model.RoleClient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockRestaurants := new(MockRestaurantService)

			mockUsers.On("FindByEmail", mock.Anything, tt.expectedEmail).Return(nil, gorm.ErrRecordNotFound)
			mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
				return u.Email == tt.expectedEmail && u.Role == tt.expectedRole
			})).Return(nil)
			mockRestaurants.On("EnsureRestaurant", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil, nil)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockUsers, mockRestaurants, new(MockIdentityVerifier), jwtService, nil)

			result, err := service.LoginDev(context.Background(), tt.requestedRole)

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, tt.expectedEmail, result.User.Email)
			assert.Equal(t, tt.expectedRole, result.User.Role)

			mockUsers.AssertExpectations(t)
		})
	}
}
