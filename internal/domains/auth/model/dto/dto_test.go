package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/infras/jwt"
	"bistro/internal/domains/auth/model/dto"
	"bistro/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	phone := "+15550100"
	req := dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "plaintext-ignored",
		FullName: "Jane Doe",
		Phone:    &phone,
	}

	user := req.ToUserModel("jane@example.com", "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.Equal(t, req.FullName, user.FullName)
	assert.Equal(t, &phone, user.Phone)
	assert.True(t, user.Active)
	assert.Equal(t, "jane@example.com", user.Metadata.CreatedBy)
	assert.False(t, user.Metadata.CreatedAt.IsZero())
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}
