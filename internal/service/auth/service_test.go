package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-StayBooking/pkg/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(Config{
		Secret:       testSecret,
		PasswordHash: string(hash),
		Issuer:       "stay-booking",
	}, logger.NewDiscard())
}

func TestLoginAndParse(t *testing.T) {
	svc := newTestService(t)
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	resp, err := svc.Login("correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, issued.Add(DefaultTokenTTL), resp.ExpiresAt)

	claims, err := svc.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "stay-booking", claims.Issuer)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParse_Expired(t *testing.T) {
	svc := newTestService(t)
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	resp, err := svc.Login("correct horse")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(DefaultTokenTTL + time.Minute) }
	_, err = svc.Parse(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Rejects(t *testing.T) {
	svc := newTestService(t)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "stay-booking",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("another secret of the same length!!"))
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken, "wrong key")

	guest := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: "guest",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "stay-booking",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err = guest.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken, "wrong role")

	_, err = svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
