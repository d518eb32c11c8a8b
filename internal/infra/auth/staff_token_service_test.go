package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Staff: &config.StaffConfig{
			TokenSecret: "test-secret-at-least-32-bytes-long",
			TokenTTL:    ttl,
		},
	}
}

func TestStaffTokenService_SignAndVerify(t *testing.T) {
	service, err := NewStaffTokenService(newStaffConfig(time.Hour))
	require.NoError(t, err)

	token, err := service.Sign("staff-42")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-42", claims.StaffID)
}

func TestStaffTokenService_RejectsExpiredToken(t *testing.T) {
	service, err := NewStaffTokenService(newStaffConfig(-time.Minute))
	require.NoError(t, err)

	token, err := service.Sign("staff-42")
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.Error(t, err)
}

func TestStaffTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewStaffTokenService(newStaffConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewStaffTokenService(&config.Config{
		Staff: &config.StaffConfig{TokenSecret: "a-completely-different-secret-key"},
	})
	require.NoError(t, err)

	token, err := issuer.Sign("staff-42")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestStaffTokenService_RejectsGarbage(t *testing.T) {
	service, err := NewStaffTokenService(newStaffConfig(time.Hour))
	require.NoError(t, err)

	_, err = service.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestNewStaffTokenService_RequiresSecret(t *testing.T) {
	_, err := NewStaffTokenService(&config.Config{})
	assert.Error(t, err)

	_, err = NewStaffTokenService(&config.Config{Staff: &config.StaffConfig{}})
	assert.Error(t, err)
}
