package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateReferralQR("+9647701234567")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// The payload the scanner delivers is the encoded JSON, not the image.
	payload, err := json.Marshal(QRCodeData{ReferrerPhone: "+9647701234567", Type: "referral"})
	require.NoError(t, err)

	phone, err := service.ParseReferralQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "+9647701234567", phone)
}

func TestQRCodeService_ParseReferralQR_RejectsGarbage(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseReferralQR("hello there")
	assert.Error(t, err)
}

func TestQRCodeService_ParseReferralQR_RejectsWrongType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{ReferrerPhone: "+9647701234567", Type: "subscription"})
	require.NoError(t, err)

	_, err = service.ParseReferralQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseReferralQR_RejectsEmptyPhone(t *testing.T) {
	service := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Type: "referral"})
	require.NoError(t, err)

	_, err = service.ParseReferralQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_DefaultsToMediumCorrection(t *testing.T) {
	service := NewQRCodeService(128, "bogus")

	png, err := service.GenerateReferralQR("+9647701234567")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
