package qrcode

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the referral invite payload carried by the QR code.
// The same JSON lands as the first inbound message when a new customer scans
// an invite.
type QRCodeData struct {
	ReferrerPhone string `json:"referrer_phone"`
	Type          string `json:"type"`
}

const referralQRType = "referral"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReferralQR generates a referral invite QR code for a referrer.
func (s *qrcodeService) GenerateReferralQR(referrerPhone string) ([]byte, error) {
	data := QRCodeData{
		ReferrerPhone: referrerPhone,
		Type:          referralQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReferralQR parses QR code data and returns the referrer phone.
func (s *qrcodeService) ParseReferralQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != referralQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ReferrerPhone == "" {
		return "", fmt.Errorf("referral QR code carries no referrer phone")
	}

	return data.ReferrerPhone, nil
}
