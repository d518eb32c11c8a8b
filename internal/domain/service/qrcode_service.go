package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReferralQR generates a referral invite QR code carrying the
	// referrer's phone number.
	GenerateReferralQR(referrerPhone string) ([]byte, error)

	// ParseReferralQR parses QR code data and returns the referrer phone.
	ParseReferralQR(qrData string) (string, error)
}
