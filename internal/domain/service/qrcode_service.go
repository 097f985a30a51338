package service

// QRCodeService renders two-factor enrollment codes
type QRCodeService interface {
	// EnrollmentPNG encodes an otpauth:// URI as a PNG image
	EnrollmentPNG(otpauthURI string) ([]byte, error)
}
