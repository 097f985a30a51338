package qrcode

import (
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	otpauthURIPrefix = "otpauth://"
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// enrollmentRenderer draws authenticator enrollment URIs.
type enrollmentRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService builds a renderer. Unknown recovery levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	level, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(errorCorrectionLevel))]
	if !ok {
		level = qrcode.Medium
	}

	return &enrollmentRenderer{size: size, level: level}
}

// NewQRCodeServiceFromConfig reads size and recovery level from the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func (r *enrollmentRenderer) EnrollmentPNG(otpauthURI string) ([]byte, error) {
	otpauthURI = strings.TrimSpace(otpauthURI)
	if !strings.HasPrefix(otpauthURI, otpauthURIPrefix) {
		return nil, domainerrors.ErrInvalidEnrollmentURI
	}

	code, err := qrcode.New(otpauthURI, r.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode enrollment uri")
	}

	png, err := code.PNG(r.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render enrollment png")
	}

	return png, nil
}
