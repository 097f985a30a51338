package qrcode

import (
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURI = "otpauth://totp/Miorish:ops@miorish.com?secret=JBSWY3DPEHPK3PXP&issuer=Miorish"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
		wantLevel            qrcode.RecoveryLevel
	}{
		{"Low error correction", 256, "L", 256, qrcode.Low},
		{"Medium error correction", 256, "M", 256, qrcode.Medium},
		{"High error correction", 256, "Q", 256, qrcode.High},
		{"Highest error correction", 256, " h ", 256, qrcode.Highest},
		{"Default error correction", 256, "invalid", 256, qrcode.Medium},
		{"Default size", 0, "M", defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, ok := NewQRCodeService(tt.size, tt.errorCorrectionLevel).(*enrollmentRenderer)
			require.True(t, ok)
			assert.Equal(t, tt.wantSize, renderer.size)
			assert.Equal(t, tt.wantLevel, renderer.level)
		})
	}
}

func TestQRCodeService_EnrollmentPNG(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.EnrollmentPNG(testURI)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_EnrollmentPNG_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.EnrollmentPNG(testURI)
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_EnrollmentPNG_RejectsForeignURIs(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, uri := range []string{"", "https://evil.example/totp", "JBSWY3DPEHPK3PXP"} {
		_, err := service.EnrollmentPNG(uri)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidEnrollmentURI, uri)
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})
	_, err := svc.EnrollmentPNG(testURI)
	require.NoError(t, err)

	svc = NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 200, ErrorCorrectionLevel: "Q"}})
	_, err = svc.EnrollmentPNG(testURI)
	require.NoError(t, err)
}
