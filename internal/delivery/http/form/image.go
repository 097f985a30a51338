// Package form reads multipart fields that need more than echo's binder.
package form

import (
	"io"
	"net/http"
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
)

// Image reads an optional image part. A request without the part, or without a
// multipart body at all, yields nil so edit forms can keep the stored image.
// Both the declared type and the sniffed content must be image/*.
func Image(c echo.Context, field string, maxBytes int64) (*entity.ImageUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read uploaded image")
	}

	if header.Size > maxBytes {
		return nil, domainerrors.ErrImageTooLarge.
			WithDetails(util.FormatBytes(header.Size) + " exceeds " + util.FormatBytes(maxBytes))
	}

	declared := header.Header.Get(echo.HeaderContentType)
	if !entity.IsImageContentType(declared) {
		return nil, domainerrors.ErrImageInvalidType.WithDetails(declared)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded image")
	}
	if int64(len(data)) > maxBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails(util.FormatBytes(maxBytes))
	}

	sniffed := mimetype.Detect(data)
	if !strings.HasPrefix(sniffed.String(), "image/") {
		return nil, domainerrors.ErrImageInvalidType.WithDetails(declared + " declared, " + sniffed.String() + " detected")
	}

	return &entity.ImageUpload{
		Filename:    header.Filename,
		ContentType: sniffed.String(),
		Data:        data,
	}, nil
}
