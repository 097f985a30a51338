package impl

import (
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/util"
)

const fieldImage = "image"

// imageRules pre-validates uploads before they are forwarded.
type imageRules struct {
	maxBytes int64
}

func newImageRules(cfg *config.Config) imageRules {
	rules := imageRules{maxBytes: 5 * 1024 * 1024}
	if cfg != nil && cfg.Upload != nil && cfg.Upload.MaxImageBytes > 0 {
		rules.maxBytes = cfg.Upload.MaxImageBytes
	}

	return rules
}

// check accepts a nil image only when it is not required.
func (r imageRules) check(img *entity.ImageUpload, required bool) error {
	if img == nil || len(img.Data) == 0 {
		if required {
			return domainerrors.NewValidationError(map[string]string{fieldImage: "Please select an image"})
		}

		return nil
	}

	if !entity.IsImageContentType(img.ContentType) {
		return domainerrors.ErrImageInvalidType.WithDetails(img.ContentType)
	}

	if img.Size() > r.maxBytes {
		return domainerrors.ErrImageTooLarge.
			WithDetails(util.FormatBytes(img.Size()) + " exceeds " + util.FormatBytes(r.maxBytes))
	}

	return nil
}

func requireConfirmation(confirmation entity.Confirmation) error {
	if !confirmation.IsConfirmed() {
		return domainerrors.ErrConfirmationRequired
	}

	return nil
}

// mergeFieldErrors folds a second field error into a ValidationError so a form reports every problem at once.
func mergeFieldErrors(err error, field, msg string) error {
	fields := map[string]string{}

	if err != nil {
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		for k, v := range validationErr.Fields() {
			fields[k] = v
		}
	}

	fields[field] = msg

	return domainerrors.NewValidationError(fields)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
