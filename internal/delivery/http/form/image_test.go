package form

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngData = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func newMultipartContext(t *testing.T, field, filename, contentType string, data []byte) echo.Context {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("title", "Summer sale"))
	if field != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/banners", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestImage(t *testing.T) {
	t.Run("png is accepted with the sniffed type", func(t *testing.T) {
		c := newMultipartContext(t, "image", "banner.png", "image/png", pngData)

		img, err := Image(c, "image", 1024)

		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, "banner.png", img.Filename)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Equal(t, pngData, img.Data)
	})

	t.Run("missing part yields nil", func(t *testing.T) {
		c := newMultipartContext(t, "", "", "", nil)

		img, err := Image(c, "image", 1024)

		require.NoError(t, err)
		assert.Nil(t, img)
	})

	t.Run("non-multipart body yields nil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/dashboard/blogs/b-1", bytes.NewBufferString(`{"title":"x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		img, err := Image(c, "image", 1024)

		require.NoError(t, err)
		assert.Nil(t, img)
	})

	t.Run("declared pdf is rejected", func(t *testing.T) {
		c := newMultipartContext(t, "image", "terms.pdf", "application/pdf", []byte("%PDF-1.7"))

		_, err := Image(c, "image", 1024)

		assert.True(t, errors.Is(err, domainerrors.ErrImageInvalidType))
	})

	t.Run("pdf posing as png is rejected", func(t *testing.T) {
		c := newMultipartContext(t, "image", "fake.png", "image/png", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n"))

		_, err := Image(c, "image", 1024)

		assert.True(t, errors.Is(err, domainerrors.ErrImageInvalidType))
	})

	t.Run("oversize file is rejected", func(t *testing.T) {
		c := newMultipartContext(t, "image", "banner.png", "image/png", pngData)

		_, err := Image(c, "image", 16)

		assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
	})
}
