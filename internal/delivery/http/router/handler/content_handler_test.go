package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockUC "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentMocks struct {
	banner    *mockUC.MockBannerUsecase
	blog      *mockUC.MockBlogUsecase
	warehouse *mockUC.MockWarehouseUsecase
}

func newTestContentHandler(t *testing.T, maxImageBytes int64) (*ContentHandler, contentMocks) {
	m := contentMocks{
		banner:    mockUC.NewMockBannerUsecase(t),
		blog:      mockUC.NewMockBlogUsecase(t),
		warehouse: mockUC.NewMockWarehouseUsecase(t),
	}

	return NewContentHandler(ContentHandlerParams{
		BannerUC:    m.banner,
		BlogUC:      m.blog,
		WarehouseUC: m.warehouse,
		Config:      &config.Config{Upload: &config.UploadConfig{MaxImageBytes: maxImageBytes}},
	}), m
}

func newBannerFormContext(t *testing.T, fields map[string]string, contentType string, image []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if image != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="image"; filename="banner.png"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/banners", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

var testPNG = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

func TestContentHandler_CreateBanner(t *testing.T) {
	t.Run("png banner reaches the usecase", func(t *testing.T) {
		h, m := newTestContentHandler(t, 1024)
		m.banner.EXPECT().
			CreateBanner(mock.Anything, mock.MatchedBy(func(draft *entity.BannerDraft) bool {
				return draft.Type == entity.BannerType("weekly") &&
					draft.Title == "Weekly deals" &&
					draft.Image != nil &&
					draft.Image.ContentType == "image/png"
			})).
			Return("Banner created", nil)

		c, rec := newBannerFormContext(t, map[string]string{"type": "weekly", "title": "Weekly deals"}, "image/png", testPNG)

		require.NoError(t, h.CreateBanner(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("pdf upload never reaches the usecase", func(t *testing.T) {
		h, _ := newTestContentHandler(t, 1024)

		c, _ := newBannerFormContext(t, map[string]string{"type": "weekly", "title": "Weekly deals"}, "application/pdf", []byte("%PDF-1.7"))

		err := h.CreateBanner(c)

		assert.True(t, errors.Is(err, domainerrors.ErrImageInvalidType))
	})

	t.Run("oversize upload never reaches the usecase", func(t *testing.T) {
		h, _ := newTestContentHandler(t, 8)

		c, _ := newBannerFormContext(t, map[string]string{"type": "weekly", "title": "Weekly deals"}, "image/png", testPNG)

		err := h.CreateBanner(c)

		assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
	})
}

func TestContentHandler_DeleteBlog(t *testing.T) {
	h, m := newTestContentHandler(t, 1024)
	m.blog.EXPECT().
		DeleteBlog(mock.Anything, "b-1", entity.Confirmation("")).
		Return("", domainerrors.ErrConfirmationRequired)

	c, _ := newJSONContext(http.MethodDelete, "/dashboard/blogs/b-1", "")
	c.SetParamNames("id")
	c.SetParamValues("b-1")

	err := h.DeleteBlog(c)

	assert.True(t, errors.Is(err, domainerrors.ErrConfirmationRequired))
}

func TestContentHandler_ListWarehouses(t *testing.T) {
	h, m := newTestContentHandler(t, 1024)
	m.warehouse.EXPECT().ListWarehouses(mock.Anything).Return([]*entity.Warehouse{{ID: "w-1", Name: "Central"}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/dashboard/warehouses", "")

	require.NoError(t, h.ListWarehouses(c))

	var warehouses []*entity.Warehouse
	decodeResponse(t, rec, &warehouses)
	require.Len(t, warehouses, 1)
	assert.Equal(t, "Central", warehouses[0].Name)
}

func TestDashboardHandler_RecentDecisions(t *testing.T) {
	t.Run("rejects a malformed limit", func(t *testing.T) {
		dashboardUC := mockUC.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC})

		c, _ := newJSONContext(http.MethodGet, "/dashboard/audit?limit=abc", "")

		err := h.RecentDecisions(c)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("passes the limit through", func(t *testing.T) {
		dashboardUC := mockUC.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(DashboardHandlerParams{DashboardUC: dashboardUC})
		dashboardUC.EXPECT().RecentDecisions(mock.Anything, 20).Return([]*entity.ModerationRecord{}, nil)

		c, rec := newJSONContext(http.MethodGet, "/dashboard/audit?limit=20", "")

		require.NoError(t, h.RecentDecisions(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTicketHandler_ReplyTicket(t *testing.T) {
	ticketUC := mockUC.NewMockSupportTicketUsecase(t)
	h := NewTicketHandler(TicketHandlerParams{TicketUC: ticketUC})
	ticketUC.EXPECT().ReplyTicket(mock.Anything, "t-1", "We are on it").Return("Reply sent", nil)

	c, rec := newJSONContext(http.MethodPost, "/dashboard/tickets/t-1/reply", `{"message":"We are on it"}`)
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	require.NoError(t, h.ReplyTicket(c))
	assert.Equal(t, "Reply sent", decodeResponse(t, rec, nil).Message)
}
