package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{BaseURL: server.URL + "/", Timeout: 5 * time.Second}},
		Logger: newDiscardLogger(),
	})
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, message string, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"success": status < 300,
		"message": message,
		"data":    data,
	}))
}

func sessionContext() context.Context {
	return session.WithSession(context.Background(), &entity.Session{AdminID: "admin-1", AccessToken: "backend-token"})
}

func TestExpandRoute(t *testing.T) {
	assert.Equal(t, "/admin/dashboard/sellers", expandRoute("/admin/dashboard/sellers", nil))
	assert.Equal(t, "/general/categories/c1/subcategories", expandRoute("/general/categories/{id}/subcategories", []string{"c1"}))
	assert.Equal(t, "/admin/dashboard/products/a%2Fb", expandRoute("/admin/dashboard/products/{id}", []string{"a/b"}))
}

func TestClient_SendsTokenCookieAndDecodesData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookieName)
		require.NoError(t, err)
		assert.Equal(t, "backend-token", cookie.Value)
		assert.Equal(t, "/admin/dashboard/pending-seller", r.URL.Path)

		writeEnvelope(t, w, http.StatusOK, "", []map[string]any{
			{"_id": "s1", "shopName": "Acme", "status": "active", "isApproved": false},
			{"_id": "s2", "shopName": "Globex"},
		})
	})

	sellers, err := NewSellerRepository(client).ListPendingSellers(sessionContext())
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, "s1", sellers[0].ID)
	assert.Equal(t, "Acme", sellers[0].ShopName)
	assert.Equal(t, entity.SellerActive, sellers[0].Status)
}

func TestClient_MutationReturnsBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/admin/dashboard/pending-seller/s1/reject", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Documents are missing", body["reason"])

		writeEnvelope(t, w, http.StatusOK, "Seller rejected", nil)
	})

	message, err := NewSellerRepository(client).RejectSeller(sessionContext(), "s1", "  Documents are missing ")
	require.NoError(t, err)
	assert.Equal(t, "Seller rejected", message)
}

func TestClient_RejectProductWithoutReasonSendsNoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, raw)

		writeEnvelope(t, w, http.StatusOK, "Product rejected", nil)
	})

	message, err := NewProductRepository(client).RejectProduct(sessionContext(), "p1", "   ")
	require.NoError(t, err)
	assert.Equal(t, "Product rejected", message)
}

func TestClient_NonSuccessStatusBecomesBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, "Category has products", nil)
	})

	_, err := NewCategoryRepository(client).DeleteCategory(sessionContext(), "c1")
	require.Error(t, err)

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusConflict, backendErr.Status())
	assert.Equal(t, "Category has products", backendErr.Message())
}

func TestClient_NonJSONErrorBodyStillMapsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	})

	_, err := NewStatsRepository(client).Stats(sessionContext())

	var backendErr *domainerrors.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadGateway, backendErr.HTTPCode())
	assert.Equal(t, "Request failed with status 500", backendErr.Message())
}

func TestClient_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{BaseURL: baseURL, Timeout: time.Second}},
		Logger: newDiscardLogger(),
	})

	_, err := NewWarehouseRepository(client).ListWarehouses(sessionContext())
	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
}

func TestClient_CancelledContextAbortsCall(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(sessionContext())
	cancel()

	_, err := NewBlogRepository(client).GetBlog(ctx, "b1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SuccessFalseEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"Banner type is full"}`))
	})

	_, err := NewBannerRepository(client).DeleteBanner(sessionContext(), "b1")
	require.ErrorIs(t, err, domainerrors.ErrBackendResponse)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Banner type is full", appErr.Message())
}

func TestClient_NoContentMutationSucceeds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "empty ok", status: http.StatusOK},
		{name: "whitespace ok", status: http.StatusOK, body: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			message, err := NewBlogRepository(client).DeleteBlog(sessionContext(), "b1")
			require.NoError(t, err)
			assert.Empty(t, message)
		})
	}
}

func TestClient_NullListElementsAreSkipped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[null,{"_id":"s1","shopName":"Acme"},null]}`))
	})

	sellers, err := NewSellerRepository(client).ListPendingSellers(sessionContext())
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "s1", sellers[0].ID)
}

func TestClient_MultipartCreateCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/dashboard/categories/create-categories", r.URL.Path)

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		form, err := multipart.NewReader(r.Body, params["boundary"]).ReadForm(1 << 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"Shoes"}, form.Value["name"])
		require.Len(t, form.File["image"], 1)
		assert.Equal(t, "shoes.png", form.File["image"][0].Filename)
		assert.Equal(t, "image/png", form.File["image"][0].Header.Get("Content-Type"))

		writeEnvelope(t, w, http.StatusCreated, "Category created", nil)
	})

	message, err := NewCategoryRepository(client).CreateCategory(sessionContext(), &entity.CategoryDraft{
		Name:  "Shoes",
		Image: &entity.ImageUpload{Filename: "shoes.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Category created", message)
}

func TestClient_ListProductsPassesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "shoe", r.URL.Query().Get("search"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))

		writeEnvelope(t, w, http.StatusOK, "", map[string]any{
			"products": []map[string]any{
				{"_id": "p1", "name": "Runner", "approvalStatus": "pending", "seller": map[string]any{"_id": "s1", "name": "Acme"}},
			},
			"pagination": map[string]any{"page": 2, "limit": 20, "total": 21, "totalPages": 2},
		})
	})

	page, err := NewProductRepository(client).ListProducts(sessionContext(), entity.ListQuery{Page: 2, Limit: 20, Search: " shoe ", Status: "pending"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "s1", page.Items[0].SellerID)
	assert.Equal(t, entity.ApprovalPending, page.Items[0].Status)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestAdminAuthRepository_LoginFlags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/auth/login":
			writeEnvelope(t, w, http.StatusOK, "Enter your code", map[string]any{"requiresTwoFactor": true, "tempToken": "ch-1"})
		case "/admin/auth/verify-2fa":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ch-1", body["tempToken"])
			assert.Equal(t, "123456", body["code"])

			http.SetCookie(w, &http.Cookie{Name: TokenCookieName, Value: "cookie-token"})
			writeEnvelope(t, w, http.StatusOK, "Welcome", map[string]any{"admin": map[string]any{"_id": "a1", "email": "ops@miorish.com"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	repo := NewAdminAuthRepository(client)

	login, err := repo.Login(context.Background(), "ops@miorish.com", "secret")
	require.NoError(t, err)
	assert.True(t, login.RequiresTwoFactor)
	assert.Equal(t, "ch-1", login.Challenge)
	assert.Empty(t, login.Token)

	verified, err := repo.VerifyTwoFactor(context.Background(), "ops@miorish.com", "ch-1", "123456")
	require.NoError(t, err)
	assert.False(t, verified.RequiresTwoFactor)
	assert.Equal(t, "cookie-token", verified.Token)
	assert.Equal(t, "a1", verified.Admin.ID)
	assert.Equal(t, "Welcome", verified.Message)
}

func TestSupportTicketRepository_GetTicketMapsThread(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(t, w, http.StatusOK, "", map[string]any{
			"_id":     "t1",
			"subject": "Refund",
			"status":  "in_progress",
			"user":    map[string]any{"_id": "u1", "name": "Jane", "email": "jane@example.com"},
			"messages": []map[string]any{
				{"_id": "m1", "senderRole": "user", "message": "Where is my refund?"},
			},
		})
	})

	ticket, err := NewSupportTicketRepository(client).GetTicket(sessionContext(), "t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TicketInProgress, ticket.Status)
	assert.Equal(t, "Jane", ticket.RequesterName)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, "Where is my refund?", ticket.Messages[0].Body)
}
