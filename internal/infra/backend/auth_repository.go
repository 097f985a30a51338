package backend

import (
	"context"
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type adminAuthRepository struct {
	client *Client
}

// NewAdminAuthRepository wraps the admin authentication endpoints.
func NewAdminAuthRepository(client *Client) repository.AdminAuthRepository {
	return &adminAuthRepository{client: client}
}

func (repo *adminAuthRepository) Login(ctx context.Context, email, password string) (*entity.LoginResult, error) {
	var data loginDTO
	res, err := repo.client.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/auth/login",
		Body:   jsonBody(map[string]string{"email": email, "password": password}),
	}, &data)
	if err != nil {
		return nil, err
	}

	return toLoginResult(&data, res), nil
}

func (repo *adminAuthRepository) VerifyTwoFactor(ctx context.Context, email, challenge, code string) (*entity.LoginResult, error) {
	body := map[string]string{"email": email, "code": code}
	if challenge != "" {
		body["tempToken"] = challenge
	}

	var data loginDTO
	res, err := repo.client.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/auth/verify-2fa",
		Body:   jsonBody(body),
	}, &data)
	if err != nil {
		return nil, err
	}

	result := toLoginResult(&data, res)
	// A verified code never asks for another one.
	result.RequiresTwoFactor = false

	return result, nil
}

func (repo *adminAuthRepository) Logout(ctx context.Context) error {
	_, err := repo.client.do(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/auth/logout",
	}, nil)

	return err
}

func (repo *adminAuthRepository) Profile(ctx context.Context) (*entity.AdminProfile, error) {
	var data struct {
		Admin *adminDTO `json:"admin"`
		adminDTO
	}
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/auth/me",
	}, &data); err != nil {
		return nil, err
	}

	if data.Admin != nil {
		return toAdminDomain(data.Admin), nil
	}

	return toAdminDomain(&data.adminDTO), nil
}

func (repo *adminAuthRepository) TwoFactorSetup(ctx context.Context) (*entity.TwoFactorSetup, error) {
	var data twoFactorSetupDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/auth/2fa/setup",
	}, &data); err != nil {
		return nil, err
	}

	return &entity.TwoFactorSetup{OTPAuthURL: data.OTPAuthURL, Secret: data.Secret}, nil
}

// toLoginResult prefers the token in the payload and falls back to the cookie the backend set.
func toLoginResult(data *loginDTO, res *result) *entity.LoginResult {
	token := data.Token
	if token == "" {
		for _, cookie := range res.Cookies {
			if cookie.Name == TokenCookieName && cookie.Value != "" {
				token = cookie.Value

				break
			}
		}
	}

	return &entity.LoginResult{
		Token:             token,
		RequiresTwoFactor: data.RequiresTwoFactor || data.TwoFactorRequired,
		Challenge:         data.TempToken,
		Admin:             toAdminDomain(data.Admin),
		Message:           res.Message,
	}
}

type statsRepository struct {
	client *Client
}

// NewStatsRepository wraps the dashboard statistics endpoint.
func NewStatsRepository(client *Client) repository.StatsRepository {
	return &statsRepository{client: client}
}

func (repo *statsRepository) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var data statsDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/stats",
	}, &data); err != nil {
		return nil, err
	}

	return toStatsDomain(&data), nil
}
