package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"tdo/internal/service"
)

// tokenResponse is the GoTrue token grant payload.
type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         service.User `json:"user"`
}

func (r tokenResponse) session() service.SessionData {
	token := &oauth2.Token{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
	}
	if r.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	user := r.User
	return service.SessionData{Token: token, User: &user}
}

// SignUp implements service.Auth. The confirmation e-mail links back to
// redirectURL.
func (c *Client) SignUp(ctx context.Context, email, password, redirectURL string) error {
	q := url.Values{}
	if redirectURL != "" {
		q.Set("redirect_to", redirectURL)
	}
	body := map[string]string{"email": email, "password": password}

	_, err := c.do(ctx, http.MethodPost, authPath+"/signup", q, body, nil)
	return err
}

// SignIn implements service.Auth via the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (service.SessionData, error) {
	q := url.Values{}
	q.Set("grant_type", "password")
	body := map[string]string{"email": email, "password": password}

	data, err := c.do(ctx, http.MethodPost, authPath+"/token", q, body, nil)
	if err != nil {
		return service.SessionData{}, err
	}
	return decodeSession(data)
}

// Refresh implements service.Auth via the refresh_token grant.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (service.SessionData, error) {
	q := url.Values{}
	q.Set("grant_type", "refresh_token")
	body := map[string]string{"refresh_token": refreshToken}

	data, err := c.do(ctx, http.MethodPost, authPath+"/token", q, body, nil)
	if err != nil {
		return service.SessionData{}, err
	}
	return decodeSession(data)
}

// SignOut implements service.Auth. Revokes the session server-side.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	_, err := c.do(ctx, http.MethodPost, authPath+"/logout", nil, nil, headers)
	return err
}

// ForgotPassword implements service.Auth. The reset link in the e-mail
// points at redirectURL.
func (c *Client) ForgotPassword(ctx context.Context, email, redirectURL string) error {
	q := url.Values{}
	if redirectURL != "" {
		q.Set("redirect_to", redirectURL)
	}
	body := map[string]string{"email": email}

	_, err := c.do(ctx, http.MethodPost, authPath+"/recover", q, body, nil)
	return err
}

// ResetPassword implements service.Auth against the live session.
func (c *Client) ResetPassword(ctx context.Context, accessToken, newPassword string) error {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	body := map[string]string{"password": newPassword}

	_, err := c.do(ctx, http.MethodPut, authPath+"/user", nil, body, headers)
	return err
}

func decodeSession(data []byte) (service.SessionData, error) {
	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return service.SessionData{}, fmt.Errorf("decode session: %w", err)
	}
	if resp.AccessToken == "" {
		return service.SessionData{}, fmt.Errorf("no access token in response")
	}
	return resp.session(), nil
}
