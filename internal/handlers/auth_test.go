package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/yukikurage/taskboard-api/internal/auth"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/models"
)

func (suite *HandlerTestSuite) TestRegister_Created() {
	handler := NewAuthHandler(suite.authService)
	c, w := suite.createContext(http.MethodPost, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "Aa1!aaaa",
		"fullName": "A",
	}, nil)

	handler.Register(c)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var raw map[string]interface{}
	suite.decode(w, &raw)
	suite.NotEmpty(raw["accessToken"])
	suite.NotEmpty(raw["refreshToken"])
	user := raw["user"].(map[string]interface{})
	suite.Equal("", user["password"])
	suite.Equal("a@x.com", user["email"])
	suite.Equal("A", user["fullName"])
}

func (suite *HandlerTestSuite) TestRegister_Validation() {
	handler := NewAuthHandler(suite.authService)
	c, w := suite.createContext(http.MethodPost, "/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "weak",
	}, nil)

	handler.Register(c)

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.errorBody(w)
	messages := body["message"].([]interface{})
	suite.Len(messages, 2)
	suite.Contains(messages, "email must be an email")

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Zero(count)
}

func (suite *HandlerTestSuite) TestRegister_Conflict() {
	suite.createTestUser("a@x.com")
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "Bb2@bbbb",
	}, nil)
	handler.Register(c)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("user with this email already exists", suite.errorBody(w)["message"])

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *HandlerTestSuite) TestLogin() {
	suite.createTestUser("a@x.com")
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "a@x.com", Password: "wrong"}, nil)
	handler.Login(c)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("invalid credentials", suite.errorBody(w)["message"])

	c, w = suite.createContext(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "a@x.com", Password: "Aa1!aaaa"}, nil)
	handler.Login(c)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("a@x.com", resp.User.Email)
}

func (suite *HandlerTestSuite) TestLogout_RevokesTokens() {
	user := suite.createTestUser("a@x.com")
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/logout", nil, user)
	handler.Logout(c)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MessageResponse
	suite.decode(w, &resp)
	suite.Equal("Logout successful", resp.Message)

	_, err := suite.cache.Get(context.Background(), "access_token:"+user.ID)
	suite.Error(err)
}

func (suite *HandlerTestSuite) TestLogout_Unauthenticated() {
	handler := NewAuthHandler(suite.authService)
	c, w := suite.createContext(http.MethodPost, "/auth/logout", nil, nil)

	handler.Logout(c)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRefresh() {
	user := suite.createTestUser("a@x.com")
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/refresh", map[string]string{"refreshToken": "checked-by-middleware"}, user)
	handler.Refresh(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.Equal(user.ID, resp.User.ID)
}

func (suite *HandlerTestSuite) TestChangePassword() {
	user := suite.createTestUser("a@x.com")
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/change-password", dto.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "Bb2@bbbb",
	}, user)
	handler.ChangePassword(c)
	suite.Equal(http.StatusUnauthorized, w.Code)

	c, w = suite.createContext(http.MethodPost, "/auth/change-password", dto.ChangePasswordRequest{
		OldPassword: "Aa1!aaaa", NewPassword: "weak",
	}, user)
	handler.ChangePassword(c)
	suite.Equal(http.StatusBadRequest, w.Code)

	c, w = suite.createContext(http.MethodPost, "/auth/change-password", dto.ChangePasswordRequest{
		OldPassword: "Aa1!aaaa", NewPassword: "Bb2@bbbb",
	}, user)
	handler.ChangePassword(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp.AccessToken)

	_, err := suite.authService.Login(context.Background(), "a@x.com", "Bb2@bbbb")
	suite.NoError(err)
}

func (suite *HandlerTestSuite) TestOAuthLogin() {
	suite.providers[models.ProviderGitHub] = stubProvider{identity: &auth.ExternalIdentity{
		Provider:    models.ProviderGitHub,
		ExternalID:  "42",
		Email:       "octo@x.com",
		DisplayName: "Octo Cat",
	}}
	suite.providers[models.ProviderGoogle] = stubProvider{err: errors.New("tokeninfo returned 400")}
	handler := NewAuthHandler(suite.authService)

	c, w := suite.createContext(http.MethodPost, "/auth/github", map[string]string{"code": "abc"}, nil)
	handler.GitHub(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.Equal("octo@x.com", resp.User.Email)
	suite.Equal("", resp.User.Password)

	c, w = suite.createContext(http.MethodPost, "/auth/google", map[string]string{"credential": "a.b.c"}, nil)
	handler.Google(c)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("external authentication failed", suite.errorBody(w)["message"])

	c, w = suite.createContext(http.MethodPost, "/auth/github", map[string]string{}, nil)
	handler.GitHub(c)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUserHandler() {
	user := suite.createTestUser("a@x.com")
	handler := NewUserHandler(suite.userService)

	c, w := suite.createContext(http.MethodGet, "/users/me", nil, user)
	handler.GetCurrentUser(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var me dto.UserDTO
	suite.decode(w, &me)
	suite.Equal(user.ID, me.ID)

	c, w = suite.createContext(http.MethodPatch, "/users/me", map[string]string{"fullName": "Grace Hopper"}, user)
	handler.UpdateCurrentUser(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &me)
	suite.Equal("Grace Hopper", *me.FullName)

	c, w = suite.createContext(http.MethodPut, "/users/changePassword", dto.ChangePasswordRequest{
		UserID: "someone-else", OldPassword: "Aa1!aaaa", NewPassword: "Bb2@bbbb",
	}, user)
	handler.ChangePassword(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var msg dto.MessageResponse
	suite.decode(w, &msg)
	suite.NotEmpty(msg.Message)

	_, err := suite.authService.Login(context.Background(), "a@x.com", "Bb2@bbbb")
	suite.NoError(err)
}
