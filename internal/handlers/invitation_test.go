package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/models"
)

func (suite *HandlerTestSuite) TestCreateInvitation_AlwaysPending() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewInvitationHandler(suite.invitationService)

	c, w := suite.createContext(http.MethodPost, "/invitations", map[string]string{
		"dashboardId": dashboard.ID, "inviteeEmail": "friend@x.com", "status": "accepted",
	}, u)
	handler.CreateInvitation(c)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var invitation models.DashboardInvitation
	suite.decode(w, &invitation)
	suite.Equal(models.InvitationPending, invitation.Status)
	suite.Equal(u.ID, invitation.InviterID)
	suite.Equal("u@x.com", invitation.InviterEmail)

	c, w = suite.createContext(http.MethodGet, "/invitations/dashboard/"+dashboard.ID, nil, u, gin.Param{Key: "dashboardId", Value: dashboard.ID})
	handler.ListInvitations(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list []models.DashboardInvitation
	suite.decode(w, &list)
	suite.Len(list, 1)
}

func (suite *HandlerTestSuite) TestCreateInvitation_Invalid() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewInvitationHandler(suite.invitationService)

	c, w := suite.createContext(http.MethodPost, "/invitations", map[string]string{
		"dashboardId": dashboard.ID, "inviteeEmail": "friend", "status": "maybe",
	}, u)
	handler.CreateInvitation(c)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Len(suite.errorBody(w)["message"], 2)

	c, w = suite.createContext(http.MethodPost, "/invitations", map[string]string{
		"dashboardId": "missing", "inviteeEmail": "friend@x.com",
	}, u)
	handler.CreateInvitation(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func (suite *HandlerTestSuite) TestHealth() {
	handler := NewHealthHandler(map[string]Pinger{"database": stubPinger{}})
	c, w := suite.createContext(http.MethodGet, "/health", nil, nil)
	handler.Health(c)
	suite.Equal(http.StatusOK, w.Code)

	handler = NewHealthHandler(map[string]Pinger{"database": stubPinger{}, "redis": stubPinger{err: errors.New("connection refused")}})
	c, w = suite.createContext(http.MethodGet, "/health", nil, nil)
	handler.Health(c)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("degraded", body["status"])
	suite.Equal("connection refused", body["dependencies"].(map[string]interface{})["redis"])
}
