package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/models"
)

func (suite *HandlerTestSuite) TestCreateDashboard() {
	user := suite.createTestUser("u@x.com")
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodPost, "/dashboards", map[string]interface{}{
		"title":    "D",
		"ownerIds": []string{"ignored"},
		"settings": map[string]interface{}{"isPublic": false, "allowComments": true, "allowInvites": true, "theme": "light"},
	}, user)
	handler.CreateDashboard(c)

	suite.Require().Equal(http.StatusCreated, w.Code)
	var dashboard models.Dashboard
	suite.decode(w, &dashboard)
	suite.Equal("D", dashboard.Title)
	suite.Equal([]string{user.ID}, []string(dashboard.OwnerIDs))
	suite.True(dashboard.Settings.Data().AllowComments)

	var member models.DashboardMember
	suite.Require().NoError(suite.db.Where("dashboard_id = ?", dashboard.ID).First(&member).Error)
	suite.Equal(user.ID, member.UserID)
	suite.Equal(models.DashboardRoleAdmin, member.Role)
}

func (suite *HandlerTestSuite) TestCreateDashboard_MissingTitle() {
	user := suite.createTestUser("u@x.com")
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodPost, "/dashboards", map[string]string{}, user)
	handler.CreateDashboard(c)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]interface{}{"title is required"}, suite.errorBody(w)["message"])
}

func (suite *HandlerTestSuite) TestListDashboards_OnlyMemberships() {
	u := suite.createTestUser("u@x.com")
	v := suite.createTestUser("v@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodGet, "/dashboards", nil, u)
	handler.ListDashboards(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var list []models.Dashboard
	suite.decode(w, &list)
	suite.Require().Len(list, 1)
	suite.Equal(dashboard.ID, list[0].ID)

	c, w = suite.createContext(http.MethodGet, "/dashboards", nil, v)
	handler.ListDashboards(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &list)
	suite.Empty(list)
}

func (suite *HandlerTestSuite) TestGetDashboard() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("Todo", dashboard.ID)
	suite.createTestCard("Task", column)
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodGet, "/dashboards/"+dashboard.ID, nil, u, idParam(dashboard.ID))
	handler.GetDashboard(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var raw map[string]interface{}
	suite.decode(w, &raw)
	columns := raw["columns"].([]interface{})
	suite.Require().Len(columns, 1)
	cards := columns[0].(map[string]interface{})["cards"].([]interface{})
	suite.Require().Len(cards, 1)
	suite.Equal(float64(1), cards[0].(map[string]interface{})["number"])
	users := raw["dashboardUsers"].([]interface{})
	suite.Require().Len(users, 1)
	suite.NotContains(users[0].(map[string]interface{})["user"], "password")

	c, w = suite.createContext(http.MethodGet, "/dashboards/missing", nil, u, idParam("missing"))
	handler.GetDashboard(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateDashboard() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodPatch, "/dashboards/"+dashboard.ID, map[string]interface{}{
		"title": "Renamed", "isPublic": true,
	}, u, idParam(dashboard.ID))
	handler.UpdateDashboard(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var updated models.Dashboard
	suite.decode(w, &updated)
	suite.Equal("Renamed", updated.Title)
	suite.True(updated.IsPublic)

	c, w = suite.createContext(http.MethodPatch, "/dashboards/"+dashboard.ID, `{"title": 5}`, u, idParam(dashboard.ID))
	handler.UpdateDashboard(c)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteDashboard() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	suite.createTestCard("Task", suite.createTestColumn("Todo", dashboard.ID))
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodDelete, "/dashboards/"+dashboard.ID, nil, u, idParam(dashboard.ID))
	handler.DeleteDashboard(c)
	c.Writer.WriteHeaderNow()
	suite.Equal(http.StatusNoContent, w.Code)

	for _, model := range []interface{}{&models.Dashboard{}, &models.DashboardMember{}, &models.Column{}, &models.Card{}} {
		var count int64
		suite.db.Model(model).Count(&count)
		suite.Zero(count, "%T", model)
	}

	c, w = suite.createContext(http.MethodDelete, "/dashboards/"+dashboard.ID, nil, u, idParam(dashboard.ID))
	handler.DeleteDashboard(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListMembers() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewDashboardHandler(suite.dashboardService)

	c, w := suite.createContext(http.MethodGet, "/dashboards/"+dashboard.ID+"/members", nil, u, gin.Param{Key: "id", Value: dashboard.ID})
	handler.ListMembers(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var members []dto.MemberDTO
	suite.decode(w, &members)
	suite.Require().Len(members, 1)
	suite.Equal(models.DashboardRoleAdmin, members[0].Role)
	suite.Equal("", members[0].User.Password)
}
