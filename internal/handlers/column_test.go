package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/models"
)

func (suite *HandlerTestSuite) TestCreateColumn_AppendsIgnoringOrder() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	handler := NewColumnHandler(suite.columnService)

	for i, title := range []string{"C1", "C2"} {
		c, w := suite.createContext(http.MethodPost, "/columns", map[string]interface{}{
			"title": title, "dashboardId": dashboard.ID, "order": 99,
		}, u)
		handler.CreateColumn(c)

		suite.Require().Equal(http.StatusCreated, w.Code)
		var column models.Column
		suite.decode(w, &column)
		suite.Equal(i+1, column.Order)
		suite.False(column.IsArchive)
	}

	c, w := suite.createContext(http.MethodPost, "/columns", map[string]interface{}{"title": "C3", "dashboardId": "missing"}, u)
	handler.CreateColumn(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestListAndGetColumns() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	first := suite.createTestColumn("C1", dashboard.ID)
	suite.createTestColumn("C2", dashboard.ID)
	suite.createTestCard("Task", first)
	handler := NewColumnHandler(suite.columnService)

	c, w := suite.createContext(http.MethodGet, "/columns/dashboard/"+dashboard.ID, nil, u, gin.Param{Key: "dashboardId", Value: dashboard.ID})
	handler.ListColumns(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var columns []models.Column
	suite.decode(w, &columns)
	suite.Require().Len(columns, 2)
	suite.Equal("C1", columns[0].Title)
	suite.Len(columns[0].Cards, 1)

	c, w = suite.createContext(http.MethodGet, "/columns/"+first.ID, nil, u, idParam(first.ID))
	handler.GetColumn(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var column models.Column
	suite.decode(w, &column)
	suite.Require().NotNil(column.Dashboard)
	suite.Equal(dashboard.ID, column.Dashboard.ID)

	c, w = suite.createContext(http.MethodGet, "/columns/missing", nil, u, idParam("missing"))
	handler.GetColumn(c)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateOrder() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	c1 := suite.createTestColumn("C1", dashboard.ID)
	c2 := suite.createTestColumn("C2", dashboard.ID)
	handler := NewColumnHandler(suite.columnService)

	c, w := suite.createContext(http.MethodPatch, "/columns/order", map[string]interface{}{
		"dashboardId": dashboard.ID, "columnIds": []string{c2.ID, c1.ID},
	}, u)
	handler.UpdateOrder(c)

	suite.Require().Equal(http.StatusOK, w.Code)
	var reloaded1, reloaded2 models.Column
	suite.Require().NoError(suite.db.First(&reloaded1, "id = ?", c1.ID).Error)
	suite.Require().NoError(suite.db.First(&reloaded2, "id = ?", c2.ID).Error)
	suite.Equal(2, reloaded1.Order)
	suite.Equal(1, reloaded2.Order)
}

func (suite *HandlerTestSuite) TestUpdateOrder_Rejects() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	c1 := suite.createTestColumn("C1", dashboard.ID)
	c2 := suite.createTestColumn("C2", dashboard.ID)
	handler := NewColumnHandler(suite.columnService)

	cases := []struct {
		ids    []string
		status int
	}{
		{[]string{c1.ID}, http.StatusBadRequest},
		{[]string{c1.ID, c2.ID, c1.ID}, http.StatusBadRequest},
		{[]string{c1.ID, c1.ID}, http.StatusBadRequest},
		{[]string{c1.ID, "stranger"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		c, w := suite.createContext(http.MethodPatch, "/columns/order", map[string]interface{}{
			"dashboardId": dashboard.ID, "columnIds": tc.ids,
		}, u)
		handler.UpdateOrder(c)
		suite.Equal(tc.status, w.Code, "%v", tc.ids)
	}

	c, w := suite.createContext(http.MethodPatch, "/columns/order", map[string]interface{}{"dashboardId": dashboard.ID}, u)
	handler.UpdateOrder(c)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]interface{}{"columnIds is required"}, suite.errorBody(w)["message"])

	var reloaded models.Column
	suite.Require().NoError(suite.db.First(&reloaded, "id = ?", c1.ID).Error)
	suite.Equal(1, reloaded.Order)
}

func (suite *HandlerTestSuite) TestUpdateAndDeleteColumn() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("C1", dashboard.ID)
	suite.createTestCard("Task", column)
	handler := NewColumnHandler(suite.columnService)

	c, w := suite.createContext(http.MethodPatch, "/columns/"+column.ID, map[string]interface{}{
		"title": "Done", "is_archive": true,
	}, u, idParam(column.ID))
	handler.UpdateColumn(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var updated models.Column
	suite.decode(w, &updated)
	suite.Equal("Done", updated.Title)
	suite.True(updated.IsArchive)

	c, w = suite.createContext(http.MethodDelete, "/columns/"+column.ID, nil, u, idParam(column.ID))
	handler.DeleteColumn(c)
	c.Writer.WriteHeaderNow()
	suite.Equal(http.StatusNoContent, w.Code)

	var cards int64
	suite.db.Model(&models.Card{}).Count(&cards)
	suite.Zero(cards)

	c, w = suite.createContext(http.MethodDelete, "/columns/"+column.ID, nil, u, idParam(column.ID))
	handler.DeleteColumn(c)
	suite.Equal(http.StatusNotFound, w.Code)
}
