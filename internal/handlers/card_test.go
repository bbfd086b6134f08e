package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/models"
)

func (suite *HandlerTestSuite) TestCreateCard_NumbersAcrossColumns() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	todo := suite.createTestColumn("Todo", dashboard.ID)
	done := suite.createTestColumn("Done", dashboard.ID)
	handler := NewCardHandler(suite.cardService)

	for i, column := range []*models.Column{todo, done} {
		c, w := suite.createContext(http.MethodPost, "/cards", map[string]interface{}{
			"title":       "Task",
			"dashboardId": dashboard.ID,
			"columnId":    column.ID,
			"memberIds":   []string{u.ID},
			"labels":      []map[string]string{{"text": "bug", "color": "red"}},
			"images":      []string{"https://img/1.png"},
		}, u)
		handler.CreateCard(c)

		suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		var card models.Card
		suite.decode(w, &card)
		suite.Equal(i+1, card.Number)
		suite.Len(card.Members, 1)
		suite.Len(card.Labels, 1)
	}
}

func (suite *HandlerTestSuite) TestCreateCard_Errors() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("Todo", dashboard.ID)
	handler := NewCardHandler(suite.cardService)

	cases := []struct {
		body   map[string]interface{}
		status int
	}{
		{map[string]interface{}{"dashboardId": dashboard.ID, "columnId": column.ID}, http.StatusBadRequest},
		{map[string]interface{}{"title": "T", "dashboardId": "missing", "columnId": column.ID}, http.StatusNotFound},
		{map[string]interface{}{"title": "T", "dashboardId": dashboard.ID, "columnId": "missing"}, http.StatusNotFound},
		{map[string]interface{}{"title": "T", "dashboardId": dashboard.ID, "columnId": column.ID, "memberIds": []string{"ghost"}}, http.StatusNotFound},
	}
	for _, tc := range cases {
		c, w := suite.createContext(http.MethodPost, "/cards", tc.body, u)
		handler.CreateCard(c)
		suite.Equal(tc.status, w.Code, "%v", tc.body)
	}
}

func (suite *HandlerTestSuite) TestUpdateCard_ReplacesLabels() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("Todo", dashboard.ID)
	card := suite.createTestCard("Task", column)
	handler := NewCardHandler(suite.cardService)

	patch := func(body string) models.Card {
		c, w := suite.createContext(http.MethodPatch, "/cards/"+card.ID, body, u, idParam(card.ID))
		handler.UpdateCard(c)
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var updated models.Card
		suite.decode(w, &updated)
		return updated
	}

	first := patch(`{"labels":[{"text":"old","color":"grey"}]}`)
	suite.Require().Len(first.Labels, 1)
	oldID := first.Labels[0].ID

	cleared := patch(`{"labels":[]}`)
	suite.Empty(cleared.Labels)

	replaced := patch(`{"labels":[{"id":"` + oldID + `","text":"a","color":"red"},{"text":"b","color":"blue"}]}`)
	suite.Require().Len(replaced.Labels, 2)
	for _, label := range replaced.Labels {
		suite.NotEqual(oldID, label.ID)
	}

	var count int64
	suite.db.Model(&models.Label{}).Count(&count)
	suite.Equal(int64(2), count)
}

func (suite *HandlerTestSuite) TestUpdateCard_IgnoresReadOnlyFields() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("Todo", dashboard.ID)
	card := suite.createTestCard("Task", column)
	handler := NewCardHandler(suite.cardService)

	c, w := suite.createContext(http.MethodPatch, "/cards/"+card.ID, map[string]interface{}{
		"id":          "other",
		"number":      77,
		"dashboardId": "elsewhere",
		"members":     []map[string]string{{"id": u.ID}},
		"title":       "Renamed",
		"comments":    []map[string]string{{"text": "looks good", "userId": u.ID, "userEmail": "spoofed@x.com"}},
	}, u, idParam(card.ID))
	handler.UpdateCard(c)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated models.Card
	suite.decode(w, &updated)
	suite.Equal(card.ID, updated.ID)
	suite.Equal(1, updated.Number)
	suite.Equal("Renamed", updated.Title)
	suite.Empty(updated.Members)
	suite.Require().Len(updated.Comments, 1)
	suite.Equal("u@x.com", updated.Comments[0].UserEmail)
}

func (suite *HandlerTestSuite) TestGetListDeleteCard() {
	u := suite.createTestUser("u@x.com")
	dashboard := suite.createTestDashboard("D", u)
	column := suite.createTestColumn("Todo", dashboard.ID)
	card := suite.createTestCard("Task", column)
	handler := NewCardHandler(suite.cardService)

	c, w := suite.createContext(http.MethodGet, "/cards/column/"+column.ID, nil, u, gin.Param{Key: "columnId", Value: column.ID})
	handler.ListCards(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var cards []models.Card
	suite.decode(w, &cards)
	suite.Len(cards, 1)

	c, w = suite.createContext(http.MethodGet, "/cards/"+card.ID, nil, u, idParam(card.ID))
	handler.GetCard(c)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got models.Card
	suite.decode(w, &got)
	suite.Require().NotNil(got.Column)
	suite.Equal(column.ID, got.Column.ID)

	c, w = suite.createContext(http.MethodDelete, "/cards/"+card.ID, nil, u, idParam(card.ID))
	handler.DeleteCard(c)
	c.Writer.WriteHeaderNow()
	suite.Equal(http.StatusNoContent, w.Code)

	c, w = suite.createContext(http.MethodGet, "/cards/"+card.ID, nil, u, idParam(card.ID))
	handler.GetCard(c)
	suite.Equal(http.StatusNotFound, w.Code)
}
