package handlers

import (
	"net/http"
	"net/url"

	"goblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlerTestSuite) TestProfileRequiresSession() {
	w := suite.get("/profile/", nil)
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login/", w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestProfileCreatedOnFirstAccess() {
	suite.registerUser("reader", "testpass123")
	session := suite.login("reader", "testpass123")

	// Drop the profile row so the view has to lazily recreate it.
	require.NoError(suite.T(), suite.db.Where("1 = 1").Delete(&models.Profile{}).Error)

	w := suite.get("/profile/", session)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	body := suite.decodeBody(w.Body)
	data := body["data"].(map[string]interface{})
	profile := data["profile"].(map[string]interface{})
	owner := profile["user"].(map[string]interface{})
	assert.Equal(suite.T(), "reader", owner["username"])

	var count int64
	suite.db.Model(&models.Profile{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *HandlerTestSuite) TestProfileListsOwnPostsIncludingDrafts() {
	suite.registerUser("writer", "testpass123")
	session := suite.login("writer", "testpass123")

	var user models.User
	require.NoError(suite.T(), suite.db.Where("username = ?", "writer").First(&user).Error)

	suite.createPublishedPost(user.ID, "Published", "published", nil)
	draft := &models.Post{Title: "Draft", Slug: "draft", AuthorID: user.ID}
	require.NoError(suite.T(), suite.db.Create(draft).Error)

	other := suite.createUser("other")
	suite.createPublishedPost(other.ID, "Someone else", "someone-else", nil)

	w := suite.get("/profile/", session)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	body := suite.decodeBody(w.Body)
	data := body["data"].(map[string]interface{})
	posts := data["user_posts"].([]interface{})
	assert.Len(suite.T(), posts, 2)
}

func (suite *HandlerTestSuite) TestEditProfilePersistsProfileAndUser() {
	suite.registerUser("writer", "testpass123")
	session := suite.login("writer", "testpass123")

	w := suite.postForm("/profile/edit/", url.Values{
		"bio":        {"Gopher at large."},
		"location":   {"Berlin"},
		"website":    {"https://example.com"},
		"phone":      {"+123456789"},
		"first_name": {"Jane"},
		"last_name":  {"Writer"},
		"email":      {"jane@example.com"},
	}, session, nil)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/profile/", w.Header().Get("Location"))

	var user models.User
	require.NoError(suite.T(), suite.db.Where("username = ?", "writer").First(&user).Error)
	assert.Equal(suite.T(), "Jane", user.FirstName)
	assert.Equal(suite.T(), "Writer", user.LastName)
	assert.Equal(suite.T(), "jane@example.com", user.Email)

	var profile models.Profile
	require.NoError(suite.T(), suite.db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(suite.T(), "Gopher at large.", profile.Bio)
	assert.Equal(suite.T(), "Berlin", profile.Location)
	assert.Equal(suite.T(), "https://example.com", profile.Website)
}

func (suite *HandlerTestSuite) TestEditProfileRejectsBadInput() {
	suite.registerUser("writer", "testpass123")
	session := suite.login("writer", "testpass123")

	w := suite.postForm("/profile/edit/", url.Values{
		"email":   {"not-an-email"},
		"website": {"not a url"},
	}, session, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Enter a valid email address.")
	assert.Contains(suite.T(), w.Body.String(), "Enter a valid URL.")

	var profile models.Profile
	require.NoError(suite.T(), suite.db.First(&profile).Error)
	assert.Empty(suite.T(), profile.Bio, "failed validation must not write")
}
