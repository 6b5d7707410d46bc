package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"goblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *HandlerTestSuite) TestRegisterCreatesUserAndProfile() {
	w := suite.postForm("/register/", url.Values{
		"username":   {"johndoe"},
		"first_name": {"John"},
		"last_name":  {"Doe"},
		"email":      {"john@example.com"},
		"password1":  {"testpass123"},
		"password2":  {"testpass123"},
	}, nil, nil)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login/", w.Header().Get("Location"))

	var users []models.User
	require.NoError(suite.T(), suite.db.Find(&users).Error)
	require.Len(suite.T(), users, 1)
	assert.Equal(suite.T(), "johndoe", users[0].Username)
	assert.Equal(suite.T(), "john@example.com", users[0].Email)
	assert.Equal(suite.T(), "John", users[0].FirstName)
	assert.Equal(suite.T(), "Doe", users[0].LastName)
	assert.NotEqual(suite.T(), "testpass123", users[0].Password)

	var profileCount int64
	suite.db.Model(&models.Profile{}).Where("user_id = ?", users[0].ID).Count(&profileCount)
	assert.Equal(suite.T(), int64(1), profileCount)
}

func (suite *HandlerTestSuite) TestRegisterPasswordMismatch() {
	w := suite.postForm("/register/", url.Values{
		"username":   {"johndoe"},
		"first_name": {"John"},
		"last_name":  {"Doe"},
		"email":      {"john@example.com"},
		"password1":  {"testpass123"},
		"password2":  {"other-pass"},
	}, nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "The two password fields didn't match.")

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "failed validation must not create a user")
}

func (suite *HandlerTestSuite) TestRegisterDuplicateUsername() {
	suite.registerUser("johndoe", "testpass123")

	w := suite.postForm("/register/", url.Values{
		"username":   {"johndoe"},
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@example.com"},
		"password1":  {"testpass123"},
		"password2":  {"testpass123"},
	}, nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "A user with that username already exists.")

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *HandlerTestSuite) TestLoginSuccessRedirectsHome() {
	suite.registerUser("johndoe", "testpass123")

	w := suite.postForm("/login/", url.Values{
		"username": {"johndoe"},
		"password": {"testpass123"},
	}, nil, nil)

	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	cookie := suite.login("johndoe", "testpass123")
	assert.NotEmpty(suite.T(), cookie.Value)
}

func (suite *HandlerTestSuite) TestLoginWrongPassword() {
	suite.registerUser("johndoe", "testpass123")

	w := suite.postForm("/login/", url.Values{
		"username": {"johndoe"},
		"password": {"wrong-password"},
	}, nil, nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid username or password.")
}

func (suite *HandlerTestSuite) TestLoginFailureMessageIsUniform() {
	suite.registerUser("johndoe", "testpass123")

	// Wrong password, unknown user, and a structurally empty form all
	// produce the same response.
	forms := []url.Values{
		{"username": {"johndoe"}, "password": {"wrong-password"}},
		{"username": {"nobody"}, "password": {"whatever"}},
		{},
	}

	var bodies []string
	for _, form := range forms {
		w := suite.postForm("/login/", form, nil, nil)
		assert.Equal(suite.T(), http.StatusOK, w.Code)
		bodies = append(bodies, w.Body.String())
	}

	assert.Equal(suite.T(), bodies[0], bodies[1])
	assert.Equal(suite.T(), bodies[1], bodies[2])
	assert.Contains(suite.T(), bodies[0], "Invalid username or password.")
}

func (suite *HandlerTestSuite) TestLogoutClearsSession() {
	suite.registerUser("johndoe", "testpass123")
	session := suite.login("johndoe", "testpass123")

	w := suite.get("/logout/", session)
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/", w.Header().Get("Location"))

	cleared := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.Name && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(suite.T(), cleared, "logout must expire the session cookie")
}

func (suite *HandlerTestSuite) TestLoginPageCarriesFlashMessage() {
	suite.registerUser("johndoe", "testpass123")

	// Registration redirects to the login page with a flash cookie.
	w := suite.postForm("/register/", url.Values{
		"username":   {"janedoe"},
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@example.com"},
		"password1":  {"testpass123"},
		"password2":  {"testpass123"},
	}, nil, nil)
	require.Equal(suite.T(), http.StatusFound, w.Code)

	var flash *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "flash" {
			flash = cookie
		}
	}
	require.NotNil(suite.T(), flash)

	req := suite.get("/login/", flash)
	assert.Equal(suite.T(), http.StatusOK, req.Code)

	var body map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(req.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	messages := data["messages"].([]interface{})
	assert.Contains(suite.T(), messages, "Account created for janedoe!")
}
