package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newSessionTestRouter(t *testing.T, mockService *MockAuctionServiceInterface) (*gin.Engine, *auth.Service) {
	t.Helper()

	users, err := auth.SeedUsers()
	require.NoError(t, err)
	authService := auth.NewService(users, time.Minute)
	sessionHandler := NewSessionHandler(authService, mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", sessionHandler.LoginHandler)

	authed := router.Group("/")
	authed.Use(func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if session, ok := authService.Get(token); ok {
			c.Set(SessionContextKey, session)
		}
		c.Next()
	})
	authed.POST("/logout", sessionHandler.LogoutHandler)
	authed.GET("/toasts", sessionHandler.ListToastsHandler)
	authed.DELETE("/toasts/:toast_id", sessionHandler.DismissToastHandler)

	return router, authService
}

func newAuthedRequest(t *testing.T, method, url, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, nil)
	req.Header.Set("Authorization", token)
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router, authService := newSessionTestRouter(t, mockService)

	t.Run("success_seeds_session", func(t *testing.T) {
		mockService.EXPECT().AllItems().Return([]model.AuctionItem{
			{ID: 3, OwnerID: 1, Bids: 2, BidderIDs: []int64{2}, BidHistory: []model.Bid{{UserID: 2, Amount: 900}}},
		}, nil)

		resp, w := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "Ana", Password: "123"})
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, 1.0, data["user_id"])
		require.Equal(t, "ana", data["username"])

		token := data["token"].(string)
		require.NotEmpty(t, token)

		session, ok := authService.Get(token)
		require.True(t, ok)
		defer session.Toasts.Close()

		// login snapshots current state, so the seeded bids are not "new"
		require.Equal(t, 0, session.Tracker.OwnedCount(1, []model.AuctionItem{
			{ID: 3, OwnerID: 1, Bids: 2},
		}))

		list := session.Toasts.List()
		require.Len(t, list, 1)
		require.Equal(t, "Bem-vindo, ana!", list[0].Message)
	})

	t.Run("wrong_password", func(t *testing.T) {
		resp, w := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "ana", Password: "nope"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "invalid username or password", resp["message"])
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, w := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "mallory", Password: "123"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, w := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "ana"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router, authService := newSessionTestRouter(t, mockService)

	mockService.EXPECT().AllItems().Return([]model.AuctionItem{}, nil)
	resp, _ := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "bruno", Password: "123"})
	token := resp["data"].(map[string]any)["token"].(string)

	req := newAuthedRequest(t, http.MethodPost, "/logout", token)
	w := serve(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := authService.Get(token)
	require.False(t, ok, "session must be gone after logout")
}

func TestToastHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	router, authService := newSessionTestRouter(t, mockService)

	mockService.EXPECT().AllItems().Return([]model.AuctionItem{}, nil)
	resp, _ := doJSON(t, router, http.MethodPost, "/login", helpers.LoginRequest{Username: "carla", Password: "123"})
	token := resp["data"].(map[string]any)["token"].(string)
	session, _ := authService.Get(token)

	w := serve(router, newAuthedRequest(t, http.MethodGet, "/toasts", token))
	require.Equal(t, http.StatusOK, w.Code)

	var listed map[string]any
	decodeBody(t, w, &listed)
	toastsData := listed["data"].([]any)
	require.Len(t, toastsData, 1, "login leaves the welcome toast")

	toastID := toastsData[0].(map[string]any)["id"].(string)
	w = serve(router, newAuthedRequest(t, http.MethodDelete, "/toasts/"+toastID, token))
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, session.Toasts.List())
}
