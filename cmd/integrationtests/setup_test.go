package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	"auction-house/internal/describe"
	model "auction-house/internal/models"
	"auction-house/internal/payment"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// seedUsersOnce hashes the demo passwords a single time; bcrypt at default
// cost is too slow to repeat per test.
var (
	seedUsersOnce sync.Once
	seedUsers     []model.User
	seedUsersErr  error
)

func demoUsers(t *testing.T) []model.User {
	t.Helper()
	seedUsersOnce.Do(func() {
		seedUsers, seedUsersErr = auth.SeedUsers()
	})
	require.NoError(t, seedUsersErr)
	return seedUsers
}

// cannedDescriber stands in for the Gemini client.
type cannedDescriber struct {
	text string
	err  error
}

func (d cannedDescriber) Generate(ctx context.Context, title string, imageData []byte, mimeType string) (string, error) {
	return d.text, d.err
}

// SetupTestRouter initializes the full HTTP stack over an in-memory
// repository seeded with the given items.
func SetupTestRouter(t *testing.T, items ...model.AuctionItem) *gin.Engine {
	return setupRouter(t, cannedDescriber{text: "Uma descrição gerada."}, items...)
}

// SetupTestRouterWithDescriber is SetupTestRouter with a custom description
// generator, for exercising the fallback path.
func SetupTestRouterWithDescriber(t *testing.T, describer describe.Generator, items ...model.AuctionItem) *gin.Engine {
	return setupRouter(t, describer, items...)
}

func setupRouter(t *testing.T, describer describe.Generator, items ...model.AuctionItem) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, item := range items {
		require.NoError(t, repo.AddItem(item))
	}

	auctionSvc := auction.NewAuctionService(repo)
	authSvc := auth.NewService(demoUsers(t), time.Minute)
	payments := payment.NewProcessor(repo, 10*time.Millisecond)

	auctionHandler := handler.NewAuctionHandler(auctionSvc, payments, describer)
	sessionHandler := handler.NewSessionHandler(authSvc, auctionSvc)
	return server.SetupRouter(auctionHandler, sessionHandler, authSvc)
}

// Login authenticates one of the demo users and returns the bearer token.
func Login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login for %s failed: %v", username, resp)

	token := resp["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope. An empty token skips the Authorization header.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response: %s", w.Body.String())
	}
	return resp, w
}

// testCatalog mirrors the demo seed: five listings, one already ended so
// the payment flow is reachable.
func testCatalog() []model.AuctionItem {
	now := time.Now()
	bid := func(userID int64, username string, amount float64, age time.Duration) model.Bid {
		return model.Bid{
			BidID:    fmt.Sprintf("seed-%d-%v", userID, amount),
			UserID:   userID,
			Username: username,
			Amount:   amount,
			Date:     now.Add(-age).UTC(),
		}
	}

	return []model.AuctionItem{
		{
			ID: 1, Title: "Guitarra Fender Stratocaster Vintage", Description: "Clássica de 1978.",
			ImageURL: "/imgs/guitar.jpeg", CurrentBid: 7500,
			EndDate: now.Add(2 * 24 * time.Hour), OwnerID: 2,
			Bids: 3, BidderIDs: []int64{1, 3},
			BidHistory: []model.Bid{
				bid(1, "ana", 7000, 2*time.Hour),
				bid(3, "carla", 7200, time.Hour),
				bid(1, "ana", 7500, 30*time.Minute),
			},
		},
		{
			ID: 2, Title: "Câmera Leica M6 Analógica", Description: "Rangefinder 35mm icônica.",
			ImageURL: "/imgs/leica.jpeg", CurrentBid: 12800,
			EndDate: now.Add(5 * 24 * time.Hour), OwnerID: 3,
			Bids: 3, BidderIDs: []int64{1, 2},
			BidHistory: []model.Bid{
				bid(1, "ana", 12000, 4*time.Hour),
				bid(2, "bruno", 12500, 150*time.Minute),
				bid(1, "ana", 12800, time.Hour),
			},
		},
		{
			ID: 3, Title: "Relógio de Colecionador Seiko", Description: "Prospex Diver's 200m.",
			ImageURL: "/imgs/relogio_seiko.webp", CurrentBid: 2300,
			EndDate: now.Add(24 * time.Hour), OwnerID: 1,
			Bids: 1, BidderIDs: []int64{3},
			BidHistory: []model.Bid{
				bid(3, "carla", 2300, 12*time.Minute),
			},
		},
		{
			ID: 4, Title: "Bicicleta de Corrida Pinarello Dogma F12", Description: "Quadro de carbono.",
			ImageURL: "/imgs/bike.jpeg", CurrentBid: 35000,
			EndDate: now.Add(-24 * time.Hour), OwnerID: 3,
			Bids: 1, BidderIDs: []int64{2},
			BidHistory: []model.Bid{
				bid(2, "bruno", 35000, 2*24*time.Hour),
			},
		},
		{
			ID: 5, Title: "Tênis de Edição Limitada", Description: "Colaboração exclusiva, tamanho 42.",
			ImageURL: "/imgs/air-jordan-1-low.webp", CurrentBid: 850,
			EndDate: now.Add(3 * 24 * time.Hour), OwnerID: 1,
			Bids: 0, BidderIDs: []int64{}, BidHistory: []model.Bid{},
		},
	}
}

// describeFailure builds an error matching what the real client returns.
func describeFailure() error {
	return fmt.Errorf("describe: generate request: %w", auctionerrors.ErrExternalService)
}
