package main

import (
	"fmt"
	"os"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auth"
	"auction-house/internal/describe"
	model "auction-house/internal/models"
	"auction-house/internal/payment"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/internal/toasts"
	handler "auction-house/services/auction/handler"
	"auction-house/utils"
)

func main() {

	repo, err := buildStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}

	users, err := auth.SeedUsers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed users: %v\n", err)
		os.Exit(1)
	}

	auctionSvc := auction.NewAuctionService(repo.store)
	authSvc := auth.NewService(users, toasts.DefaultTTL)
	payments := payment.NewProcessor(repo.store, payment.DefaultDelay)
	describer := describe.NewGeminiGenerator(os.Getenv("GEMINI_API_KEY"))

	auctionHandler := handler.NewAuctionHandler(auctionSvc, payments, describer)
	sessionHandler := handler.NewSessionHandler(authSvc, auctionSvc)
	router := server.SetupRouter(auctionHandler, sessionHandler, authSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

type store struct {
	store  repository.AuctionStore
	seeder interface{ AddItem(model.AuctionItem) error }
}

// buildStore opens the sqlite store when AUCTION_DB is set and falls back
// to the in-memory repo otherwise. A fresh store gets the demo catalog.
func buildStore() (store, error) {
	var s store
	if path := os.Getenv("AUCTION_DB"); path != "" {
		repo, err := repository.NewSQLiteRepo(path)
		if err != nil {
			return store{}, err
		}
		s = store{store: repo, seeder: repo}
	} else {
		repo := repository.NewMemoryRepo()
		s = store{store: repo, seeder: repo}
	}

	items, err := s.store.ListItems()
	if err != nil {
		return store{}, err
	}
	if len(items) == 0 {
		for _, item := range seedCatalog() {
			if err := s.seeder.AddItem(item); err != nil {
				return store{}, err
			}
		}
	}
	return s, nil
}

// seedCatalog returns the demo listings: ids 1..5, one auction already
// ended unpaid so the payment flow is reachable out of the box.
func seedCatalog() []model.AuctionItem {
	now := time.Now()
	bid := func(userID int64, username string, amount float64, age time.Duration) model.Bid {
		return model.Bid{
			BidID:    utils.GenerateID(),
			UserID:   userID,
			Username: username,
			Amount:   amount,
			Date:     now.Add(-age).UTC(),
		}
	}

	return []model.AuctionItem{
		{
			ID:          1,
			Title:       "Guitarra Fender Stratocaster Vintage",
			Description: "Uma guitarra clássica de 1978, em perfeito estado. Som lendário que marcou gerações. Ideal para colecionadores e músicos exigentes. Acompanha case original.",
			ImageURL:    "/imgs/guitar.jpeg",
			CurrentBid:  7500,
			EndDate:     now.Add(2 * 24 * time.Hour),
			OwnerID:     2, // bruno
			Bids:        3,
			BidderIDs:   []int64{1, 3},
			BidHistory: []model.Bid{
				bid(1, "ana", 7000, 2*time.Hour),
				bid(3, "carla", 7200, time.Hour),
				bid(1, "ana", 7500, 30*time.Minute),
			},
		},
		{
			ID:          2,
			Title:       "Câmera Leica M6 Analógica",
			Description: "Câmera rangefinder 35mm icônica. Perfeita para fotografia de rua e documental. Corpo em magnésio, visor claro e mecânica impecável. Lente Summicron 35mm f/2 inclusa.",
			ImageURL:    "https://images.unsplash.com/photo-1519638831568-d9897f54ed69?q=80&w=2070&auto=format&fit=crop",
			CurrentBid:  12800,
			EndDate:     now.Add(5 * 24 * time.Hour),
			OwnerID:     3, // carla
			Bids:        3,
			BidderIDs:   []int64{1, 2},
			BidHistory: []model.Bid{
				bid(1, "ana", 12000, 4*time.Hour),
				bid(2, "bruno", 12500, 150*time.Minute),
				bid(1, "ana", 12800, time.Hour),
			},
		},
		{
			ID:          3,
			Title:       "Relógio de Colecionador Seiko",
			Description: "Seiko Prospex Diver's 200m, edição limitada. Design robusto e clássico, perfeito para mergulho e uso diário. Movimento automático com reserva de marcha de 41 horas.",
			ImageURL:    "/imgs/relogio_seiko.webp",
			CurrentBid:  2300,
			EndDate:     now.Add(24 * time.Hour),
			OwnerID:     1, // ana
			Bids:        1,
			BidderIDs:   []int64{3},
			BidHistory: []model.Bid{
				bid(3, "carla", 2300, 12*time.Minute),
			},
		},
		{
			ID:          4,
			Title:       "Bicicleta de Corrida Pinarello Dogma F12",
			Description: "Bicicleta de estrada de alta performance, usada por equipes profissionais. Quadro de carbono, grupo Shimano Dura-Ace Di2. Extremamente leve e aerodinâmica.",
			ImageURL:    "https://images.unsplash.com/photo-1576435728678-68d0fbf94e91?q=80&w=1348&auto=format&fit=crop",
			CurrentBid:  35000,
			EndDate:     now.Add(-24 * time.Hour), // ended yesterday
			OwnerID:     3, // carla
			Bids:        1,
			BidderIDs:   []int64{2},
			BidHistory: []model.Bid{
				bid(2, "bruno", 35000, 2*24*time.Hour),
			},
		},
		{
			ID:          5,
			Title:       "Tênis de Edição Limitada",
			Description: "Par de tênis de colaboração exclusiva, nunca usado. Item de colecionador com design arrojado e materiais premium. Tamanho 42.",
			ImageURL:    "/imgs/air-jordan-1-low.webp",
			CurrentBid:  850,
			EndDate:     now.Add(3 * 24 * time.Hour),
			OwnerID:     1, // ana
			Bids:        0,
			BidderIDs:   []int64{},
			BidHistory:  []model.Bid{},
		},
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
