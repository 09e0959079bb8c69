// Manual end-to-end exercise of the FiveStar client against a real (or
// locally stubbed) API. Configure via environment or a .env file:
//
//	FIVESTAR_CLIENT_ID=abc123 FIVESTAR_BASE_URL=http://localhost:8080 go run ./cmd/fivestar-demo
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/ryanw3b3r/fivestar-sdk-go/config"
	"github.com/ryanw3b3r/fivestar-sdk-go/logger"
	"github.com/ryanw3b3r/fivestar-sdk-go/pkg/fivestar"
)

func main() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	logger.InitLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := fivestar.NewClient(cfg.ClientID,
		fivestar.WithBaseURL(cfg.BaseURL),
		fivestar.WithTimeout(cfg.Timeout),
		fivestar.WithDeviceInfo(fivestar.DeviceInfo{
			Platform:    cfg.Platform,
			AppVersion:  cfg.AppVersion,
			DeviceModel: cfg.DeviceModel,
			OSVersion:   cfg.OSVersion,
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	fmt.Printf("Public feedback page: %s\n", client.PublicURL(""))
	fmt.Printf("Public feedback page (fr): %s\n\n", client.PublicURL("fr"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	types, err := client.ListResponseTypes(ctx)
	if err != nil {
		log.Fatalf("ListResponseTypes: %v", err)
	}
	fmt.Printf("Response types (%d):\n", len(types))
	for _, rt := range types {
		fmt.Printf("  - %s (%s)\n", rt.Name, rt.Slug)
	}

	generated, err := client.GenerateCustomerID(ctx)
	if err != nil {
		log.Fatalf("GenerateCustomerID: %v", err)
	}
	fmt.Printf("\nGenerated customer ID %s (expires %s, device %s)\n",
		generated.CustomerID, generated.ExpiresAt, generated.DeviceID)

	registered, err := client.RegisterCustomer(ctx, generated.CustomerID, &fivestar.RegisterCustomerOptions{
		Email: "demo@example.com",
		Name:  "Demo User",
	})
	if err != nil {
		log.Fatalf("RegisterCustomer: %v", err)
	}
	fmt.Printf("Registered: success=%v", registered.Success)
	if registered.Customer != nil {
		fmt.Printf(", server record %s", registered.Customer.ID)
	}
	fmt.Println()

	verified, err := client.VerifyCustomer(ctx, generated.CustomerID)
	if err != nil {
		log.Fatalf("VerifyCustomer: %v", err)
	}
	fmt.Printf("Verified: valid=%v message=%q\n", verified.Valid, verified.Message)

	if len(types) > 0 {
		submitted, err := client.SubmitResponse(ctx, fivestar.SubmitResponseOptions{
			CustomerID:  generated.CustomerID,
			Title:       "Demo feedback",
			Description: "Submitted by the fivestar-demo command.",
			TypeID:      types[0].ID,
			Email:       "demo@example.com",
			Name:        "Demo User",
		})
		if err != nil {
			log.Fatalf("SubmitResponse: %v", err)
		}
		fmt.Printf("Submitted response %s (success=%v)\n", submitted.ResponseID, submitted.Success)
	}
}
