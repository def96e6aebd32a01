// paycheck watches a payment until it settles, from the client's side of
// the HTTP surface: it drives the same poll loop the web client runs
// (fixed interval, attempt ceiling, manual re-check), optionally falling
// back to the Redis mirror when the service is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kasozi/talentpay/internal/pkg/config"
	"github.com/kasozi/talentpay/internal/pkg/database"
	"github.com/kasozi/talentpay/internal/pkg/pollclient"
	"github.com/kasozi/talentpay/services/payments/repository"
)

func main() {
	var (
		baseURL       = flag.String("url", "http://localhost:9980", "payments service base URL")
		transactionID = flag.String("txn", "", "transaction id to watch")
		phone         = flag.String("phone", "", "payer phone for fallback lookups (optional)")
		interval      = flag.Duration("interval", 5*time.Second, "delay between status checks")
		attempts      = flag.Int("attempts", 24, "attempt ceiling")
		useFallback   = flag.Bool("fallback", false, "enable the Redis mirror fallback")
	)
	flag.Parse()

	if *transactionID == "" {
		fmt.Fprintln(os.Stderr, "usage: paycheck -txn TXN_... [-phone 0700000000] [-fallback]")
		os.Exit(2)
	}

	var fallback pollclient.Fallback
	if *useFallback {
		configs := config.InitConfig(config.GetEnv("CONFIG_PATH", "config/payments.env"))
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			log.Fatalf("failed to connect to redis for fallback: %v", err)
		}
		defer redisClient.Close()
		fallback = repository.NewMirrorRepo(redisClient)
	}

	cfg := pollclient.Config{
		BaseURL:        *baseURL,
		Interval:       *interval,
		MaxAttempts:    *attempts,
		RequestTimeout: 10 * time.Second,
	}

	poller := pollclient.New(cfg, fallback, *phone)

	result, err := poller.Watch(context.Background(), *transactionID)
	if err != nil {
		log.Fatalf("watch aborted: %v", err)
	}

	printResult(result)

	// Offer one manual re-check when the loop gave up without an answer.
	if result.State == pollclient.StateTimedOut || result.State == pollclient.StateUnknown {
		fmt.Println("checking one more time...")
		retry, err := poller.CheckAgain(context.Background(), *transactionID)
		if err != nil {
			log.Fatalf("manual check failed: %v", err)
		}
		printResult(retry)
	}

	switch poller.State() {
	case pollclient.StateConfirmed:
		os.Exit(0)
	case pollclient.StateFailed:
		os.Exit(1)
	default:
		os.Exit(3)
	}
}

func printResult(r *pollclient.Result) {
	source := "service"
	if r.FromFallback {
		source = "client-side cache"
	}

	fmt.Printf("state=%s attempts=%d source=%s\n", r.State, r.Attempts, source)
	if r.Transaction != nil {
		fmt.Printf("  transaction=%s status=%s message=%q updated=%s\n",
			r.Transaction.TransactionID,
			r.Transaction.Status,
			r.Transaction.StatusMessage,
			r.Transaction.UpdatedAt.Format(time.RFC3339))
	}
}
