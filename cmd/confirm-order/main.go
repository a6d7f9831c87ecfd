package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hatynka/storefront/internal/pkg/logger"
	"github.com/hatynka/storefront/services/payments/poller"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	exitFailed   = 1
	exitTimedOut = 2
)

// loadConfig binds flags and STOREFRONT_* environment variables
func loadConfig(args []string) (*viper.Viper, error) {
	flags := pflag.NewFlagSet("confirm-order", pflag.ContinueOnError)
	flags.String("return-url", "", "URL the gateway redirected the customer to")
	flags.String("order-id", "", "gateway order reference, overrides the return url")
	flags.String("email", "", "customer email, overrides the return url")
	flags.String("api-url", "http://localhost:8080", "payments service base URL")
	flags.String("site-url", "http://localhost:3000", "storefront base URL used for the order page")
	flags.Duration("interval", poller.DefaultInterval, "delay between confirmation attempts")
	flags.Duration("timeout", poller.DefaultTimeout, "give up after this long")
	flags.Duration("request-timeout", 10*time.Second, "timeout for a single confirm-order call")
	flags.String("log-level", "info", "log level")
	flags.Bool("lookup", false, "print the stored transaction once instead of polling")
	flags.String("api-key", "", "support API key, required by --lookup")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func returnParams(v *viper.Viper) (poller.ReturnParams, error) {
	var params poller.ReturnParams
	if raw := v.GetString("return-url"); raw != "" {
		parsed, err := poller.ParseReturnURL(raw)
		if err != nil {
			return params, err
		}
		params = parsed
	}
	if id := v.GetString("order-id"); id != "" {
		params.OrderID = id
	}
	if email := v.GetString("email"); email != "" {
		params.Email = email
	}
	return params, nil
}

// lookupTransaction prints the transaction stored for the order reference
func lookupTransaction(ctx context.Context, v *viper.Viper, orderID string, w io.Writer) error {
	if orderID == "" {
		return poller.ErrMissingOrderID
	}
	if v.GetString("api-key") == "" {
		return errors.New("--api-key is required for --lookup")
	}

	client := poller.NewConfirmClient(v.GetString("api-url"), v.GetDuration("request-timeout")).
		WithAPIKey(v.GetString("api-key"))
	txn, err := client.GetTransaction(ctx, orderID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(txn)
}

func main() {
	v, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:   v.GetString("log-level"),
		Service: "confirm-order",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	params, err := returnParams(v)
	if err != nil {
		logger.Error("Invalid return url", logger.Err(err))
		os.Exit(exitFailed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if v.GetBool("lookup") {
		if err := lookupTransaction(ctx, v, params.OrderID, os.Stdout); err != nil {
			logger.Error("Transaction lookup failed",
				logger.String("gateway_order_id", params.OrderID),
				logger.Err(err))
			stop()
			_ = zapLogger.Close()
			os.Exit(exitFailed)
		}
		return
	}

	p := poller.New(poller.Config{
		SiteURL:  v.GetString("site-url"),
		Interval: v.GetDuration("interval"),
		Timeout:  v.GetDuration("timeout"),
	}, poller.NewConfirmClient(v.GetString("api-url"), v.GetDuration("request-timeout")), params)

	logger.Info("Waiting for order confirmation",
		logger.String("gateway_order_id", params.OrderID),
		logger.String("api_url", v.GetString("api-url")))

	result, err := p.Run(ctx)
	if err != nil {
		logger.Error("Order was not confirmed",
			logger.String("state", string(p.State())),
			logger.Err(err))
		stop()
		_ = zapLogger.Close()
		if errors.Is(err, poller.ErrTimedOut) {
			os.Exit(exitTimedOut)
		}
		os.Exit(exitFailed)
	}

	fmt.Println(result.RedirectURL)
}
