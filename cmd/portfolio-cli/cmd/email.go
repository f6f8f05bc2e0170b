package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/email"
	"github.com/fikanova/portfolio/internal/logging"
	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Inspect the email pipeline",
}

var emailTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a test message through the configured sender",
	Long: `Sends a short test message to the configured contact recipient using
whichever sender EMAIL_PROVIDER selects. Use this to verify API keys and
domain verification before going live.`,
	Run: emailTestHandler,
}

func emailTestHandler(cmd *cobra.Command, args []string) {
	logging.New()
	cfg := config.New()

	sender, err := email.NewEmailService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to initialize email service: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg := domain.Email{
		To:      cfg.ContactRecipient,
		Subject: "Portfolio email pipeline test",
		HTML:    "<p>This is a test message from portfolio-cli. If you are reading it, the email pipeline works.</p>",
	}

	if err := sender.Send(ctx, msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Send failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Test message sent to %s via provider %q.\n", cfg.ContactRecipient, cfg.EmailProvider)
}

func init() {
	emailCmd.AddCommand(emailTestCmd)
	rootCmd.AddCommand(emailCmd)
}
