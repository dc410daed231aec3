package cli

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shandysiswandi/gonotif/internal/app"
	"github.com/shandysiswandi/gonotif/internal/notification/usecase"
	"github.com/spf13/cobra"
)

type sendFlags struct {
	to         string
	subject    string
	body       string
	templateID string
	timeout    time.Duration
}

var sendOpts sendFlags

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single email through the configured provider",
	Example: `  gonotif send --to user@example.com --subject "Welcome" --body "Hello"
  EMAIL_PROVIDER=log gonotif send --to user@example.com --subject Hi --body Test`,
	RunE: runSend,
}

func init() {
	f := sendCmd.Flags()
	f.StringVar(&sendOpts.to, "to", "", "recipient email address")
	f.StringVar(&sendOpts.subject, "subject", "", "email subject")
	f.StringVar(&sendOpts.body, "body", "", "plain text body")
	f.StringVar(&sendOpts.templateID, "template-id", "", "provider template identifier")
	f.DurationVar(&sendOpts.timeout, "timeout", 30*time.Second, "send deadline")

	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("subject")
	_ = sendCmd.MarkFlagRequired("body")
}

func runSend(cmd *cobra.Command, _ []string) error {
	application := app.New()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		application.Stop(ctx)
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), sendOpts.timeout)
	defer cancel()

	result, err := application.SendEmail(ctx, usecase.SendEmailInput{
		ToEmail:    sendOpts.to,
		Subject:    sendOpts.subject,
		Body:       sendOpts.body,
		TemplateID: sendOpts.templateID,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(map[string]string{
		"status":      result.Status.String(),
		"provider_id": result.ProviderID,
	})
}
