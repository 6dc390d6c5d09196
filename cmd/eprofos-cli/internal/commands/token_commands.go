package commands

import (
	"fmt"
	"time"

	v1 "github.com/eprofos/eprofos-2-sub017/internal/api/rest/v1"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/identity"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// TokenCommandHandler issues bearer tokens for the REST API.
type TokenCommandHandler struct {
	logger logger.Logger
}

// NewTokenCommandHandler initializes a TokenCommandHandler with a console logger.
func NewTokenCommandHandler() (*TokenCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &TokenCommandHandler{logger: loggerInstance}, nil
}

// IssueTokenCmd signs a token with the configured secret and prints it
func (commandHandler *TokenCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	subject, err := flags.GetString("subject")
	if err != nil {
		return err
	}
	name, err := flags.GetString("name")
	if err != nil {
		return err
	}
	roles, err := flags.GetStringSlice("role")
	if err != nil {
		return err
	}
	ttl, err := flags.GetDuration("ttl")
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		return fmt.Errorf("at least one --role is required")
	}
	if subject == "" {
		subject = uuid.NewString()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	token, err := v1.SignToken(cfg.Auth, &identity.Principal{ID: subject, Name: name, Roles: roles}, ttl)
	if err != nil {
		return err
	}

	commandHandler.logger.Info(fmt.Sprintf("Issued token for %s valid for %s", subject, ttl))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}

// InitTokenCommands registers the token command.
func InitTokenCommands(rootCmd *cobra.Command) error {
	handler, err := NewTokenCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create token command handler: %w", err)
	}

	var tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the REST API",
		RunE:  handler.IssueTokenCmd,
	}
	addConfigFlag(tokenCmd)
	tokenCmd.Flags().String("subject", "", "User id placed in the token subject (random when empty)")
	tokenCmd.Flags().String("name", "", "Display name recorded in audit entries")
	tokenCmd.Flags().StringSlice("role", nil, "Role to grant, e.g. ROLE_ADMIN (repeatable)")
	tokenCmd.Flags().Duration("ttl", 8*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)

	return nil
}
