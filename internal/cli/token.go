package cli

import (
	"fmt"

	"crm/config"
	"crm/internal/domain/service"
	"crm/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// tokenService is replaced in tests.
var tokenService = func() (service.TokenService, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	return auth.NewJWTService(cfg)
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Issue an API access token for an operator",
		Long: `Issue a bearer token for the HTTP API, signed with the configured
JWT secret. Requires --tenant and --operator.

Example:
  crmadm token --tenant 0d3a... --operator 91c2... --operator-name "Sato"`,
		Args: cobra.NoArgs,
		RunE: runToken,
	}
}

func runToken(cmd *cobra.Command, _ []string) error {
	actor, err := actorFromFlags(cmd, true)
	if err != nil {
		return err
	}

	svc, err := tokenService()
	if err != nil {
		return err
	}
	token, err := svc.GenerateToken(actor)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	if wantsJSON(cmd) {
		return writeJSON(cmd.OutOrStdout(), map[string]string{"token": token})
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)

	return nil
}
