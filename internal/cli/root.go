// Package cli implements the leavectl command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/internal/config"
	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

// app bundles the shared client-side state every command needs. It is built
// once per invocation in the root's PersistentPreRunE.
type app struct {
	cfg          *config.Config
	log          zerolog.Logger
	client       *leavemarker.Client
	session      *leavemarker.SessionStore
	entitlements *leavemarker.EntitlementStore
	gate         *leavemarker.FeatureGate
	jsonOut      bool
}

// Root returns the leavectl root command.
func Root(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "leavectl",
		Short:         "Command-line client for the leave management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if v, err := cmd.Flags().GetString("base-url"); err == nil && v != "" {
				a.cfg.API.BaseURL = v
			}
			if v, err := cmd.Flags().GetBool("json"); err == nil {
				a.jsonOut = v
			}
			debug, _ := cmd.Flags().GetBool("debug")
			return a.connect(debug)
		},
	}
	root.PersistentFlags().String("base-url", "", "Backend API base URL (overrides config)")
	root.PersistentFlags().Bool("json", false, "Emit JSON instead of tables")
	root.PersistentFlags().Bool("debug", false, "Log request details")

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		signupCmd(a),
		whoamiCmd(a),
		menuCmd(a),
		attendanceCmd(a),
		punchCmd(a),
		leaveCmd(a),
		balanceCmd(a),
		employeesCmd(a),
		policiesCmd(a),
		holidaysCmd(a),
		reportsCmd(a),
		plansCmd(a),
		subscribeCmd(a),
		subscriptionCmd(a),
		paymentsCmd(a),
		contactCmd(a),
	)
	return root
}

// connect builds the API client and restores any persisted session.
func (a *app) connect(debug bool) error {
	mode, err := a.cfg.API.CredentialsMode()
	if err != nil {
		return err
	}
	clientCfg := leavemarker.Config{
		BaseURL: a.cfg.API.BaseURL,
		Mode:    mode,
		Timeout: a.cfg.API.Timeout,
		Logger:  a.log,
		Debug:   debug,
	}
	if mode == leavemarker.CredentialsBearer {
		clientCfg.TokenStore = &leavemarker.FileTokenStore{Path: a.cfg.API.CredentialsPath}
	}
	client, err := leavemarker.New(clientCfg)
	if err != nil {
		return err
	}
	a.client = client
	a.session = leavemarker.NewSessionStore(client)
	a.entitlements = leavemarker.NewEntitlementStore(client, a.session)
	a.gate = leavemarker.NewFeatureGate(a.entitlements)
	return nil
}

// restore settles the session from the credentials file and fails the
// command when nobody is logged in.
func (a *app) restore(cmd *cobra.Command) error {
	if a.session.VerifySession(cmd.Context()) != leavemarker.StateAuthenticated {
		return fmt.Errorf("not logged in, run: leavectl login")
	}
	if token := a.client.Token(); token != "" {
		if exp, err := leavemarker.TokenExpiry(token); err == nil && !exp.IsZero() && exp.Before(time.Now()) {
			return fmt.Errorf("session expired at %s, run: leavectl login", exp.Format(time.RFC3339))
		}
	}
	return nil
}

// requireFeature maps a gate decision onto a command error. restore settles
// the snapshot synchronously, so a pending decision cannot reach this point.
func (a *app) requireFeature(f leavemarker.Feature) error {
	if a.gate.Check(f) == leavemarker.GateAllowed {
		return nil
	}
	return fmt.Errorf("feature %q requires an upgraded plan, see %s", f, a.gate.UpgradeRoute())
}
