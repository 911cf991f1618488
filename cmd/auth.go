package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// AuthLogin signs in and caches the session locally.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Info("signing in", "username", username)

	session, err := r.backend.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return r.writePlain("✓ Signed in as %s\n", session.Username)
}

// AuthRegister creates an account and signs in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	username := cmd.String("username")
	password := cmd.String("password")

	r.logger.Info("creating account", "username", username)

	session, err := r.backend.Register(ctx, username, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return r.writePlain("✓ Account created. Signed in as %s\n", session.Username)
}

// AuthLogout ends the backend session and clears the local cache.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.session.Current() == nil {
		return r.writePlain("Already signed out\n")
	}

	if err := r.backend.Logout(ctx); err != nil {
		// The local cache is cleared regardless; just note the failure.
		r.logger.Warn("backend logout failed", "error", err)
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthStatus shows the cached session state.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	session := r.session.Current()
	if session == nil {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in as %s (user %d)\n", session.Username, session.UserID)
	r.writePlain("Session cache: %s\n", r.session.Path())
	return nil
}
