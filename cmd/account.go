package main

import (
	"context"
	"errors"

	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// AccountSignup registers an account and signs the CLI session in as it.
func (r *Runner) AccountSignup(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	users, err := r.userStore()
	if err != nil {
		return err
	}
	session, err := r.session()
	if err != nil {
		return err
	}

	user, err := users.Register(cmd.String("name"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}
	session.Login(user)

	r.writePlain("✓ Signed up as %s <%s>\n", user.Name, user.Email)
	return nil
}

// AccountLogin signs the CLI session in.
func (r *Runner) AccountLogin(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	users, err := r.userStore()
	if err != nil {
		return err
	}
	session, err := r.session()
	if err != nil {
		return err
	}

	user, err := users.Authenticate(cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}
	session.Login(user)

	r.writePlain("✓ Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// AccountLogout clears the CLI session.
func (r *Runner) AccountLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	session, err := r.session()
	if err != nil {
		return err
	}

	if !session.IsAuthenticated() {
		r.writePlain("Not signed in\n")
		return nil
	}

	session.Logout()
	r.writePlain("✓ Signed out\n")
	return nil
}

// AccountWhoami prints the signed-in account.
func (r *Runner) AccountWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	user, err := r.currentUser()
	if errors.Is(err, shared.ErrNotAuthenticated) && !cmd.Bool("json") {
		r.writePlain("Not signed in\n")
		return nil
	}
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlain("%s <%s>\n", user.Name, user.Email)
	r.writePlain("ID: %s\n", user.ID)
	return nil
}
