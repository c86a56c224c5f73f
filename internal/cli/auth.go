package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"qrforge/internal/common"
	"qrforge/internal/notify"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// notifyErr reports a failed operation. The severity is always error; the
// message comes from the error itself.
func (a *App) notifyErr(title string, err error) {
	a.notifier.Notify(notify.Error(title, err.Error()))
}

// Register prompts for a username, a password and its confirmation, and
// creates a new account. A successful registration does not log the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if _, err := a.auth.Register(ctx, username, string(password), string(confirm)); err != nil {
		a.notifyErr("Registration Failed", err)
		return err
	}

	a.notifier.Notify(notify.Success("Registration Successful", "You can now log in."))
	return nil
}

// Login prompts for credentials, authenticates and persists the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.sessions.Login(ctx, username, string(password))
	if err != nil {
		a.notifyErr("Login Failed", err)
		return err
	}

	a.session = session
	a.notifier.Notify(notify.Success("Login Successful", fmt.Sprintf("Welcome back, %s!", session.Username)))
	return nil
}

// Logout clears the persisted session and the in-memory one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		a.notifyErr("Logout Failed", err)
		return err
	}
	a.session = nil
	a.notifier.Notify(notify.Info("Logged Out", "See you next time!"))
	return nil
}

// Rename changes the current account's username after re-verifying the
// password. Ownership of saved codes follows the account.
func (a *App) Rename(ctx context.Context) error {
	if a.session == nil {
		err := errors.New("you must be logged in to rename your account")
		a.notifyErr("Rename Failed", err)
		return err
	}

	newUsername, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Confirm your password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.sessions.RenameCurrent(ctx, a.session, newUsername, string(password))
	if err != nil {
		a.notifyErr("Rename Failed", err)
		return err
	}

	a.session = session
	a.notifier.Notify(notify.Success("Username Updated", fmt.Sprintf("You are now %s.", session.Username)))
	return nil
}
