package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// The password byte slice is wiped before returning. Any I/O or API error
// is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, userName, password)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s (id %s)", user.Username, user.UserID))
	return nil
}

// Login prompts the user for credentials and exchanges them for a bearer
// token. On success the token is kept in memory for the session.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, userName, password)
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.token = token
	a.userName = userName
	printlnFn("Login successful")
	return nil
}

// Whoami resolves the stored bearer token against the server and prints the
// authenticated identity. An expired or revoked token clears the session.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.api.Me(ctx, a.token)
	if err != nil {
		printlnFn("Token check failed:", err.Error())
		a.token = ""
		a.userName = ""
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (id %s)", user.Username, user.UserID))
	return nil
}

// Status probes server reachability.
func (a *App) Status(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		printlnFn("Server unreachable:", err.Error())
		return err
	}
	printlnFn("Server is up")
	return nil
}

// Logout drops the in-memory token.
func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
