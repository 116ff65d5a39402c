package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
)

// getSimpleText and getPassword point at the interactive input helpers and
// are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register creates an account and keeps the returned session token.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, a.api.Register)
}

// Login exchanges credentials for a session token.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, a.api.Login)
}

func (a *App) authenticate(ctx context.Context, call func(context.Context, string, string) (string, error)) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := call(ctx, email, string(password))
	if err != nil {
		return a.fail(err)
	}

	a.api.SetToken(token)
	a.email = common.NormalizeEmail(email)
	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.api.SetToken("")
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	me, err := a.api.Me(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "#%d %s\n", me.ID, me.Email)
	return nil
}
