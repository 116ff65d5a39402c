package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/animalcatalog/internal/client/api"
	"github.com/dmitrijs2005/animalcatalog/internal/client/config"
)

// apiClient is the subset of *api.Client the commands use.
type apiClient interface {
	SetToken(token string)
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*api.Me, error)
	ListAnimals(ctx context.Context) ([]api.Animal, error)
	GetAnimal(ctx context.Context, id int64) (*api.Animal, error)
	CreateAnimal(ctx context.Context, a api.NewAnimal) (*api.Animal, error)
	DeleteAnimal(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, path, contentType string) (string, error)
}

type App struct {
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) *App {
	return &App{
		api:    api.New(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the animal catalog (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.email)
}

func (a *App) fail(err error) error {
	fmt.Fprintf(a.out, "Error: %s\n", err)
	return err
}
