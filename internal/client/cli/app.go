package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/client"
	"github.com/dmitrijs2005/credkeeper/internal/client/config"
)

// AuthAPI is the server surface the CLI needs. The real HTTP client
// satisfies it; tests provide a stub.
type AuthAPI interface {
	Register(ctx context.Context, username string, password []byte) (*client.User, error)
	Login(ctx context.Context, username string, password []byte) (string, error)
	Me(ctx context.Context, token string) (*client.User, error)
	Ping(ctx context.Context) error
}

type App struct {
	config   *config.Config
	api      AuthAPI
	token    string
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    client.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to credkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
