// Package cli implements the interactive accountd command-line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/okozlov/accountd/internal/client/api"
	"github.com/okozlov/accountd/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader

	token string
	user  *api.User
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to accountd CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
