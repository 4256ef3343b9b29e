package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mcpcare/internal/client/client"
	"github.com/dmitrijs2005/mcpcare/internal/client/config"
	"github.com/dmitrijs2005/mcpcare/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) *App {
	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return newApp(c, services.NewAuthService(apiClient), os.Stdin, os.Stdout)
}

func newApp(c *config.Config, as services.AuthService, in io.Reader, out io.Writer) *App {
	return &App{config: c, authService: as, reader: bufio.NewReader(in), out: out}
}

// Run greets the user, probes the server and blocks in the REPL until exit.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to MCP Care CLI (type 'help' for commands)")

	if err := a.authService.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Warning: %s is not reachable: %v\n", a.config.ServerURL, err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedInAs() != ""
}

func (a *App) getStatus() string {
	if email := a.authService.LoggedInAs(); email != "" {
		return "(" + email + ") "
	}
	return ""
}
