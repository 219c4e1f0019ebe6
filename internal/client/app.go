package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-circuit-records/internal/adapter"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `commands:
  login   -u <username> -p <password>   print an access token
  me      -token <token>                show the account of the token
  members -token <token> [-society <society>] [-search <text>]
  version                               show client and server versions`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	a := &App{
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
	a.commands = map[string]command{
		"login":   a.login,
		"me":      a.me,
		"members": a.members,
		"version": a.version,
	}

	return a, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if strings.TrimSpace(*username) == "" || *password == "" {
		return ErrMissingCredentials
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	_, err = fmt.Fprintln(a.out, resp.AccessToken)
	return err
}

func (a *App) me(ctx context.Context, args []string) error {
	fs := newFlagSet("me")
	token := fs.String("token", "", "access token")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := a.useToken(*token); err != nil {
		return err
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("me: %w", err)
	}

	return a.printJSON(user)
}

func (a *App) members(ctx context.Context, args []string) error {
	fs := newFlagSet("members")
	token := fs.String("token", "", "access token")
	society := fs.String("society", "", "restrict to one society")
	search := fs.String("search", "", "match full name or e-mail")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := a.useToken(*token); err != nil {
		return err
	}

	filter := models.MemberFilter{Search: strings.TrimSpace(*search)}
	if *society != "" {
		parsed, err := models.ParseSociety(*society)
		if err != nil {
			return err
		}
		filter.Society = parsed
	}

	members, err := a.adapter.Members(ctx, filter)
	if err != nil {
		return fmt.Errorf("members: %w", err)
	}

	return a.printJSON(members)
}

// version prints the client build version and, when the server answers,
// the server version. An unreachable server is not an error here.
func (a *App) version(ctx context.Context, args []string) error {
	if err := parseFlags(newFlagSet("version"), args); err != nil {
		return err
	}

	clientVersion := a.buildInfo.BuildVersion()
	if clientVersion == "" {
		clientVersion = "N/A"
	}

	serverVersion, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		serverVersion = "unavailable"
	}

	_, err = fmt.Fprintf(a.out, "client: %s\nserver: %s\n", clientVersion, serverVersion)
	return err
}

func (a *App) useToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFlags, fs.Name(), err)
	}
	return nil
}

// IsUsageError reports whether err was caused by a malformed command line
// rather than by the server.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidFlags)
}
