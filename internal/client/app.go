package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/reznik99/cloud-storage-client/internal/config"
	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/internal/service"
	"github.com/reznik99/cloud-storage-client/internal/workers"
)

// App drives the interactive command loop over the client services.
type App struct {
	services   *service.ClientServices
	workersCfg config.ClientWorkers
	log        *logger.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewApp wires the command loop to the supplied services. Input and output
// default to stdin/stdout.
func NewApp(services *service.ClientServices, workersCfg config.ClientWorkers, log *logger.Logger) (Client, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services:   services,
		workersCfg: workersCfg,
		log:        log,
		in:         bufio.NewScanner(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run starts the command loop and blocks until the user exits or input is
// closed. The index refresh worker runs only while a session is active.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.services.IndexJob.Stop()

	fmt.Fprintln(a.out, `Type "help" for the list of commands.`)

	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return a.in.Err()
		}

		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "exit" || cmd == "quit" {
			return nil
		}

		if err := a.dispatch(ctx, cmd, args); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
		return nil
	case "signup":
		return a.cmdSignup(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "relogin":
		return a.cmdRelogin(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "list", "ls":
		return a.cmdList(ctx)
	case "upload":
		return a.cmdUpload(ctx, args)
	case "download":
		return a.cmdDownload(ctx, args)
	case "delete", "rm":
		return a.cmdDelete(ctx, args)
	case "share":
		return a.cmdShare(ctx, args)
	case "open":
		return a.cmdOpen(ctx, args)
	default:
		return fmt.Errorf("unknown command %q, try \"help\"", cmd)
	}
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  signup <email>            create an account
  login <email>             authenticate
  relogin                   re-enter the password for the last account
  logout                    lock the session
  list                      list files
  upload <path> [name]      encrypt and upload a file
  download <name> <path>    download and decrypt a file
  delete <name>             remove a file
  share <name>              create a share link (copied to clipboard)
  open <link> <path>        download a shared file via its link
  exit                      quit
`)
}

func (a *App) cmdSignup(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: signup <email>")
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Signup(ctx, args[0], password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "account created")
	a.startIndexJob(ctx)
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <email>")
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Login(ctx, args[0], password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged in")
	if err = a.services.FileService.RefreshIndex(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial index refresh failed")
	}
	a.startIndexJob(ctx)
	return nil
}

func (a *App) cmdRelogin(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("usage: relogin")
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Reauthenticate(ctx, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "logged in")
	a.startIndexJob(ctx)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	a.services.IndexJob.Stop()
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "logged out")
	return nil
}

func (a *App) cmdList(ctx context.Context) error {
	files, err := a.services.FileService.List(ctx)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "no files")
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "%-40s %10d bytes  %s\n", f.Name, f.Size, f.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: upload <path> [name]")
	}

	path := args[0]
	name := filepath.Base(path)
	if len(args) == 2 {
		name = args[1]
	}

	plaintext, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	file, err := a.services.FileService.Upload(ctx, name, plaintext)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "uploaded %s (%d bytes)\n", file.Name, file.Size)
	return nil
}

func (a *App) cmdDownload(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: download <name> <path>")
	}

	plaintext, err := a.services.FileService.Download(ctx, args[0])
	if err != nil {
		return err
	}

	if err = os.WriteFile(args[1], plaintext, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", args[1], err)
	}

	fmt.Fprintf(a.out, "downloaded %s (%d bytes)\n", args[0], len(plaintext))
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <name>")
	}

	if err := a.services.FileService.Delete(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", args[0])
	return nil
}

func (a *App) cmdShare(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: share <name>")
	}

	link, err := a.services.FileService.CreateShareLink(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, link)
	if err = clipboard.WriteAll(link); err != nil {
		a.log.Warn().Err(err).Msg("could not copy share link to clipboard")
		return nil
	}
	fmt.Fprintln(a.out, "(copied to clipboard)")
	return nil
}

func (a *App) cmdOpen(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: open <link> <path>")
	}

	plaintext, err := a.services.FileService.OpenShareLink(ctx, args[0])
	if err != nil {
		return err
	}

	if err = os.WriteFile(args[1], plaintext, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", args[1], err)
	}

	fmt.Fprintf(a.out, "saved shared file to %s (%d bytes)\n", args[1], len(plaintext))
	return nil
}

func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.out, "password: ")
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}

	password := a.in.Text()
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}

// startIndexJob launches the session's background workers. Currently the
// index refresh job is the only one, but additions slot into the aggregate.
func (a *App) startIndexJob(ctx context.Context) {
	workers.NewWorkers(workers.WorkerFunc(func() {
		a.services.IndexJob.Start(ctx, a.workersCfg.RefreshInterval)
	})).Run()
}
