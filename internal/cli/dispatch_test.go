package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"tdo/internal/app"
	"tdo/internal/auth"
	"tdo/internal/cli"
	"tdo/internal/commands"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/notify"
	"tdo/internal/service"
	"tdo/internal/testutil"
)

// testFactory assembles an app over the given fakes.
func testFactory(store *testutil.FakeStore, provider *testutil.FakeAuth) cli.AppFactory {
	return func(ctx context.Context, cfg *config.Config, notifier notify.Notifier) (*app.App, error) {
		return app.New(cfg, store, provider, notifier, nil), nil
	}
}

// noServiceFactory simulates a missing config.toml.
func noServiceFactory(ctx context.Context, cfg *config.Config, notifier notify.Notifier) (*app.App, error) {
	return nil, nil
}

// persistSession writes a live session file into dir so the dispatcher's
// session restore signs the user in.
func persistSession(t *testing.T, dir string) {
	t.Helper()
	store := auth.NewFileStore(filepath.Join(dir, config.SessionFile))
	err := store.Save(service.SessionData{
		Token: &oauth2.Token{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			TokenType:    "bearer",
			Expiry:       time.Now().Add(time.Hour),
		},
		User: &service.User{ID: "user-1", Email: "me@example.com"},
	})
	if err != nil {
		t.Fatalf("failed to persist session: %v", err)
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdin, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdin, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--config", t.TempDir()}, &stdin, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version", "--config", t.TempDir()}, &stdin, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "tdo 0.1.0\n" {
		t.Errorf("expected 'tdo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdin, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoService(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, noServiceFactory)

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", t.TempDir()}, &stdin, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("no service configured")) {
		t.Errorf("expected config error, got %q", stderr.String())
	}
}

func TestDispatcher_NotLoggedIn(t *testing.T) {
	store := testutil.NewFakeStore("user-1")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store, testutil.NewFakeAuth()))

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", t.TempDir()}, &stdin, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: tdo login)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
	if store.ListCalls != 0 {
		t.Errorf("expected no backend call, got %d", store.ListCalls)
	}
}

func TestDispatcher_ListWithRestoredSession(t *testing.T) {
	dir := t.TempDir()
	persistSession(t, dir)

	store := testutil.NewFakeStore("user-1")
	store.Seed("Buy milk", nil, false)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store, testutil.NewFakeAuth()))

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--config", dir}, &stdin, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr.String())
	}
	expected := "   1  [ ]  Buy milk\n\n0 of 1 completed\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

func TestDispatcher_QuietSuppressesNotifications(t *testing.T) {
	dir := t.TempDir()
	persistSession(t, dir)

	store := testutil.NewFakeStore("user-1")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(store, testutil.NewFakeAuth()))

	var stdin, stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--config", dir, "--quiet", "Buy", "milk"}, &stdin, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d: %s", exitcode.Success, code, stderr.String())
	}
	if stdout.String() != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout.String())
	}
	if store.Len() != 1 {
		t.Errorf("expected todo stored, got %d", store.Len())
	}
}
