package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khalilrez/food-log-api/internal/config"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "FoodLog CLI") {
		t.Fatalf("global help expected")
	}
	for _, name := range []string{"register", "login", "logout", "status", "food-add", "foods", "log", "entries", "unlog"} {
		if _, ok := Get(name); !ok {
			t.Fatalf("command %q not registered", name)
		}
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	var code int
	out = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"help", "log"}) })
	if code != 0 || !strings.Contains(out, "log <entry_id>") {
		t.Fatalf("expected usage of log, got %d %q", code, out)
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	_ = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"no-such"}) })
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_RunPaths(t *testing.T) {
	// зарегистрируем временную команду
	cmdOK := fakeCmd{name: "x", usage: "x", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return nil }}
	RegisterCmd(cmdOK)
	if code := Dispatch(context.Background(), &config.Config{}, []string{"x"}); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}

	cmdUsage := fakeCmd{name: "u", usage: "u <arg>", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error {
		return fmt.Errorf("wrapped: %w", ErrUsage)
	}}
	RegisterCmd(cmdUsage)
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"u"}) })
	if code != 2 || !strings.Contains(out, "Usage: u <arg>") {
		t.Fatalf("usage text expected, got %d %q", code, out)
	}

	cmdErr := fakeCmd{name: "e", usage: "e", desc: "", run: func(_ context.Context, _ *config.Config, _ []string) error { return fmt.Errorf("boom") }}
	RegisterCmd(cmdErr)
	out = withStdoutCapture(t, func() { code = Dispatch(context.Background(), &config.Config{}, []string{"e"}) })
	if code != 1 || !strings.Contains(out, "e error: boom") {
		t.Fatalf("error line expected, got: %s", out)
	}
}

func TestStatus_Run(t *testing.T) {
	dir := withTempConfig(t)
	cfg := &config.Config{TokenFile: filepath.Join(dir, "tok")}

	// нет токена
	out := withStdoutCapture(t, func() {
		if err := (statusCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("status without token: %v", err)
		}
	})
	if !strings.Contains(out, "not logged in") {
		t.Fatalf("unexpected output: %q", out)
	}

	sign := func(exp time.Time) string {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte("whatever"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return raw
	}

	// валидный токен, подпись клиент не проверяет
	_ = os.WriteFile(cfg.TokenFile, []byte(sign(time.Now().Add(time.Hour))), 0o600)
	out = withStdoutCapture(t, func() { _ = (statusCmd{}).Run(context.Background(), cfg, nil) })
	if !strings.Contains(out, "User: alice") || !strings.Contains(out, "valid until") {
		t.Fatalf("unexpected output: %q", out)
	}

	// просроченный
	_ = os.WriteFile(cfg.TokenFile, []byte(sign(time.Now().Add(-time.Hour))), 0o600)
	out = withStdoutCapture(t, func() { _ = (statusCmd{}).Run(context.Background(), cfg, nil) })
	if !strings.Contains(out, "expired at") {
		t.Fatalf("unexpected output: %q", out)
	}

	// мусор в файле
	_ = os.WriteFile(cfg.TokenFile, []byte("not-a-jwt"), 0o600)
	if err := (statusCmd{}).Run(context.Background(), cfg, nil); err == nil {
		t.Fatalf("status must fail on malformed token")
	}

	// ErrUsage при лишних аргументах
	if err := (statusCmd{}).Run(context.Background(), cfg, []string{"extra"}); !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestDispatcher_HelpGroupsAuthCommands(t *testing.T) {
	out := withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })

	authAt := strings.Index(out, "Commands that need login")
	if authAt < 0 {
		t.Fatalf("auth group expected in %q", out)
	}
	open, auth := out[:authAt], out[authAt:]
	for _, name := range []string{"log <entry_id>", "unlog <entry_id>"} {
		if strings.Contains(open, name) || !strings.Contains(auth, name) {
			t.Fatalf("%q must be listed only under the login group:\n%s", name, out)
		}
	}
	for _, name := range []string{"register ", "login ", "foods", "entries <user_id>"} {
		if !strings.Contains(open, name) {
			t.Fatalf("%q must be listed among open commands:\n%s", name, out)
		}
	}

	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "unlog"}) })
	if !strings.Contains(out, "Needs a stored access token") {
		t.Fatalf("auth note expected for unlog, got %q", out)
	}
	out = withStdoutCapture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "foods"}) })
	if strings.Contains(out, "Needs a stored access token") {
		t.Fatalf("foods is open, got %q", out)
	}
}

func TestDispatcher_NotLoggedInHint(t *testing.T) {
	dir := withTempConfig(t)
	cfg := &config.Config{TokenFile: filepath.Join(dir, "missing"), ServerURL: "http://127.0.0.1:1"}

	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, []string{"unlog", "1"}) })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out, "unlog error: not logged in") || !strings.Contains(out, "Hint: foodlog login <username> <password>") {
		t.Fatalf("login hint expected, got %q", out)
	}
}
