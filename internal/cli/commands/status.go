package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khalilrez/food-log-api/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show stored login and token expiry" }
func (statusCmd) Usage() string       { return "status" }

// Run читает claims без проверки подписи: секрет есть только у сервера.
func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	store := newSession(cfg)
	if login, err := store.LoadLogin(); err == nil {
		fmt.Fprintln(Out, "Last login:", login)
	}
	raw, err := store.Load()
	if err != nil {
		fmt.Fprintln(Out, "Status: not logged in")
		return nil
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return fmt.Errorf("stored token is malformed: %w", err)
	}
	fmt.Fprintln(Out, "User:", claims.Subject)
	if claims.ExpiresAt == nil {
		fmt.Fprintln(Out, "Status: token has no expiry")
		return nil
	}
	exp := claims.ExpiresAt.Time
	if time.Now().After(exp) {
		fmt.Fprintf(Out, "Status: expired at %s\n", exp.Format(time.RFC3339))
		return nil
	}
	fmt.Fprintf(Out, "Status: valid until %s\n", exp.Format(time.RFC3339))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
