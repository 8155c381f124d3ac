package commands

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/khalilrez/food-log-api/internal/cli/api"
	"github.com/khalilrez/food-log-api/internal/config"
)

type RegisterRequest struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	MaxDailyCalories *int   `json:"max_daily_calories,omitempty"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a user (same username overwrites)" }
func (registerCmd) Usage() string {
	return "register <id> <username> <password> [max_daily_calories]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	req := RegisterRequest{ID: id, Username: args[1], Password: args[2]}
	if len(args) == 4 {
		maxDaily, err := strconv.Atoi(args[3])
		if err != nil {
			return ErrUsage
		}
		req.MaxDailyCalories = &maxDaily
	}
	return Register(ctx, cfg, req)
}

// Register создаёт пользователя и запоминает его логин как текущий.
func Register(ctx context.Context, cfg *config.Config, req RegisterRequest) error {
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/create_user"), req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}
	if err := newSession(cfg).SaveLogin(req.Username); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	fmt.Fprintf(Out, "Registered %s\n", req.Username)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
