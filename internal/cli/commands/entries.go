package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/khalilrez/food-log-api/internal/cli/api"
	"github.com/khalilrez/food-log-api/internal/config"
	"github.com/khalilrez/food-log-api/internal/model"
)

// entryUser — снимок пользователя в теле записи, без пароля.
type entryUser struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	MaxDailyCalories int    `json:"max_daily_calories"`
}

type entryRequest struct {
	ID             int64      `json:"id"`
	User           entryUser  `json:"user"`
	Food           model.Food `json:"food"`
	NumberServings float64    `json:"number_servings"`
}

type entryResponse struct {
	ID             int64      `json:"id"`
	User           entryUser  `json:"user"`
	Food           model.Food `json:"food"`
	DateAdded      string     `json:"date_added"`
	NumberServings float64    `json:"number_servings"`
	TotalCalories  float64    `json:"total_calories"`
}

type logCmd struct{}

func (logCmd) Name() string        { return "log" }
func (logCmd) Description() string { return "Log servings of a catalog food" }
func (logCmd) Usage() string {
	return "log <entry_id> <user_id> <username> <max_daily> <food_id> <servings>"
}

func (logCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 6 {
		return ErrUsage
	}
	var (
		req    = entryRequest{User: entryUser{Username: args[2]}}
		foodID int64
		err    error
	)
	if req.ID, err = strconv.ParseInt(args[0], 10, 64); err != nil {
		return ErrUsage
	}
	if req.User.ID, err = strconv.ParseInt(args[1], 10, 64); err != nil {
		return ErrUsage
	}
	if req.User.MaxDailyCalories, err = strconv.Atoi(args[3]); err != nil {
		return ErrUsage
	}
	if foodID, err = strconv.ParseInt(args[4], 10, 64); err != nil {
		return ErrUsage
	}
	if req.NumberServings, err = strconv.ParseFloat(args[5], 64); err != nil {
		return ErrUsage
	}

	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	// снимок продукта берём из каталога на момент записи
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/food/"+strconv.FormatInt(foodID, 10)), "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	if err := json.Unmarshal(body, &req.Food); err != nil {
		return fmt.Errorf("decode food: %w", err)
	}

	resp, body, err = api.PostJSON(ctx, endpoint(cfg, "/"), req, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}
	var created entryResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode entry: %w", err)
	}
	fmt.Fprintf(Out, "Logged entry %d: %s x %s = %s kcal\n",
		created.ID, num(created.NumberServings), created.Food.Name, num(created.TotalCalories))
	return nil
}

func (logCmd) RequiresAuth() bool { return true }

type entriesCmd struct{}

func (entriesCmd) Name() string        { return "entries" }
func (entriesCmd) Description() string { return "List food entries of a user" }
func (entriesCmd) Usage() string       { return "entries <user_id>" }

func (entriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/users/"+args[0]), "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	var list []entryResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No entries")
		return nil
	}
	var total float64
	for _, e := range list {
		total += e.TotalCalories
		fmt.Fprintf(Out, "- %d  %s  %s x %s  %s kcal  %s\n",
			e.ID, e.Food.Name, num(e.NumberServings), e.Food.ServingSize, num(e.TotalCalories), e.DateAdded)
	}
	fmt.Fprintf(Out, "Total: %s kcal in %d entries\n", num(total), len(list))
	return nil
}

type unlogCmd struct{}

func (unlogCmd) Name() string        { return "unlog" }
func (unlogCmd) Description() string { return "Delete a food entry" }
func (unlogCmd) Usage() string       { return "unlog <entry_id>" }

func (unlogCmd) RequiresAuth() bool { return true }

func (unlogCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return ErrUsage
	}
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodDelete, endpoint(cfg, "/"+args[0]), nil, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	fmt.Fprintf(Out, "Entry %s deleted\n", args[0])
	return nil
}

func init() {
	RegisterCmd(logCmd{})
	RegisterCmd(entriesCmd{})
	RegisterCmd(unlogCmd{})
}
