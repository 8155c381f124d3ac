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

type foodAddCmd struct{}

func (foodAddCmd) Name() string        { return "food-add" }
func (foodAddCmd) Description() string { return "Add or replace a catalog food" }
func (foodAddCmd) Usage() string {
	return "food-add <id> <name> <serving_size> <kcal> <protein> [fibre]"
}

func (foodAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 5 || len(args) > 6 {
		return ErrUsage
	}
	f, err := parseFood(args)
	if err != nil {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "/food"), f, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return serverError(resp, body)
	}
	fmt.Fprintf(Out, "Food %d saved: %s\n", f.ID, f.Name)
	return nil
}

func parseFood(args []string) (model.Food, error) {
	var (
		f   = model.Food{Name: args[1], ServingSize: args[2]}
		err error
	)
	if f.ID, err = strconv.ParseInt(args[0], 10, 64); err != nil {
		return f, err
	}
	if f.KcalPerServing, err = strconv.Atoi(args[3]); err != nil {
		return f, err
	}
	if f.ProteinGrams, err = strconv.ParseFloat(args[4], 64); err != nil {
		return f, err
	}
	if len(args) == 6 {
		if f.FibreGrams, err = strconv.ParseFloat(args[5], 64); err != nil {
			return f, err
		}
	}
	return f, nil
}

type foodsCmd struct{}

func (foodsCmd) Name() string        { return "foods" }
func (foodsCmd) Description() string { return "List the food catalog" }
func (foodsCmd) Usage() string       { return "foods" }

func (foodsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "/food/all"), "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp, body)
	}
	var list []model.Food
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Catalog is empty")
		return nil
	}
	for _, f := range list {
		fmt.Fprintf(Out, "- %d  %s  (%s)  %d kcal  protein=%sg fibre=%sg\n",
			f.ID, f.Name, f.ServingSize, f.KcalPerServing, num(f.ProteinGrams), num(f.FibreGrams))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func init() {
	RegisterCmd(foodAddCmd{})
	RegisterCmd(foodsCmd{})
}
