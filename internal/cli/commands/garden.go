package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"GardenGuru/internal/cli/api"
	"GardenGuru/internal/config"
	"GardenGuru/internal/model"
)

func printGardenItems(items []model.GardenItem) {
	if len(items) == 0 {
		fmt.Fprintln(Out, "Пусто")
		return
	}
	for _, it := range items {
		name := it.Nickname
		if name == "" && it.Plant != nil {
			name = it.Plant.Name
		}
		fmt.Fprintf(Out, "- %s  %s  stage=%s  xp=%d\n", it.ID, name, it.Stage, it.XP)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
}

func fetchGardenItems(ctx context.Context, cfg *config.Config, path string) ([]model.GardenItem, error) {
	resp, body, err := api.GetJSON(ctx, apiURL(cfg, path), loadToken(cfg))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, body)
	}
	var items []model.GardenItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return items, nil
}

type gardenCmd struct{}

func (gardenCmd) Name() string        { return "garden" }
func (gardenCmd) Description() string { return "Показать растения в саду" }
func (gardenCmd) Usage() string       { return "garden" }

func (gardenCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	items, err := fetchGardenItems(ctx, cfg, "/api/garden")
	if err != nil {
		return err
	}
	printGardenItems(items)
	return nil
}

type binCmd struct{}

func (binCmd) Name() string        { return "bin" }
func (binCmd) Description() string { return "Показать корзину" }
func (binCmd) Usage() string       { return "bin" }

func (binCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	items, err := fetchGardenItems(ctx, cfg, "/api/garden/bin")
	if err != nil {
		return err
	}
	printGardenItems(items)
	return nil
}

func init() {
	RegisterCmd(gardenCmd{})
	RegisterCmd(binCmd{})
}
