package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"GardenGuru/internal/cli/api"
	"GardenGuru/internal/config"
	"GardenGuru/internal/model"
)

type plantsCmd struct{}

func (plantsCmd) Name() string        { return "plants" }
func (plantsCmd) Description() string { return "Показать каталог растений" }
func (plantsCmd) Usage() string       { return "plants [search]" }

func (plantsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	path := "/api/plants"
	if len(args) == 1 {
		path += "?search=" + url.QueryEscape(args[0])
	}
	resp, body, err := api.GetJSON(ctx, apiURL(cfg, path), loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	var plants []model.Plant
	if err := json.Unmarshal(body, &plants); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(plants) == 0 {
		fmt.Fprintln(Out, "Каталог пуст")
		return nil
	}
	for _, p := range plants {
		fmt.Fprintf(Out, "- %s  %s (%s)  water: %s\n", p.ID, p.Name, p.ScientificName, p.WaterFrequency)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(plants))
	return nil
}

func init() { RegisterCmd(plantsCmd{}) }
