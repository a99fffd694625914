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

type gardenAddCmd struct{}

func (gardenAddCmd) Name() string        { return "garden-add" }
func (gardenAddCmd) Description() string { return "Посадить растение из каталога в сад" }
func (gardenAddCmd) Usage() string       { return "garden-add <plantId> [nickname]" }

func (gardenAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	payload := map[string]string{"plantId": args[0]}
	if len(args) == 2 {
		payload["nickname"] = args[1]
	}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/garden"), payload, loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return apiError(resp, body)
	}
	var it model.GardenItem
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Planted:")
	fmt.Fprintf(Out, "  id:    %s\n", it.ID)
	fmt.Fprintf(Out, "  stage: %s\n", it.Stage)
	if it.Nickname != "" {
		fmt.Fprintf(Out, "  name:  %s\n", it.Nickname)
	}
	return nil
}

type gardenRmCmd struct{}

func (gardenRmCmd) Name() string        { return "garden-rm" }
func (gardenRmCmd) Description() string { return "Убрать растение в корзину" }
func (gardenRmCmd) Usage() string       { return "garden-rm <gardenItemId>" }

func (gardenRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.DeleteJSON(ctx, apiURL(cfg, "/api/garden/"+args[0]), loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	fmt.Fprintln(Out, "Moved to recycle bin")
	return nil
}

type restoreCmd struct{}

func (restoreCmd) Name() string        { return "restore" }
func (restoreCmd) Description() string { return "Вернуть растение из корзины" }
func (restoreCmd) Usage() string       { return "restore <gardenItemId>" }

func (restoreCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.PutJSON(ctx, apiURL(cfg, "/api/garden/"+args[0]+"/restore"), struct{}{}, loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	fmt.Fprintln(Out, "Restored")
	return nil
}

func init() {
	RegisterCmd(gardenAddCmd{})
	RegisterCmd(gardenRmCmd{})
	RegisterCmd(restoreCmd{})
}
