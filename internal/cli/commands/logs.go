package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"GardenGuru/internal/cli/api"
	"GardenGuru/internal/config"
	"GardenGuru/internal/model"
)

type logsCmd struct{}

func (logsCmd) Name() string        { return "logs" }
func (logsCmd) Description() string { return "Показать дневник роста растения" }
func (logsCmd) Usage() string       { return "logs <gardenItemId>" }

func (logsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, apiURL(cfg, "/api/garden/"+args[0]+"/logs"), loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	var logs []model.GrowthLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(logs) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, l := range logs {
		h := ""
		if l.Height != nil {
			h = fmt.Sprintf("  height=%.1fcm", *l.Height)
		}
		fmt.Fprintf(Out, "- %s  %s%s  %s\n", l.ID, l.Date.Format("2006-01-02 15:04"), h, l.Notes)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(logs))
	return nil
}

type logAddCmd struct{}

func (logAddCmd) Name() string        { return "log-add" }
func (logAddCmd) Description() string { return "Добавить запись дневника (+50 XP)" }
func (logAddCmd) Usage() string       { return "log-add <gardenItemId> [notes] [height-cm]" }

func (logAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	payload := map[string]any{}
	if len(args) >= 2 {
		payload["notes"] = args[1]
	}
	if len(args) == 3 {
		h, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return ErrUsage
		}
		payload["height"] = h
	}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/garden/"+args[0]+"/logs"), payload, loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return apiError(resp, body)
	}
	var out struct {
		Log        model.GrowthLog  `json:"log"`
		GardenItem model.GardenItem `json:"gardenItem"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Logged:")
	fmt.Fprintf(Out, "  id:    %s\n", out.Log.ID)
	fmt.Fprintf(Out, "  xp:    %d\n", out.GardenItem.XP)
	fmt.Fprintf(Out, "  stage: %s\n", out.GardenItem.Stage)
	return nil
}

func init() {
	RegisterCmd(logsCmd{})
	RegisterCmd(logAddCmd{})
}
