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

type remindersCmd struct{}

func (remindersCmd) Name() string        { return "reminders" }
func (remindersCmd) Description() string { return "Показать напоминания по возрастанию даты" }
func (remindersCmd) Usage() string       { return "reminders" }

func (remindersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, apiURL(cfg, "/api/reminders"), loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	var rems []model.Reminder
	if err := json.Unmarshal(body, &rems); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(rems) == 0 {
		fmt.Fprintln(Out, "Нет напоминаний")
		return nil
	}
	for _, rem := range rems {
		mark := " "
		if rem.Completed {
			mark = "x"
		}
		target := rem.GardenItemID
		if rem.GardenItem != nil {
			if rem.GardenItem.Nickname != "" {
				target = rem.GardenItem.Nickname
			} else if rem.GardenItem.Plant != nil {
				target = rem.GardenItem.Plant.Name
			}
		}
		fmt.Fprintf(Out, "- [%s] %s  %s  %s  (%s)\n", mark, rem.Date.Format("2006-01-02"), rem.Type, target, rem.ID)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(rems))
	return nil
}

type reminderAddCmd struct{}

func (reminderAddCmd) Name() string { return "reminder-add" }
func (reminderAddCmd) Description() string {
	return "Создать напоминание; plant:<id> сажает растение в сад"
}
func (reminderAddCmd) Usage() string {
	return "reminder-add <type> <YYYY-MM-DD> <gardenItemId|plant:<plantId>>"
}

func (reminderAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	payload := map[string]string{"type": args[0], "date": args[1]}
	const plantPrefix = "plant:"
	if len(args[2]) > len(plantPrefix) && args[2][:len(plantPrefix)] == plantPrefix {
		payload["plantId"] = args[2][len(plantPrefix):]
	} else {
		payload["gardenItemId"] = args[2]
	}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/reminders"), payload, loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return apiError(resp, body)
	}
	var rem model.Reminder
	if err := json.Unmarshal(body, &rem); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", rem.ID)
	fmt.Fprintf(Out, "  item: %s\n", rem.GardenItemID)
	return nil
}

type reminderDoneCmd struct{}

func (reminderDoneCmd) Name() string        { return "reminder-done" }
func (reminderDoneCmd) Description() string { return "Переключить флаг выполнения напоминания" }
func (reminderDoneCmd) Usage() string       { return "reminder-done <reminderId>" }

func (reminderDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.PutJSON(ctx, apiURL(cfg, "/api/reminders/"+args[0]), struct{}{}, loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	var rem model.Reminder
	if err := json.Unmarshal(body, &rem); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if rem.Completed {
		fmt.Fprintln(Out, "Marked as done")
	} else {
		fmt.Fprintln(Out, "Marked as pending")
	}
	return nil
}

type reminderRmCmd struct{}

func (reminderRmCmd) Name() string        { return "reminder-rm" }
func (reminderRmCmd) Description() string { return "Удалить напоминание" }
func (reminderRmCmd) Usage() string       { return "reminder-rm <reminderId>" }

func (reminderRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.DeleteJSON(ctx, apiURL(cfg, "/api/reminders/"+args[0]), loadToken(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

func init() {
	RegisterCmd(remindersCmd{})
	RegisterCmd(reminderAddCmd{})
	RegisterCmd(reminderDoneCmd{})
	RegisterCmd(reminderRmCmd{})
}
