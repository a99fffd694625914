package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"GardenGuru/internal/cli/api"
	"GardenGuru/internal/config"
)

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Создать аккаунт и сохранить auth cookie" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/user/register"), credentials{Login: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered and logged in")
		return nil
	case http.StatusConflict:
		return errors.New("login already in use")
	default:
		return apiError(resp, body)
	}
}

func init() { RegisterCmd(registerCmd{}) }
