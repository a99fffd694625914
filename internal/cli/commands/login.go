package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"GardenGuru/internal/cli/api"
	"GardenGuru/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Войти и сохранить auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.PostJSON(ctx, apiURL(cfg, "/api/user/login"), credentials{Login: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, tokenStore(cfg)); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	case http.StatusUnauthorized:
		return errors.New("invalid login or password")
	default:
		return apiError(resp, body)
	}
}

func init() { RegisterCmd(loginCmd{}) }
