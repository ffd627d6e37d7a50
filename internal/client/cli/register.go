package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
	"campusfind/internal/client/services"

	"github.com/spf13/cobra"
)

// newRegisterCmd creates an account without entering the UI, for scripted
// setups and first-run bootstrapping.
func newRegisterCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a portal account interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.wire(cmd)
			if err != nil {
				return err
			}

			r := models.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q (want Student, Faculty or Admin)", role)
			}

			reader := bufio.NewReader(os.Stdin)
			out := cmd.OutOrStdout()

			fullname, err := GetSimpleText(reader, "Full name", out)
			if err != nil {
				return err
			}
			username, err := GetSimpleText(reader, "University ID", out)
			if err != nil {
				return err
			}
			email, err := GetSimpleText(reader, "Email", out)
			if err != nil {
				return err
			}
			password, err := GetPassword(out, "Choose a password")
			if err != nil {
				return err
			}

			msg, err := deps.Auth.Register(cmd.Context(), services.RegistrationForm{
				Fullname: fullname,
				Username: username,
				Email:    email,
				Role:     r,
				Password: strings.TrimSpace(string(password)),
			})
			if err != nil {
				return fmt.Errorf("%s", api.ErrorMessage(err, err.Error()))
			}

			fmt.Fprintln(out, msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(models.RoleStudent), "account role (Student, Faculty, Admin)")
	return cmd
}
