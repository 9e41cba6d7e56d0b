package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gamelanding/gamelanding/internal/client"
	"github.com/gamelanding/gamelanding/internal/db/models"
)

func init() { //nolint: gochecknoinits
	remoteCmd.PersistentFlags().StringVar(&remoteURL, "url", "", "Server url, defaults to Webserver.URL of the config")
	remoteCmd.PersistentFlags().StringVar(&remoteUser, "username", "", "Admin username, required for changes")
	remoteCmd.PersistentFlags().StringVar(&remotePassword, "password", "", "Admin password")

	remoteSettingsCmd.Flags().StringVar(&settingsPatch, "patch", "", `JSON settings patch, e.g. '{"siteTitle":"Bell"}'`)
	remoteGamesCmd.Flags().BoolVar(&onlyPublished, "published", false, "List published games only")
	remoteButtonsCmd.Flags().BoolVar(&onlyVisible, "visible", false, "List visible buttons only")

	remoteGamesCmd.AddCommand(remoteGameDuplicateCmd, remoteGameDeleteCmd)
	remoteButtonsCmd.AddCommand(remoteButtonDeleteCmd)
	remoteCmd.AddCommand(remoteSettingsCmd, remoteGamesCmd, remoteButtonsCmd, remoteUploadCmd)
	rootCmd.AddCommand(remoteCmd)
}

var (
	remoteURL      string
	remoteUser     string
	remotePassword string
	settingsPatch  string
	onlyPublished  bool
	onlyVisible    bool

	errNoCredentials = errors.New("--username and --password are required for this command")

	remoteCmd = &cobra.Command{
		Use:   "remote",
		Short: "Read and change content of a running server",
	}

	remoteSettingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Print the site settings, or change them with --patch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := remoteClient(cmd, settingsPatch != "")
			if err != nil {
				return err
			}

			if settingsPatch == "" {
				s, err := c.Settings(cmd.Context())
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), s)
			}

			var patch models.SettingsPatch
			if err = json.Unmarshal([]byte(settingsPatch), &patch); err != nil {
				return errors.Wrap(err, "invalid --patch")
			}

			s, err := c.UpdateSettings(cmd.Context(), &patch)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), s)
		},
	}

	remoteGamesCmd = &cobra.Command{
		Use:   "games",
		Short: "List games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := remoteClient(cmd, false)
			if err != nil {
				return err
			}

			games, err := c.Games(cmd.Context(), onlyPublished)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), games)
		},
	}

	remoteGameDuplicateCmd = &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := remoteClient(cmd, true)
			if err != nil {
				return err
			}

			g, err := c.DuplicateGame(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), g)
		},
	}

	remoteGameDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := remoteClient(cmd, true)
			if err != nil {
				return err
			}

			return c.DeleteGame(cmd.Context(), id)
		},
	}

	remoteButtonsCmd = &cobra.Command{
		Use:   "buttons",
		Short: "List call to action buttons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := remoteClient(cmd, false)
			if err != nil {
				return err
			}

			buttons, err := c.Buttons(cmd.Context(), onlyVisible)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), buttons)
		},
	}

	remoteButtonDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a button",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := remoteClient(cmd, true)
			if err != nil {
				return err
			}

			return c.DeleteButton(cmd.Context(), id)
		},
	}

	remoteUploadCmd = &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file and print its public url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := remoteClient(cmd, true)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to open upload")
			}
			defer f.Close()

			url, err := c.Upload(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)

			return err
		},
	}
)

// remoteClient builds a client printing toasts to stderr, logged in when
// admin is set.
func remoteClient(cmd *cobra.Command, admin bool) (*client.Client, error) {
	url := remoteURL
	if url == "" {
		c, err := loadConfig()
		if err != nil {
			return nil, err
		}

		url = c.Webserver.URL
	}

	errOut := cmd.ErrOrStderr()

	c, err := client.New(url, client.WithNotifier(client.NotifierFunc(func(t client.Toast) {
		printToast(errOut, t)
	})))
	if err != nil {
		return nil, err
	}

	if !admin {
		return c, nil
	}

	if remoteUser == "" || remotePassword == "" {
		return nil, errNoCredentials
	}

	if err = c.Login(cmd.Context(), remoteUser, remotePassword); err != nil {
		return nil, err
	}

	return c, nil
}

func printToast(w io.Writer, t client.Toast) {
	prefix := "ok"
	if t.Destructive {
		prefix = "error"
	}

	if t.Description == "" {
		_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, t.Title)

		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s: %s\n", prefix, t.Title, t.Description)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid id %q", s)
	}

	return id, nil
}
