package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/geoquiz/internal/api/request"
	"github.com/mcoot/geoquiz/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Remote session commands",
	}

	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionSelectCmd())
	cmd.AddCommand(newSessionGuessCmd())
	cmd.AddCommand(newSessionGiveUpCmd())
	cmd.AddCommand(newSessionProgressCmd())
	cmd.AddCommand(newSessionNamesCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func sessionPath(id string, parts ...string) string {
	path := "/api/v1/sessions/" + id
	if len(parts) > 0 {
		path += "/" + strings.Join(parts, "/")
	}
	return path
}

func newSessionStartCmd() *cobra.Command {
	var req request.StartSessionRequest

	cmd := &cobra.Command{
		Use:   "start [session-id]",
		Short: "Start a new session, or restart an existing one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			path := "/api/v1/sessions"
			if len(args) == 1 {
				path = sessionPath(args[0], "start")
			}
			if err := client.Post(cmd.Context(), path, req, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Lives, "lives", 0, "Number of lives (default 3)")
	cmd.Flags().BoolVar(&req.UnlimitedLives, "unlimited", false, "Play without a lives limit")
	cmd.Flags().Float64Var(&req.TimeLimitMinutes, "time", 0, "Time limit in minutes (0 = none)")
	cmd.Flags().BoolVar(&req.Idle, "idle", false, "Create the session without starting a game")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Get session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Get(cmd.Context(), sessionPath(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <session-id> <entity-id>",
		Short: "Select an entity to guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid entity id %q", args[1])
			}

			var result response.Session

			body := request.SelectRequest{EntityID: &entityID}
			if err := client.Post(cmd.Context(), sessionPath(args[0], "select"), body, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <session-id> <answer...>",
		Short: "Guess the selected entity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GuessResult

			body := request.GuessRequest{Text: strings.Join(args[1:], " ")}
			if err := client.Post(cmd.Context(), sessionPath(args[0], "guess"), body, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionGiveUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "give-up <session-id>",
		Short: "End the game as lost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Post(cmd.Context(), sessionPath(args[0], "give-up"), nil, &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <session-id>",
		Short: "Show guessed/total per region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Progress

			if err := client.Get(cmd.Context(), sessionPath(args[0], "progress"), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names <session-id>",
		Short: "List the countries not yet named",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Names

			if err := client.Get(cmd.Context(), sessionPath(args[0], "names"), &result); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), sessionPath(args[0])); err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).PrintMessage("Session deleted")
			return nil
		},
	}
}
