package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yargizeka/internal/app"
	"yargizeka/internal/bridge"
)

var invokeJSON bool

var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [key=value ...] | invoke --json '<request>'",
	Short: "Dispatch a native command without opening a window",
	Args:  invokeArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		registry, err := app.NewRegistry(log)
		if err != nil {
			return err
		}

		if invokeJSON {
			fmt.Fprintln(cmd.OutOrStdout(), string(registry.Dispatch([]byte(args[0]))))
			return nil
		}

		callArgs, err := parseArgs(args[1:])
		if err != nil {
			return err
		}

		result, err := registry.Invoke(args[0], callArgs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	invokeCmd.Flags().BoolVar(&invokeJSON, "json", false, "Treat the argument as a JSON request and print a JSON response")
}

// invokeArgs requires a command name, or exactly one request in --json mode.
func invokeArgs(cmd *cobra.Command, args []string) error {
	if invokeJSON {
		return cobra.ExactArgs(1)(cmd, args)
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

// parseArgs turns key=value pairs into bridge arguments. Values are kept verbatim.
func parseArgs(pairs []string) (bridge.Args, error) {
	out := make(bridge.Args, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}
