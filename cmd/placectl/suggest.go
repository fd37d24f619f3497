package main

import (
	"strings"

	"github.com/spf13/cobra"
)

const cliSessionKey = "placectl"

func suggestCommand(a *app) *cobra.Command {
	var resolveFirst bool

	cmd := &cobra.Command{
		Use:   "suggest <text>",
		Short: "List autocomplete suggestions for a search text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.placeResolver()
			if err != nil {
				return err
			}

			suggestions := resolver.GetSuggestions(cmd.Context(), cliSessionKey, strings.Join(args, " "))

			if resolveFirst && len(suggestions) > 0 {
				location, err := resolver.ResolveSuggestion(cmd.Context(), suggestions[0])
				if err != nil {
					return err
				}

				return printJSON(cmd, toPlaceOutput(location))
			}

			out := make([]placeOutput, 0, len(suggestions))
			for i := range suggestions {
				out = append(out, toPlaceOutput(&suggestions[i]))
			}

			return printJSON(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&resolveFirst, "resolve", false, "Resolve the first suggestion to a full place")

	return cmd
}
