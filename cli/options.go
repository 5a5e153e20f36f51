package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"content_variation_generator/generator"
)

func OptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the platforms, audiences, languages and tones",
		RunE: func(cmd *cobra.Command, args []string) error {
			bold := color.New(color.Bold)
			out := cmd.OutOrStdout()
			for _, group := range []struct {
				name   string
				values []string
			}{
				{"Platforms", generator.Platforms},
				{"Audiences", generator.Audiences},
				{"Languages", generator.Languages},
				{"Tones", generator.Tones},
			} {
				bold.Fprintf(out, "%s: ", group.name)
				fmt.Fprintln(out, strings.Join(group.values, ", "))
			}
			return nil
		},
	}
}
