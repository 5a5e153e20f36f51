package cli

import (
	"github.com/spf13/cobra"

	"content_variation_generator/config"
)

func Execute() error {
	return NewRoot().Execute()
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "cvgen",
		Short:         "Generate four ready-to-post marketing copy variations for a brand",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", config.DefaultPath, "path to config.json")
	root.AddCommand(
		ServeCmd(),
		GenerateCmd(),
		OptionsCmd(),
	)
	return root
}

// loadConfig reads --config; the file must exist only when the flag was given explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path, cmd.Flags().Changed("config"))
}
