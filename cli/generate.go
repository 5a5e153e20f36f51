package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"content_variation_generator/generator"
	"content_variation_generator/presenter"
)

// systemClipboard is swapped out in tests.
var systemClipboard presenter.Clipboard = presenter.SystemClipboard{}

func GenerateCmd() *cobra.Command {
	var (
		form   generator.Selections
		delay  time.Duration
		outDir string
		copyN  int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the four variations from the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("delay") {
				delay = cfg.GenerationDelay
			}
			agent, err := generator.NewAgent(delay)
			if err != nil {
				return err
			}

			sess := generator.NewSession("cli")
			for field, value := range map[string]string{
				generator.FieldBrandName:    form.BrandName,
				generator.FieldPlatform:     form.Platform,
				generator.FieldAudience:     form.Audience,
				generator.FieldLanguage:     form.Language,
				generator.FieldTone:         form.Tone,
				generator.FieldCustomPrompt: form.CustomPrompt,
			} {
				if err := sess.Set(field, value); err != nil {
					return err
				}
			}
			sel, err := sess.Begin()
			if err != nil {
				return fmt.Errorf("%w (use --brand and --platform)", err)
			}

			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, "Generating...")
			batch, err := agent.Generate(cmd.Context(), sel)
			if err != nil {
				return err
			}
			sess.Finish(batch)

			printVariations(cmd, sess.Variations)

			if outDir != "" {
				path := filepath.Join(outDir, presenter.FileName(sess.Form.BrandName))
				if err := os.WriteFile(path, []byte(presenter.ExportText(sess.Variations)), 0o644); err != nil {
					return err
				}
				fmt.Fprintf(errOut, "Downloaded! All variations saved to %s\n", path)
			}
			if copyN != 0 {
				if err := presenter.Copy(systemClipboard, sess.Variations, copyN); err != nil {
					return err
				}
				fmt.Fprintf(errOut, "Copied! Variation %d copied to clipboard.\n", copyN)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.BrandName, "brand", "", "brand name (required)")
	f.StringVar(&form.Platform, "platform", "", "target platform (required)")
	f.StringVar(&form.Audience, "audience", "", "audience")
	f.StringVar(&form.Language, "language", "", "language of the call to action")
	f.StringVar(&form.Tone, "tone", "", "tone of the closing line")
	f.StringVar(&form.CustomPrompt, "context", "", "extra context (kept, not used by the templates)")
	f.DurationVar(&delay, "delay", generator.DefaultDelay, "pending time before the batch is published (default from config)")
	f.StringVar(&outDir, "out", "", "write the combined text file into this directory")
	f.IntVar(&copyN, "copy", 0, "copy variation N (1-4) to the clipboard")
	return cmd
}

func printVariations(cmd *cobra.Command, variations []generator.Variation) {
	heading := color.New(color.FgCyan, color.Bold)
	out := cmd.OutOrStdout()
	for i, v := range variations {
		heading.Fprintf(out, "VARIATION %d: %s\n", i+1, v.Title)
		fmt.Fprintf(out, "%s\n\n", v.Content)
	}
}
