package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/davidroman0O/arazzo/decode"
	"github.com/davidroman0O/arazzo/encode"
	"github.com/davidroman0O/arazzo/model"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Create the root command
	rootCmd := &cobra.Command{
		Use:   "arazzo",
		Short: "Arazzo workflow description tooling",
		Long:  "Load, validate, convert and inspect Arazzo workflow descriptions in JSON or YAML",
	}

	// Create the validate command
	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse an Arazzo document and report whether it is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadFile(args[0])
			if err != nil {
				logger.Error().Err(err).Str("file", args[0]).Msg("document is invalid")
				return err
			}

			steps := 0
			for _, w := range desc.Workflows {
				steps += len(w.Steps)
			}
			logger.Info().
				Str("file", args[0]).
				Str("arazzo", desc.Arazzo).
				Int("sources", len(desc.SourceDescriptions)).
				Int("workflows", len(desc.Workflows)).
				Int("steps", steps).
				Msg("document is valid")
			return nil
		},
	}

	// Create the convert command
	toFlag := ""
	outFlag := ""
	convertCmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an Arazzo document between JSON and YAML",
		Long:  "Parse an Arazzo document and write it back out canonically, in the requested format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := loadFile(args[0])
			if err != nil {
				return err
			}

			format := toFlag
			if format == "" {
				// default to the opposite of the input format
				if isYAMLPath(args[0]) {
					format = "json"
				} else {
					format = "yaml"
				}
			}

			var data []byte
			switch format {
			case "json":
				data, err = encode.ToJSON(desc)
			case "yaml":
				data, err = encode.ToYAML(desc)
			default:
				return fmt.Errorf("unknown output format %q (expected json or yaml)", format)
			}
			if err != nil {
				return err
			}

			if outFlag == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(outFlag, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFlag, err)
			}
			logger.Info().Str("file", outFlag).Str("format", format).Msg("document written")
			return nil
		},
	}
	convertCmd.Flags().StringVar(&toFlag, "to", "", "Output format: json or yaml (default: the opposite of the input)")
	convertCmd.Flags().StringVar(&outFlag, "out", "", "Output file (default: stdout)")

	// Create the schema command
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the Arazzo document model",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(model.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render schema: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(schemaCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadFile parses an Arazzo document from disk, choosing the parser by file
// extension (.yaml/.yml parse as YAML, everything else as JSON).
func loadFile(path string) (*model.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if isYAMLPath(path) {
		return decode.ParseYAML(data)
	}
	return decode.ParseJSON(data)
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
