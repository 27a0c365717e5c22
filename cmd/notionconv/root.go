package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/notion-sdk/notion-go"
	"github.com/notion-sdk/notion-go/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel   string
	configPath string
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notionconv",
		Short:         "Inspect and convert Notion payloads",
		Long:          `Read block and page objects as returned by the Notion API, print their text, derive update payloads and convert them to CBOR.`,
		Version:       notion.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logData, err := logger.New().FromBuffer(cmd.ErrOrStderr()).WithLevel(opts.logLevel).Console(true).Make()
			if err != nil {
				return err
			}
			opts.log = logData.Logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "minimum log level")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML client configuration, NOTION_* variables take precedence")

	cmd.AddCommand(
		newTextCmd(),
		newUpdateCmd(),
		newCborCmd(),
		newPageTitleCmd(),
		newFetchCmd(opts),
	)
	return cmd
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

// readInput reads the file named by the first argument, or stdin when it is
// absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
