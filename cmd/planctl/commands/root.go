package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/degreeplan-backend/internal/app"
	"github.com/yungbote/degreeplan-backend/internal/platform/logger"
)

var (
	logMode string
	appCtx  *app.App
)

// Execute runs planctl against os.Args.
func Execute() error {
	defer closeApp()
	return newRootCmd(os.Stdout).Execute()
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Catalog and degree plan operations",
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeApp()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logMode, "log-mode", "production", "logger mode (development|production|test)")

	root.AddCommand(seedCmd(), resolveCmd(), generateCmd())
	return root
}

// openApp builds the app for one command. Only generate needs the model.
func openApp(ctx context.Context, withGenerator bool) (*app.App, error) {
	log, err := logger.New(logMode)
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, app.Options{WithGenerator: withGenerator, Logger: log})
	if err != nil {
		return nil, err
	}
	appCtx = a
	return a, nil
}

func closeApp() {
	if appCtx != nil {
		appCtx.Close()
		appCtx = nil
	}
}
