package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docbatch/internal"
	"github.com/rios0rios0/docbatch/internal/infrastructure/controllers"
)

func buildRootCommand(runController *controllers.RunController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "docbatch [path]",
		Short: "Phased commit batcher for documentation repositories",
		Long: `Split a large uncommitted change set in a documentation repository
into a fixed, ordered sequence of reviewable commits.

Each phase stages only the files that exist and have uncommitted
modifications, then creates one commit per phase with a prewritten
message. Anything left over is swept into a final catch-all commit
after interactive confirmation.

Usage modes:
  docbatch .              Run the plan against the current repository
  docbatch /path/to/repo  Run the plan against a specific repository
  docbatch plan           Preview the plan without committing
  docbatch status         Show working-tree status and recent commits`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			return runController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be committed without making changes")
	cmd.PersistentFlags().BoolP("yes", "y", false,
		"Answer the catch-all confirmation without prompting")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	runController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if rc, ok := ctrl.(*controllers.RunController); ok {
			rc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	runController := injectRunController()
	cobraRoot := buildRootCommand(runController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'docbatch': %s", err)
	}
}
