package cmd

import (
	"os"

	"kitinstall/internal/config"
	"kitinstall/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	debug bool
	force bool
)

var rootCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the kit instruction and standards files into a workspace",
	Long: `Fetches the kit's instruction and standards files from the remote
repository and writes them under the target directory. Existing files are
only replaced after confirmation, unless --force is given.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		var err error
		cfg, err = config.Load()
		return err
	},
	RunE: runInstall,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files without prompting")
}
