// Package cli provides the command-line interface of vupipe.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tebeka/atexit"
)

// EnvPrefix prefixes the environment variables that provide flag defaults.
const EnvPrefix = "VUPIPE_"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vupipe",
	Short: "vupipe emulates a vector-unit graphics pipeline.",
	Long: `vupipe emulates a DMA-fed vector-unit graphics pipeline: a packet ` +
		`is moved into the packet parser, a micro-program transforms and ` +
		`lights the vertices, and a software rasterizer draws the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyEnv(cmd, ".env")
	},
}

// applyEnv loads envFile, if present, and uses VUPIPE_* variables as the
// value of every flag not set on the command line.
func applyEnv(cmd *cobra.Command, envFile string) error {
	err := godotenv.Load(envFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	var setErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed {
			return
		}

		v, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}

		if err := cmd.Flags().Set(f.Name, v); err != nil {
			setErr = fmt.Errorf("%s: %w", envName(f.Name), err)
		}
	})

	return setErr
}

func envName(flag string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// Execute adds all child commands to the root command and runs it. Exit
// handlers registered with atexit run before the process ends.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
