package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/nucleusforce/config"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. Values
// are normally injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	fs         afero.Fs
	logOut     io.Writer
	configPath string
	verbose    bool
}

// Execute runs the nucforce CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(afero.NewOsFs(), os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Artifacts go to fs and log lines to logOut.
func newRootCmd(fs afero.Fs, logOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), fs: fs, logOut: logOut}

	root := &cobra.Command{
		Use:           "nucforce",
		Short:         "nucforce estimates the mechanical load on a cell nucleus",
		Long:          `nucforce reads a flat-colored cell segmentation, propagates force from the cell boundary (or hand-marked origins) toward the nucleus, and reports the load and net force vector on the nucleus.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if a.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(a.logOut, level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("nucforce %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file (default ./nucforce.{yaml,toml,json} if present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringP("out", "o", "output", "output directory")
	pf.StringP("method", "m", "mindist", "propagation method: mindist or layer")
	_ = a.v.BindPFlag("output_dir", pf.Lookup("out"))
	_ = a.v.BindPFlag("method", pf.Lookup("method"))

	root.AddCommand(newBoundaryCmd(a))
	root.AddCommand(newMarkedCmd(a))
	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newInspectCmd(a))

	return root
}
