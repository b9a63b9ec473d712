package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ironsheep/egg-symmetry/internal/config"
	"github.com/ironsheep/egg-symmetry/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const longHelp = `Count the configurations of an R x C grid of eggs that look the same after a
horizontal flip, a vertical flip and a half turn, broken down by how many eggs
are placed. The grid is folded into one quadrant, so counting is polynomial in
the grid size instead of exponential.

Configuration is read from $HOME/.egg-symmetry/config.toml, then EGG_SYMMETRY_*
environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  egg-symmetry count 3 5 --info
  egg-symmetry compare 6 6 --a2 bruteforce
  egg-symmetry bench --range 12
  egg-symmetry render 3 5 --on 6 --format svg --out eggs/three-by-five
  egg-symmetry serve
`)

func getVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// app carries configuration and the logger from the root command to the
// subcommands.
type app struct {
	cfg     config.Config
	cfgPath string
	log     logging.Logger
}

func newRootCmd(a *app) *cobra.Command {
	a.cfg = config.DefaultConfig()
	a.log = logging.NewNoopLogger()

	root := &cobra.Command{
		Use:           "egg-symmetry",
		Short:         "Count mirror-symmetric egg layouts on a grid",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s (built %s, commit %s)", getVersion(), runtime.GOOS, runtime.GOARCH, BuildTime, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := config.Load(&a.cfg, a.cfgPath, changed); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.NewZerologAdapter(cmd.ErrOrStderr(), a.cfg.LogLevel)
			if err != nil {
				return err
			}
			a.log = logger
			a.log.Debug("configuration", logging.Any("config", a.cfg))
			return nil
		},
	}

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.egg-symmetry/config.toml)")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error or off")
	pf.StringVar(&a.cfg.Algorithm, "algorithm", a.cfg.Algorithm, "counting algorithm: optimized or bruteforce")
	pf.IntVar(&a.cfg.CellSize, "cell-size", a.cfg.CellSize, "rendered cell edge in pixels")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "render format: png, jpeg or svg")
	pf.StringVar(&a.cfg.Foreground, "foreground", a.cfg.Foreground, "marker colour as hex")
	pf.StringVar(&a.cfg.Background, "background", a.cfg.Background, "background colour as hex")
	pf.StringVar(&a.cfg.OutputDir, "output-dir", a.cfg.OutputDir, "directory for rendered files")

	root.AddCommand(
		newCountCmd(a),
		newCompareCmd(a),
		newBenchCmd(a),
		newVerifyCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
	)
	return root
}

func main() {
	a := &app{}
	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		// Failures before the logger is configured still need to be seen.
		if _, ok := a.log.(*logging.NoopLogger); ok {
			fmt.Fprintln(os.Stderr, "Error:", err)
		} else {
			a.log.Error("egg-symmetry", logging.Err(err))
		}
		os.Exit(1)
	}
}
