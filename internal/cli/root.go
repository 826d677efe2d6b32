package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/situs/internal/command"
	"github.com/idilsaglam/situs/internal/config"
	"github.com/idilsaglam/situs/internal/store/linestore"
	"github.com/idilsaglam/situs/internal/ui"
)

// Options tune the session from root flags. Empty values fall back to the
// environment config.
type Options struct {
	DataPath string
	Theme    string
	LogLevel string
	Plain    bool
}

// NewRootCmd builds the situs command. now is injectable for tests.
func NewRootCmd(now func() time.Time) *cobra.Command {
	var opt Options
	cmd := &cobra.Command{
		Use:   "situs",
		Short: "Interactive ingredient inventory tracker",
		Long: `situs keeps track of kitchen ingredients, their amounts and expiry dates.
Type "help" inside the session to see every command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opt, now())
		},
	}

	f := cmd.Flags()
	f.StringVar(&opt.DataPath, "data", "", "data file (default from SITUS_DATA_PATH or "+linestore.DefaultPath+")")
	f.StringVar(&opt.Theme, "theme", "", "output theme: classic, neon, mono")
	f.StringVarP(&opt.LogLevel, "loglevel", "l", "", "log level: debug, info, warn, error")
	f.BoolVar(&opt.Plain, "plain", false, "line-oriented prompt instead of the full-screen UI")
	return cmd
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	if err := NewRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Fail(err.Error()))
		return 1
	}
	return 0
}

func run(in io.Reader, out, errOut io.Writer, opt Options, today time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opt.DataPath != "" {
		cfg.DataPath = opt.DataPath
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.LogLevel != "" {
		cfg.LogLevel = opt.LogLevel
	}

	log, err := newLogger(cfg.LogLevel, errOut)
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.Theme)

	store, err := linestore.New(cfg.DataPath, log)
	if err != nil {
		return err
	}
	state := command.NewState(store.Load(), today, cfg.ExpiryThresholdDays, cfg.LowStockThreshold())
	session := NewSession(state, store, log)

	if opt.Plain || !isTTY(in) {
		return RunPlain(in, out, session)
	}
	return RunTUI(session)
}

func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	return log, nil
}

func isTTY(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
