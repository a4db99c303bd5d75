// apps/go-cli/main.go
//
// Entry point for the `wordle` binary.
// Commands:
//   - play (default): line-oriented console game on stdin/stdout.
//   - tui:            full-screen terminal game.
//   - serve:          JSON HTTP API.
//   - check:          print the feedback for one secret/guess pair.
//   - words stats|import: inspect the dictionary or load it into the SQLite word store.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/tui"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wordle")
		os.Exit(1)
	}
}

// rootOpts are the persistent flags shared by every command.
type rootOpts struct {
	configPath  string
	policy      string
	maxAttempts int
	daily       bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	play := newPlayCmd(opts)

	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the hidden word in a limited number of attempts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: play.RunE,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.policy, "policy", "", "duplicate letter policy: containment|budget")
	root.PersistentFlags().IntVar(&opts.maxAttempts, "max-attempts", 0, "number of guesses allowed")
	root.PersistentFlags().BoolVar(&opts.daily, "daily", false, "use today's daily word instead of a random one")
	root.Flags().AddFlagSet(play.Flags())

	root.AddCommand(play)
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newWordsCmd(opts))
	return root
}

// load resolves config, applies flag overrides and configures logging.
func (o *rootOpts) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.policy != "" {
		cfg.Policy = o.policy
	}
	if o.maxAttempts != 0 {
		cfg.MaxAttempts = o.maxAttempts
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	// Interactive commands keep stdout for the board; logs go to stderr in
	// human form. serve keeps zerolog's JSON lines.
	if cmd.Name() != "serve" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

func (o *rootOpts) dictionary(ctx context.Context) (*words.Dictionary, error) {
	d, err := words.Load(ctx, words.LoadOptions{
		AnswersFile: o.cfg.AnswersFile,
		AllowedFile: o.cfg.AllowedFile,
		DBPath:      o.cfg.WordsDB,
		WordLength:  o.cfg.WordLength,
	})
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	return d, nil
}

// newSession loads the dictionary, picks the secret and builds a session.
func (o *rootOpts) newSession(ctx context.Context) (*game.Session, error) {
	d, err := o.dictionary(ctx)
	if err != nil {
		return nil, err
	}
	var chooser words.Chooser = words.RandomChooser{}
	if o.daily {
		chooser = daily.Chooser{Salt: o.cfg.DailySalt}
	}
	secret, err := chooser.Choose(d.Answers())
	if err != nil {
		return nil, err
	}
	s, err := game.NewSession(secret, o.cfg.MaxAttempts, d, game.WithPolicy(o.cfg.DuplicatePolicy()))
	if err != nil {
		return nil, err
	}
	a, g := d.Stats()
	log.Debug().Str("game", s.ID()).Int("answers", a).Int("allowed", g).Bool("daily", o.daily).Msg("new game")
	return s, nil
}

func newPlayCmd(opts *rootOpts) *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the console, one guess per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}
			var r console.Renderer = console.PlainRenderer{}
			if color {
				r = console.StyledRenderer{}
			}
			_, err = console.Run(s, console.NewLineSource(cmd.InOrStdin()), cmd.OutOrStdout(), r)
			return err
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "draw coloured tiles instead of G/Y/_ rows")
	return cmd
}

func newTUICmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Play in a full-screen terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.newSession(cmd.Context())
			if err != nil {
				return err
			}
			// The TUI owns the terminal; stray log lines would corrupt it.
			log.Logger = log.Output(io.Discard)
			_, err = tui.Run(s)
			return err
		},
	}
}

func newServeCmd(opts *rootOpts) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON game API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := opts.dictionary(ctx)
			if err != nil {
				return err
			}
			if port == "" {
				port = opts.cfg.Port
			}
			srv := httpserver.New(store.NewMemoryStore(), d, opts.cfg)
			log.Info().Str("port", port).Str("policy", opts.cfg.Policy).Msg("starting wordle server")
			if err := srv.Start(ctx, ":"+port); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default from PORT)")
	return cmd
}

func newCheckCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "check <secret> <guess>",
		Short: "Print the feedback row for a guess against a secret",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, guess := game.Normalize(args[0]), game.Normalize(args[1])
			if secret == "" || len(secret) != len(guess) {
				return fmt.Errorf("%s and %s: %w", secret, guess, game.ErrInvalidGuessLength)
			}
			fb := game.ClassifyWith(opts.cfg.DuplicatePolicy(), secret, guess)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", guess, fb)
			return nil
		},
	}
}

func newWordsCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{Use: "words", Short: "Word list commands"}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show how many answers and allowed guesses are loaded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			a, g := d.Stats()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "length: %d\nanswers: %d\nallowed: %d\n", d.WordLength(), a, g)
			return nil
		},
	})

	var dbPath string
	imp := &cobra.Command{
		Use:   "import --db <path>",
		Short: "Copy the configured word lists into a SQLite word store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			// Read from files or embedded lists, never from the target DB itself.
			opts.cfg.WordsDB = ""
			d, err := opts.dictionary(cmd.Context())
			if err != nil {
				return err
			}
			st, err := words.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Import(cmd.Context(), d); err != nil {
				return err
			}
			a, g := d.Stats()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d answers, %d allowed into %s\n", a, g, dbPath)
			return nil
		},
	}
	imp.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	cmd.AddCommand(imp)
	return cmd
}
