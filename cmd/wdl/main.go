package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jspall/wordlet/solver"
	"github.com/jspall/wordlet/wordle"
)

// maxBenchTurns is deliberately larger than the real game's six so the
// score distribution isn't chopped off for stats purposes.
const maxBenchTurns = 32

type globalConfig struct {
	dict *wordle.Dictionary
	opts solver.Options
}

type globalFlags struct {
	dictPath  string
	count     int64
	strategy  string
	easy      bool
	noCache   bool
	noCutoff  bool
	noSigmoid bool
	opener    string
	workers   int64
}

func (f globalFlags) config() (globalConfig, error) {
	var cfg globalConfig

	opts := solver.DefaultOptions()
	rankBy, err := solver.ParseStrategy(f.strategy)
	if err != nil {
		return cfg, err
	}
	opts.RankBy = rankBy
	opts.HardMode = !f.easy
	opts.Cache = !f.noCache
	opts.Cutoff = !f.noCutoff
	opts.Sigmoid = !f.noSigmoid
	opts.Workers = int(f.workers)
	if f.opener != "" {
		opts.Opener = f.opener
	}
	cfg.opts = opts

	pairs := wordle.BuiltinPairs()
	if f.dictPath != "" {
		file, err := os.Open(f.dictPath)
		if err != nil {
			return cfg, err
		}
		defer file.Close()
		if pairs, err = wordle.Parse(file); err != nil {
			return cfg, fmt.Errorf("%s: %w", f.dictPath, err)
		}
	}
	cfg.dict, err = buildDictionary(pairs, int(f.count))
	return cfg, err
}

// buildDictionary keeps the count most frequent words when count > 0.
func buildDictionary(pairs []wordle.WordCount, count int) (*wordle.Dictionary, error) {
	if count > 0 && count < len(pairs) {
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].Count > pairs[j].Count
		})
		pairs = pairs[:count]
	}
	return wordle.NewDictionary(pairs)
}

// colorize renders a guess with its feedback the way the game board
// does: green for correct, yellow for misplaced, white for wrong.
func colorize(word string, mask wordle.Pattern) string {
	var b strings.Builder
	for i := 0; i < wordle.WordLen; i++ {
		switch mask[i] {
		case wordle.Correct:
			fmt.Fprintf(&b, "[green]%c", word[i])
		case wordle.Misplaced:
			fmt.Fprintf(&b, "[yellow]%c", word[i])
		default:
			fmt.Fprintf(&b, "[white]%c", word[i])
		}
	}
	b.WriteString("[reset]")
	return colorstring.Color(b.String())
}

// solveCmd replays guess/mask pairs from the command line and prints
// the next best guess plus the words still possible.
func solveCmd(cfg globalConfig, args []string) error {
	s, err := solver.New(cfg.dict, cfg.opts)
	if err != nil {
		return err
	}
	history := make([]wordle.Guess, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		word := args[i]
		if _, ok := cfg.dict.Index(word); !ok {
			return fmt.Errorf("%w: guess %q", wordle.ErrInvalidWord, word)
		}
		mask, err := wordle.ParsePattern(args[i+1])
		if err != nil {
			return err
		}
		history = append(history, wordle.Guess{Word: word, Mask: mask})
	}

	// The solver consumes one history element per call; replay the
	// prefixes to bring it up to date.
	next, err := s.Guess(nil)
	if err != nil {
		return err
	}
	for i := 1; i <= len(history); i++ {
		if next, err = s.Guess(history[:i]); err != nil {
			return err
		}
	}

	fmt.Printf("%s:", next)
	for _, w := range s.Remaining() {
		fmt.Printf(" %s", w)
	}
	fmt.Println()
	return nil
}

// playCmd plays interactively: the solver suggests, the user transcribes
// the board's feedback as five C/M/W symbols. Malformed input is
// re-prompted here and never reaches the solver.
func playCmd(cfg globalConfig) error {
	s, err := solver.New(cfg.dict, cfg.opts)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(os.Stdin)
	var history []wordle.Guess
	for turn := 1; ; turn++ {
		word, err := s.Guess(history)
		if err != nil {
			return err
		}
		fmt.Printf("guess %d: %s (%d possible)\n", turn, word, len(s.Remaining()))
		for {
			fmt.Print("feedback (e.g. wwmcw, or quit): ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "quit" {
				return nil
			}
			mask, err := wordle.ParsePattern(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if mask.AllCorrect() {
				fmt.Printf("solved in %d\n", turn)
				return nil
			}
			fmt.Println(colorize(word, mask))
			history = append(history, wordle.Guess{Word: word, Mask: mask})
			break
		}
	}
}

// benchCmd plays every answer (or the given ones) to completion with
// one shared pattern cache, then prints the guess-count distribution
// and summary metrics.
func benchCmd(cfg globalConfig, answers []string, workers int) error {
	if len(answers) == 0 {
		for i := 0; i < cfg.dict.Len(); i++ {
			answers = append(answers, cfg.dict.Word(i))
		}
	} else {
		seen := mapset.NewSet()
		unique := answers[:0]
		for _, a := range answers {
			if _, ok := cfg.dict.Index(a); !ok {
				return fmt.Errorf("%w: answer %q", wordle.ErrInvalidWord, a)
			}
			if seen.Add(a) {
				unique = append(unique, a)
			}
		}
		answers = unique
	}

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(len(answers)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(answers)))
	}

	var shared solver.Cache
	if cfg.opts.Cache {
		shared = solver.NewSharedCache(cfg.dict)
	}
	games := make([]game, len(answers))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, answer := range answers {
		i, answer := i, answer
		g.Go(func() error {
			s, err := solver.NewWithCache(cfg.dict, cfg.opts, shared)
			if err != nil {
				return err
			}
			turns, err := cfg.dict.Play(answer, s, maxBenchTurns)
			if err != nil && !errors.Is(err, wordle.ErrUnsolved) {
				return err
			}
			games[i] = game{answer: answer, turns: turns, solved: err == nil}
			bar.Add(1) //nolint:errcheck
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printHistogram(games)
	for _, m := range metrics {
		fmt.Println(m.summarize(games))
	}
	return nil
}

// firstCmd prints the best-scored opening words; useful when switching
// corpora to pick a new fixed opener.
func firstCmd(cfg globalConfig, n int) error {
	top, err := solver.Opening(cfg.dict, cfg.opts, n)
	if err != nil {
		return err
	}
	for _, r := range top {
		fmt.Printf("%s %f\n", r.Word, r.Goodness)
	}
	return nil
}

func main() {
	var flags globalFlags
	var topN int64
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "entropy-driven wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dict",
				Usage:       "word-frequency file (word count per line), default is the builtin list",
				Destination: &flags.dictPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"c"},
				Usage:       "keep only the most frequent N words, 0 is all",
				Destination: &flags.count,
			},
			&cli.StringFlag{
				Name:        "strategy",
				Aliases:     []string{"s"},
				Value:       "escore",
				Usage:       "ranking strategy: first, escore, weighted, infoprob, entropy",
				Destination: &flags.strategy,
			},
			&cli.BoolFlag{
				Name:        "easy",
				Usage:       "allow guessing known-wrong words for their information",
				Destination: &flags.easy,
			},
			&cli.BoolFlag{
				Name:        "no-cache",
				Usage:       "disable the pattern cache",
				Destination: &flags.noCache,
			},
			&cli.BoolFlag{
				Name:        "no-cutoff",
				Usage:       "score every candidate instead of the likely prefix",
				Destination: &flags.noCutoff,
			},
			&cli.BoolFlag{
				Name:        "no-sigmoid",
				Usage:       "use raw frequency weights without smoothing",
				Destination: &flags.noSigmoid,
			},
			&cli.StringFlag{
				Name:        "opener",
				Usage:       "fixed first guess",
				Destination: &flags.opener,
			},
			&cli.IntFlag{
				Name:        "workers",
				Aliases:     []string{"w"},
				Usage:       "worker pool size, 0 is GOMAXPROCS",
				Destination: &flags.workers,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "solve [guess mask]... suggest the next guess given pairs of guess and observed C/M/W mask",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess mask", 1)
					}
					cfg, err := flags.config()
					if err != nil {
						return err
					}
					return solveCmd(cfg, cmd.Args().Slice())
				},
			},
			{
				Name:  "play",
				Usage: "play a game interactively against the real board, transcribing its feedback",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := flags.config()
					if err != nil {
						return err
					}
					return playCmd(cfg)
				},
			},
			{
				Name:  "bench",
				Usage: "bench [answer]... simulate games for the given answers, or every dictionary word",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := flags.config()
					if err != nil {
						return err
					}
					return benchCmd(cfg, cmd.Args().Slice(), int(flags.workers))
				},
			},
			{
				Name:  "first",
				Usage: "rank opening guesses by the selected strategy",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       20,
						Usage:       "number of words to print",
						Destination: &topN,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := flags.config()
					if err != nil {
						return err
					}
					return firstCmd(cfg, int(topN))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
