package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mcoot/geoquiz/internal/dependencies/clock"
	"github.com/mcoot/geoquiz/internal/dependencies/random"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/catalog"
	"github.com/mcoot/geoquiz/internal/services/resolver"
	"github.com/mcoot/geoquiz/internal/services/session"
	"github.com/mcoot/geoquiz/internal/web/components"
)

const playHelp = `Commands:
  :pick <id>   select an entity by numeric id
  :next        select the next unguessed entity in shuffled order
  :status      show score, lives and time
  :progress    show guessed/total per region
  :giveup      end the game
  :quit        leave without ending the game
Any other line is a guess for the selected entity.`

// timeWarnings are the remaining-second marks announced during a timed game
var timeWarnings = map[int]bool{60: true, 30: true, 10: true}

func newPlayCmd() *cobra.Command {
	var (
		lives     int
		unlimited bool
		minutes   float64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a quiz in the terminal",
		Long: `Play the country naming quiz against the local catalog.

` + playHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			g := newTerminalGame(cat, clock.NewScheduler(), clock.New(), random.New(), cmd.OutOrStdout())
			return g.run(cmd.InOrStdin(), model.SessionConfig{
				Lives:            lives,
				UnlimitedLives:   unlimited,
				TimeLimitMinutes: minutes,
			})
		},
	}

	cmd.Flags().IntVar(&lives, "lives", model.DefaultLives, "Number of lives")
	cmd.Flags().BoolVar(&unlimited, "unlimited", false, "Play without a lives limit")
	cmd.Flags().Float64Var(&minutes, "time", 0, "Time limit in minutes (0 = none)")

	return cmd
}

// terminalGame drives one local session from line-based input
type terminalGame struct {
	cat   *catalog.Catalog
	sess  *session.Session
	queue []model.EntityID

	mu  sync.Mutex
	out io.Writer

	ended     chan struct{} // Closed when the session reaches won or lost
	endedOnce sync.Once
}

func newTerminalGame(cat *catalog.Catalog, sched clock.Scheduler, clk clock.Clock, rnd random.Random, out io.Writer) *terminalGame {
	g := &terminalGame{
		cat:   cat,
		out:   out,
		ended: make(chan struct{}),
		sess: session.New(cat, resolver.New(cat), session.Options{
			ID:        "local",
			Scheduler: sched,
			Clock:     clk,
		}),
	}

	ids := cat.IDs()
	for _, i := range rnd.Perm(len(ids)) {
		g.queue = append(g.queue, ids[i])
	}

	g.sess.Subscribe(g.onEvent)
	return g
}

func (g *terminalGame) printf(format string, args ...any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, _ = fmt.Fprintf(g.out, format, args...)
}

func (g *terminalGame) run(in io.Reader, cfg model.SessionConfig) error {
	g.sess.Start(cfg)
	defer g.sess.Close()

	snap := g.sess.Snapshot()
	g.printf("Name all %d countries. Type :help for commands.\n", snap.TotalEntities)
	g.printStatus(snap)

	stop := make(chan struct{})
	defer close(stop)
	lines, errc := readLines(in, stop)

	for {
		select {
		case <-g.ended:
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			select {
			case <-g.ended:
				return nil
			default:
			}
			if !g.handle(strings.TrimSpace(line)) {
				return nil
			}
		}
	}
}

// readLines feeds input lines to a channel so the game can stop waiting on
// input once it ends. The scanner error is sent before lines is closed.
func readLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// handle processes one input line; false means stop reading
func (g *terminalGame) handle(line string) bool {
	if line == "" {
		return true
	}

	command, arg, _ := strings.Cut(line, " ")
	switch command {
	case ":quit", ":q":
		return false
	case ":help":
		g.printf("%s\n", playHelp)
	case ":status":
		g.printStatus(g.sess.Snapshot())
	case ":progress":
		for _, p := range g.cat.Progress(g.sess.Snapshot().GuessedSet()) {
			g.printf("%-10s %3d/%-3d %5.1f%%\n", p.Region, p.Guessed, p.Total, p.Percent())
		}
	case ":giveup":
		g.sess.GiveUp()
	case ":next":
		g.next()
	case ":pick":
		id, err := parseEntityID(strings.TrimSpace(arg))
		if err != nil {
			g.printf("%s\n", err)
			return true
		}
		g.pick(id)
	default:
		if strings.HasPrefix(line, ":") {
			g.printf("Unknown command %s. Type :help for commands.\n", command)
			return true
		}
		if result := g.sess.SubmitGuess(line); result.Outcome == model.GuessNoSelection {
			g.printf("Select an entity first (:pick <id> or :next)\n")
		}
	}
	return true
}

func (g *terminalGame) pick(id model.EntityID) {
	g.sess.SelectEntity(id)
	selected := g.sess.Snapshot().SelectedEntityID
	if selected == nil || *selected != id {
		g.printf("Cannot select %d\n", id)
		return
	}
	e, _ := g.cat.Entity(id)
	g.printf("Selected #%d (%s / %s)\n", id, e.Region, e.Subregion)
}

func (g *terminalGame) next() {
	snap := g.sess.Snapshot()
	for _, id := range g.queue {
		if !snap.IsGuessed(id) {
			g.pick(id)
			return
		}
	}
	g.printf("Nothing left to select\n")
}

func (g *terminalGame) printStatus(snap model.SessionSnapshot) {
	lives := "unlimited"
	if !snap.HasUnlimitedLives() {
		lives = fmt.Sprintf("%d/%d", snap.Lives, snap.MaxLives)
	}
	clockText := components.FormatClock(snap.ElapsedSeconds)
	if remaining := snap.RemainingSeconds(); remaining >= 0 {
		clockText = components.FormatClock(remaining) + " left"
	}
	g.printf("Score %d/%d | Lives %s | %s\n", snap.CorrectCount, snap.TotalEntities, lives, clockText)
}

// onEvent runs synchronously inside session calls, and on the timer goroutine
// for ticks, so it only reads the event payload
func (g *terminalGame) onEvent(e model.Event) {
	switch p := e.Payload.(type) {
	case model.CorrectGuessPayload:
		g.printf("Correct! %s (%s) %d/%d\n", g.cat.DisplayName(p.EntityID), p.Region, p.CorrectCount, p.TotalEntities)
	case model.WrongGuessPayload:
		if p.LivesRemaining == model.UnlimitedLives {
			g.printf("Wrong.\n")
		} else {
			g.printf("Wrong. Lives left: %d\n", p.LivesRemaining)
		}
	case model.TimerTickPayload:
		if p.TimeLimitSeconds > 0 && timeWarnings[p.TimeLimitSeconds-p.ElapsedSeconds] {
			g.printf("%s left\n", components.FormatClock(p.TimeLimitSeconds-p.ElapsedSeconds))
		}
	case model.GameEndPayload:
		defer g.endedOnce.Do(func() { close(g.ended) })
		if p.Result == model.GameResultWon {
			g.printf("You won! ")
		} else {
			g.printf("Game over: %s. ", components.ReasonText(p.Reason))
		}
		g.printf("Score %d/%d in %s\n", p.CorrectCount, p.TotalEntities, components.FormatClock(p.ElapsedSeconds))
	}
}
