// dispatchctl replays a scripted packet stream through an sshkit
// dispatch registry.  It exists to exercise and debug handler chain
// configurations offline: describe the chains and the stream in a
// TOML scenario, then inspect the routing decisions and counters.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"sshkit"
	"sshkit/util"
	"sshkit/wire"
)

// version is overridable at link time:
//
//	go build -ldflags "-X main.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dispatchctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("dispatchctl", flag.ContinueOnError)

	var (
		scenarioPath string
		verbosity    int
		jsonMetrics  bool
		strict       bool
		trace        bool
		showVersion  bool
		showHelp     bool
	)
	fs.StringVarP(&scenarioPath, "scenario", "f", "", "Scenario file (TOML)")
	fs.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&jsonMetrics, "json", false, "Print the metrics snapshot as JSON")
	fs.BoolVar(&strict, "strict", false, "Treat unhandled packets as protocol violations")
	fs.BoolVar(&trace, "trace", false, "Emit a structured routing trace on stdout")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("dispatchctl %s\n", version)
		return nil
	}
	if scenarioPath == "" {
		printUsage(fs)
		return fmt.Errorf("no scenario file (use -f)")
	}

	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}
	return replay(sc, verbosity, jsonMetrics, strict, trace)
}

func replay(sc *scenario, verbosity int, jsonMetrics, strict, trace bool) error {
	logger := util.NewLogger(verbosity + 1)
	sess := sshkit.NewSession(logger)

	if trace {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
		cb := &sshkit.Callbacks{Log: sshkit.ZerologCallback(&zl)}
		cb.Init()
		if err := sess.SetCallbacks(cb); err != nil {
			return err
		}
	}

	for _, h := range sc.Handlers {
		entry, err := buildEntry(h)
		if err != nil {
			return err
		}
		if err := sess.Register(entry); err != nil {
			return fmt.Errorf("register %s: %w", h.Name, err)
		}
		logger.Verbose("registered %s: [%d, %d+%d)", h.Name, h.Start, h.Start, h.Count)
	}

	unhandled := 0
	for i, p := range sc.Packets {
		t := wire.Type(p.Type)
		outcome := sess.HandlePacket(t, p.payloadBytes())
		sess.Logf(util.LogNormal, "packet %d: %v -> %v", i, t, outcome)
		if outcome == sshkit.NotUsed {
			unhandled++
		}
	}

	if jsonMetrics {
		fmt.Println(sess.Metrics().JSON())
	}
	if strict && unhandled > 0 {
		return fmt.Errorf("%d packet(s) unhandled", unhandled)
	}
	return nil
}

// buildEntry turns a handler chain config into a registered entry
// whose handlers log their invocation and consume only the listed
// types.
func buildEntry(h handlerConfig) (*sshkit.PacketCallbacks, error) {
	consume := make(map[int]bool, len(h.Consume))
	for _, c := range h.Consume {
		consume[c] = true
	}

	handlers := make([]sshkit.PacketHandler, h.Count)
	for i := range handlers {
		handlers[i] = func(s *sshkit.Session, t wire.Type, _ []byte, user any) sshkit.Outcome {
			name := user.(string)
			if consume[int(t)] {
				s.Logf(util.LogVerbose, "%s consumed %v", name, t)
				return sshkit.Used
			}
			s.Logf(util.LogVerbose, "%s declined %v", name, t)
			return sshkit.NotUsed
		}
	}
	return sshkit.NewPacketCallbacks(wire.Type(h.Start), h.Name, handlers...)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `dispatchctl — replay packet streams through an sshkit dispatcher

Usage:
  dispatchctl -f scenario.toml [options]

A scenario file declares handler chains and a packet stream:

  [[handler]]
  name = "kex"
  start = 20
  count = 2
  consume = [21]

  [[packet]]
  type = 21
  payload = "0a0b"

Options:
%s`, fs.FlagUsages())
}
