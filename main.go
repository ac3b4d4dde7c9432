package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"goldie/gusher"
	"goldie/searcher"
	"goldie/strategy"
)

const demoLayout = `
$ Demo Flats
$ ab:2 .:1
a b c
b c
c d
d e f
e f
f g
g h
`

// Known-good strategies, hand-tuned per layout.
var recommended = map[string]string{
	"Demo Flats": "d(f(g(h,), e), c(a(b,),))",
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	g, err := gusher.Parse(strings.NewReader(demoLayout))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load layout")
	}
	fmt.Printf("Map: %s\n\n", g.Name())

	strats := make(map[string]*strategy.Node)
	if text, ok := recommended[g.Name()]; ok {
		strat, err := strategy.Parse(text, g)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to read recommended strategy %q", text)
		}
		strat.Obj = searcher.Objective(g, strat)
		strats["recommended"] = strat
	}
	strats["greedy"] = searcher.Greedy(g)
	strats["optimal"] = searcher.Narrow(g)

	for _, desc := range []string{"recommended", "greedy", "optimal"} {
		strat, ok := strats[desc]
		if !ok {
			continue
		}
		if err := strat.Validate(); err != nil {
			log.Error().Err(err).Msgf("%s strategy is invalid", desc)
			continue
		}
		fmt.Printf("%s strategy (objective score %0.0f):\n%s\n\n", desc, strat.Obj, strategy.Report(strat, g))
	}
}
