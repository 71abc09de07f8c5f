// Command battlesim runs headless autopilot battles, either once in batch
// mode or as an HTTP API.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"jrpg-battle/internal/config"
	"jrpg-battle/internal/game"
	"jrpg-battle/internal/party"
	"jrpg-battle/internal/simapi"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var cfg config.Sim
	if err := config.Load(&cfg, ".env"); err != nil {
		config.Exitf("config: %v", err)
	}

	serve := flag.Bool("serve", false, "serve the HTTP API instead of running a batch")
	addr := flag.String("addr", cfg.Addr, "HTTP listen address with -serve")
	n := flag.Int("n", 100, "battles to simulate")
	seed := flag.Int64("seed", 1, "RNG seed")
	level := flag.Int("level", 1, "party level")
	leader := flag.String("leader", "FIGHTER", "leader class")
	companions := flag.String("companions", "", "comma separated companion classes")
	verbose := flag.Bool("v", false, "include battle logs in the report")
	flag.Parse()

	content, err := game.LoadContent(cfg.CatalogDir)
	if err != nil {
		config.Exitf("content: %v", err)
	}

	if *serve {
		gin.SetMode(cfg.GinMode)
		log.Printf("battlesim API listening on %s", *addr)
		if err := simapi.New(content).Router().Run(*addr); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	opts := game.SimOptions{Seed: *seed, Battles: *n, Level: *level}
	if opts.LeaderClass, err = party.ParseClass(*leader); err != nil {
		config.Exitf("-leader: %v", err)
	}
	for _, name := range strings.Split(*companions, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := party.ParseClass(name)
		if err != nil {
			config.Exitf("-companions: %v", err)
		}
		opts.Companions = append(opts.Companions, c)
	}

	rep, err := game.Simulate(content, opts)
	if err != nil {
		config.Exitf("simulate: %v", err)
	}
	if !*verbose {
		for i := range rep.Results {
			rep.Results[i].Log = nil
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		config.Exitf("encode: %v", err)
	}
}
