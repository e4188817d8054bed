package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"emoji-stash/internal/catalog"
	"emoji-stash/internal/config"
	"emoji-stash/internal/game"
	"emoji-stash/internal/hero"
	"emoji-stash/internal/inventory"
	"emoji-stash/internal/render"
	"emoji-stash/internal/session"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	heroName := flag.String("hero", "arcanist", "Hero to start as (id, name or alias)")
	seed := flag.Int64("seed", 0, "Loot RNG seed (0 uses the clock)")
	dump := flag.Bool("dump", false, "Loot --loot items, sort, print the stash and exit")
	loot := flag.Int("loot", 40, "Number of loot rolls for --dump")
	flag.Parse()

	if err := run(*configPath, *heroName, *seed, *dump, *loot); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, heroName string, seed int64, dump bool, loot int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// The terminal belongs to tcell, so interactive logs go to log.file or nowhere.
	var logOut io.Writer
	if dump {
		logOut = os.Stderr
	}
	logger, closeLog, err := cfg.Log.NewLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	store := inventory.New(cfg.InventoryConfig(), logger)
	store.Initialize()
	sess := session.New(store, cat, hero.Default(), logger)
	defer sess.Close()
	if err := sess.StartRun(heroName); err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if dump {
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < loot; i++ {
			sess.Loot(rng)
		}
		sess.Sort()
		h := sess.Hero()
		fmt.Println(render.Snapshot(fmt.Sprintf("%s %s", h.Emoji, h.Name), store.Slots(), store.Columns()))
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game.New(screen, sess, game.Options{
		Refresh: cfg.Playground.Refresh,
		Seed:    seed,
		Logger:  logger,
		OnRunEnd: func(rl session.RunLog) {
			if cfg.RunLog.Enabled {
				session.SaveRunLog(rl, logger)
			}
		},
	}).Run()
	return nil
}
