// emoji-stash-server starts an SSH server where every connected player browses
// and edits one shared stash. Build:
//
//	go build -o emoji-stash-server ./cmd/server
//
// Usage:
//
//	./emoji-stash-server [--config stash.yaml] [--port 2222] [--key server_host_key]
//
// Connect from any number of terminals:
//
//	ssh -p 2222 oracle@localhost
//
// A username that names a hero ("oracle", "seer", "revenant") starts as that hero.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unicode"
	"unicode/utf8"

	"emoji-stash/internal/catalog"
	"emoji-stash/internal/config"
	"emoji-stash/internal/game"
	"emoji-stash/internal/hero"
	"emoji-stash/internal/inventory"
	"emoji-stash/internal/session"
	internalssh "emoji-stash/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml, toml or json)")
	port := flag.Int("port", 0, "SSH server port (overrides server.port)")
	keyFile := flag.String("key", "", "Path to the PEM-encoded host key, auto-generated if absent (overrides server.host_key)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}

	logger, closeLog, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer closeLog()

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	store := inventory.New(cfg.InventoryConfig(), logger.With("component", "stash"))
	stash := inventory.NewLocked(store)
	stash.Initialize()

	h := &host{
		stash:  stash,
		cat:    cat,
		roster: hero.Default(),
		cfg:    cfg,
		logger: logger,
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication; appropriate for a private home server.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(cfg.Server.HostKey)},
	}

	log.Printf("emoji-stash SSH server listening on :%d (%d items in catalog)", cfg.Server.Port, cat.Len())
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no <hero>@localhost", cfg.Server.Port)
	log.Fatal(srv.ListenAndServe())
}

// ─── sessions ───────────────────────────────────────────────────────────────

// host holds what every connection shares.
type host struct {
	stash  *inventory.Locked
	cat    *catalog.Catalog
	roster *hero.Roster
	cfg    config.Config
	logger *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	logger := h.logger.With("player", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "The stash requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		logger.Warn("screen setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	sess := session.New(h.stash, h.cat, h.roster, logger)
	defer sess.Close()
	if err := sess.SelectHero(name); err != nil {
		_ = sess.SelectHero(h.roster.Heroes()[0].ID)
	}
	logger.Info("player joined", "hero", sess.Hero().ID)

	game.New(screen, sess, game.Options{
		Title:    "SHARED STASH",
		Refresh:  h.cfg.Playground.Refresh,
		Logger:   logger,
		OnRunEnd: h.runEnded(logger),
	}).Run()
	logger.Info("player left", "occupied", h.stash.Occupied(), "capacity", h.stash.Capacity())
}

func (h *host) runEnded(logger *slog.Logger) func(session.RunLog) {
	return func(rl session.RunLog) {
		if h.cfg.RunLog.Enabled {
			session.SaveRunLog(rl, logger)
		}
	}
}

// maxNameBytes bounds player names taken from SSH usernames.
const maxNameBytes = 16

// sanitizeName drops control characters from an SSH username and truncates it
// to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "emoji-stash server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
