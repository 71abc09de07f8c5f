package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"

	"jrpg-battle/internal/config"
	"jrpg-battle/internal/game"
	"jrpg-battle/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	var cfg config.Server
	if err := config.Load(&cfg, ".env"); err != nil {
		config.Exitf("config: %v", err)
	}

	if err := ensureHostKey(cfg.HostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	content, err := game.LoadContent(cfg.CatalogDir)
	if err != nil {
		log.Fatalf("Content error: %v", err)
	}
	log.Printf("Catalog loaded: %d spells, %d items", len(content.Catalog.Spells()), len(content.Catalog.Items()))

	gameLoop := game.NewGameLoop(content, game.LoopConfig{LeaderClass: cfg.LeaderClass, Seed: cfg.Seed})
	go gameLoop.Run()
	defer gameLoop.Stop()

	listenAddr := cfg.ListenAddr()
	sshServer := server.NewSSHServer(listenAddr, cfg.HostKey, cfg.IdleTimeout, gameLoop)
	log.Printf("Starting battle server, connect with: ssh -t -p PORT YourName@localhost (listening on %s)", listenAddr)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes})
}
