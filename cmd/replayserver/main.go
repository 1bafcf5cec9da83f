// Command replayserver streams a previously recorded match (spec §6
// "Event log / replay format") to connected browser viewers over a
// websocket, one snapshot per tick. It is the out-of-scope "browser
// replay viewer" collaborator's server half; the match driver and the
// agents that produced the recording are separate programs.
//
// Grounded on the teacher's root main.go: the same flag parsing,
// http.Server with read/write/idle timeouts, and signal-driven graceful
// shutdown, repointed at a recorded-file source instead of a live game
// loop (server.NewServer/gameServer.Run).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/chknd1nner/duelcore/duel/replay"
)

func main() {
	port := flag.String("port", "8080", "Server port")
	file := flag.String("replay", "", "Path to a recorded match file (JSON, optionally gzip-compressed)")
	tickMillis := flag.Int("tick_ms", 100, "Milliseconds between frames during playback")
	flag.Parse()

	if *file == "" {
		log.Fatal("missing -replay flag")
	}

	snapshots, err := loadSnapshots(*file)
	if err != nil {
		log.Fatalf("failed to load replay file: %v", err)
	}
	log.Printf("Loaded %d recorded turns from %s", len(snapshots), *file)

	hub := NewHub(snapshots, time.Duration(*tickMillis)*time.Millisecond)
	stop := make(chan struct{})
	go hub.Run(stop)

	http.HandleFunc("/ws", hub.HandleWebSocket)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:         ":" + *port,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Replay server running at http://localhost:%s", *port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Shutting down server (signal: %v)...", sig)

	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// loadSnapshots reads a recorded match written by duel/replay.Recorder,
// auto-detecting gzip by magic number so both compressed and
// uncompressed files load the same way.
func loadSnapshots(path string) ([]replay.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if gz, err := maybeGzip(f); err == nil && gz != nil {
		defer gz.Close()
		r = gz
	}

	var doc struct {
		Snapshots []replay.Snapshot `json:"snapshots"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc.Snapshots, nil
}

// maybeGzip peeks the gzip magic number and, if present, wraps f in a
// gzip.Reader positioned back at the start of the stream.
func maybeGzip(f *os.File) (*gzip.Reader, error) {
	magic := make([]byte, 2)
	if _, err := f.Read(magic); err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if magic[0] != 0x1f || magic[1] != 0x8b {
		return nil, nil
	}
	return gzip.NewReader(f)
}
