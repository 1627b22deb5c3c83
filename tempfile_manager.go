package main

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Registry of temporary transcript downloads still on disk. Handlers remove
// their own files on success; the signal handler sweeps whatever remains
// when the server is interrupted mid-request.
var (
	tempDocs   = make(map[string]bool)
	tempDocsMu sync.Mutex
)

func trackTempDoc(path string) {
	tempDocsMu.Lock()
	defer tempDocsMu.Unlock()
	tempDocs[path] = true
}

func untrackTempDoc(path string) {
	tempDocsMu.Lock()
	defer tempDocsMu.Unlock()
	delete(tempDocs, path)
}

// removeTempDocs deletes every registered temporary file.
func removeTempDocs() {
	tempDocsMu.Lock()
	defer tempDocsMu.Unlock()

	for path := range tempDocs {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to remove temporary file '%s' during shutdown: %v", path, err)
			continue
		}
		log.Printf("Removed temporary file: %s", path)
		delete(tempDocs, path)
	}
}

// setupSignalHandler installs a SIGINT/SIGTERM handler that cleans up
// temporary downloads before the process exits. Call before serving.
func setupSignalHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, cleaning up temporary files...", sig)
		removeTempDocs()
		os.Exit(0)
	}()
}
