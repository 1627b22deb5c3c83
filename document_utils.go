package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// getDocumentAsFile resolves a transcript location to a local file path.
//   - Input without "://" is treated as a local file path (relative or absolute).
//   - A file:// URI uses its path directly.
//   - An http:// or https:// URI is downloaded to a temporary file.
//
// Returns the final path, a cleanup func for any temporary file created,
// and an error. Temporary downloads are also registered with the shutdown
// handler so an interrupted server leaves nothing behind.
func getDocumentAsFile(uriStr string) (filePath string, cleanup func(), err error) {
	cleanup = func() {} // no-op unless a temp file is created

	if !strings.Contains(uriStr, "://") {
		absPath, err := filepath.Abs(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to get absolute path for '%s': %w", uriStr, err)
		}
		log.Printf("Using local transcript path: %s", absPath)
		return absPath, cleanup, nil
	}

	parsedURI, err := url.Parse(uriStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid document URI '%s': %w", uriStr, err)
	}

	switch parsedURI.Scheme {
	case "file":
		filePath = parsedURI.Path
		if filePath == "" {
			return "", nil, fmt.Errorf("invalid file path derived from URI '%s'", uriStr)
		}
		log.Printf("Using local transcript file: %s", filePath)
		return filePath, cleanup, nil

	case "http", "https":
		log.Printf("Downloading transcript from URL: %s", uriStr)
		resp, err := http.Get(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to download transcript from '%s': %w", uriStr, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", nil, fmt.Errorf("failed to download transcript from '%s': received status code %d", uriStr, resp.StatusCode)
		}

		tempFile, err := os.CreateTemp("", "transcript-*.txt")
		if err != nil {
			return "", nil, fmt.Errorf("failed to create temporary file for download: %w", err)
		}
		filePath = tempFile.Name()
		trackTempDoc(filePath)
		log.Printf("Downloading transcript to temporary file: %s", filePath)

		cleanup = func() {
			untrackTempDoc(filePath)
			err := os.Remove(filePath)
			if err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: failed to remove temporary file '%s': %v", filePath, err)
			}
		}

		_, err = io.Copy(tempFile, resp.Body)
		closeErr := tempFile.Close()

		if err != nil {
			cleanup()
			return "", nil, fmt.Errorf("failed to write downloaded content to temporary file '%s': %w", filePath, err)
		}
		if closeErr != nil {
			log.Printf("Warning: failed to close temporary file handle for '%s': %v", filePath, closeErr)
		}

		return filePath, cleanup, nil

	default:
		return "", nil, fmt.Errorf("unsupported URI scheme '%s', only 'file://', 'http://', 'https://', or a plain local path are supported", parsedURI.Scheme)
	}
}

// readDocument loads the transcript into memory. The whole document is
// analyzed in one pass, so there is no streaming path.
func readDocument(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("transcript file not found: %s", filePath)
		}
		return "", fmt.Errorf("failed to read transcript file '%s': %w", filePath, err)
	}
	return string(data), nil
}
