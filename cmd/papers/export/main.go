// papers-export processes a directory of Markdown documents, or the Markdown
// members of a tar archive, and writes the JSON artifacts consumed by the web
// front end: papers.json, papers-list.json, and categories.json.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/openpages/go-papers/cmd/papers/internal/bootstrap"
	paperscmd "github.com/openpages/go-papers/internal/commands/papers"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("papers export: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("papers-export", flag.ExitOnError)
	contentDir := fs.String("content-dir", "", "Directory of markdown documents to process")
	archivePath := fs.String("archive", "", "Tar archive whose .md members are processed instead of a directory")
	outDir := fs.String("out", ".", "Directory the JSON artifacts are written to")
	extensions := fs.String("extensions", "", "Comma separated markdown extensions (defaults to the built-in set)")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *contentDir == "" && *archivePath == "" {
		return fmt.Errorf("one of -content-dir or -archive is required")
	}
	if *contentDir != "" && *archivePath != "" {
		return fmt.Errorf("-content-dir and -archive are mutually exclusive")
	}

	runtime, err := bootstrap.Build(bootstrap.Options{
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
		Extensions: bootstrap.SplitList(*extensions),
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	ctx := context.Background()

	if *archivePath != "" {
		if err := processArchive(ctx, runtime, *archivePath); err != nil {
			return err
		}
	} else {
		if err := processDirectory(ctx, runtime, *contentDir); err != nil {
			return err
		}
	}

	return writeArtifacts(runtime, *outDir)
}

func processArchive(ctx context.Context, runtime *bootstrap.Runtime, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read archive %s: %w", path, err)
	}

	handler := paperscmd.NewProcessArchiveHandler(runtime.Module, runtime.Logger)
	if err := handler.Execute(ctx, paperscmd.ProcessArchiveCommand{Archive: data}); err != nil {
		// Partial extraction is preferable to total failure; the per-document
		// errors were already logged by the pipeline.
		runtime.Logger.Warn("archive processed with failures", "error", err)
	}
	return nil
}

func processDirectory(ctx context.Context, runtime *bootstrap.Runtime, dir string) error {
	handler := paperscmd.NewProcessDocumentHandler(runtime.Module, runtime.Logger)

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read document %s: %w", path, err)
		}

		cmd := paperscmd.ProcessDocumentCommand{
			Filename: d.Name(),
			Content:  string(data),
		}
		if err := handler.Execute(ctx, cmd); err != nil {
			// One document's failure never aborts the batch.
			runtime.Logger.Warn("document skipped", "filename", d.Name(), "error", err)
		}
		return nil
	})
}

func writeArtifacts(runtime *bootstrap.Runtime, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outDir, err)
	}

	artifacts := []struct {
		name   string
		encode func() ([]byte, error)
	}{
		{"papers.json", runtime.Module.PapersJSON},
		{"papers-list.json", runtime.Module.ListJSON},
		{"categories.json", runtime.Module.CategoriesJSON},
	}

	for _, artifact := range artifacts {
		data, err := artifact.encode()
		if err != nil {
			return fmt.Errorf("encode %s: %w", artifact.name, err)
		}
		target := filepath.Join(outDir, artifact.name)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		runtime.Logger.Info("artifact written", "path", target, "bytes", len(data))
	}

	fmt.Fprintf(os.Stdout, "exported %d papers\n", runtime.Module.Store().Len())
	return nil
}
