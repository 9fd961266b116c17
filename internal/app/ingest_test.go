package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gamedex/gamedex/internal/config"
)

func TestResolveSourcesFromManifest(t *testing.T) {
	t.Parallel()

	manifest := filepath.Join(t.TempDir(), "sources.json")
	mustWriteFile(t, manifest, `{
  "sources": [
    {"path": "dumps/ps4.txt", "channel_id": 1001, "name": "ps4-market"},
    {"path": "dumps/ps5.txt"}
  ]
}`)

	sources, err := resolveSources(manifest, nil, &config.Config{})
	if err != nil {
		t.Fatalf("resolveSources failed: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if sources[0].Path != "dumps/ps4.txt" || sources[0].Name != "ps4-market" {
		t.Fatalf("unexpected first source %+v", sources[0])
	}
	if sources[0].ChannelID == nil || *sources[0].ChannelID != 1001 {
		t.Fatalf("unexpected channel id %+v", sources[0].ChannelID)
	}
	if sources[1].ChannelID != nil {
		t.Fatalf("expected nil channel id, got %v", *sources[1].ChannelID)
	}
}

func TestResolveSourcesManifestExcludesPositional(t *testing.T) {
	t.Parallel()

	if _, err := resolveSources("sources.json", []string{"extra.txt"}, &config.Config{}); err == nil {
		t.Fatal("expected error when both manifest and positional paths are given")
	}
}

func TestResolveSourcesPositionalPaths(t *testing.T) {
	t.Parallel()

	sources, err := resolveSources("", []string{"a.txt", "b.txt"}, &config.Config{})
	if err != nil {
		t.Fatalf("resolveSources failed: %v", err)
	}
	if len(sources) != 2 || sources[0].Path != "a.txt" || sources[1].Path != "b.txt" {
		t.Fatalf("unexpected sources %+v", sources)
	}
}

func TestResolveSourcesFallsBackToConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{InputFiles: "dump1.txt, dump2.txt"}
	sources, err := resolveSources("", nil, cfg)
	if err != nil {
		t.Fatalf("resolveSources failed: %v", err)
	}
	if len(sources) != 2 || sources[0].Path != "dump1.txt" || sources[1].Path != "dump2.txt" {
		t.Fatalf("unexpected sources %+v", sources)
	}
}

func TestResolveSourcesEmptyIsError(t *testing.T) {
	t.Parallel()

	if _, err := resolveSources("", nil, &config.Config{}); err == nil {
		t.Fatal("expected error when no inputs are configured")
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}
