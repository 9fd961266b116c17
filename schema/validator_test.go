package manifestschema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidateManifestAccepted(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{
		"sources": [
			{"path": "data/ps4.txt", "channel_id": 1001, "name": "ps4-market"},
			{"path": "data/ps5.txt"}
		]
	}`)

	manifest, err := ValidateManifest(raw)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if len(manifest.Sources) != 2 {
		t.Fatalf("unexpected source count: %d", len(manifest.Sources))
	}
	if manifest.Sources[0].ChannelID == nil || *manifest.Sources[0].ChannelID != 1001 {
		t.Fatalf("unexpected channel id: %v", manifest.Sources[0].ChannelID)
	}
	if manifest.Sources[1].ChannelID != nil {
		t.Fatalf("expected nil channel id for second source")
	}
}

func TestValidateManifestRejectsEmptySources(t *testing.T) {
	t.Parallel()

	if _, err := ValidateManifest(json.RawMessage(`{"sources": []}`)); err == nil {
		t.Fatalf("expected empty sources to be rejected")
	}
}

func TestValidateManifestRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"sources": [{"path": "a.txt", "glob": "*.txt"}]}`)
	if _, err := ValidateManifest(raw); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestValidateManifestRejectsDuplicatePaths(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"sources": [{"path": "a.txt"}, {"path": "a.txt"}]}`)
	_, err := ValidateManifest(raw)
	if err == nil || !strings.Contains(err.Error(), "listed twice") {
		t.Fatalf("expected duplicate path rejection, got %v", err)
	}
}

func TestValidateManifestRequiresNameWithChannel(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"sources": [{"path": "a.txt", "channel_id": 5}]}`)
	if _, err := ValidateManifest(raw); err == nil {
		t.Fatalf("expected missing name to be rejected")
	}
}

func TestValidateManifestRejectsTrailingContent(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"sources": [{"path": "a.txt"}]} extra`)
	if _, err := ValidateManifest(raw); err == nil {
		t.Fatalf("expected trailing content to be rejected")
	}
}
