package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/duamind/pkg/model"
	"github.com/m-mizutani/gt"
)

func TestParseDuaID(t *testing.T) {
	id, err := parseDuaID("1700000000000")
	gt.NoError(t, err)
	gt.Equal(t, id, model.DuaID(1700000000000))

	_, err = parseDuaID("")
	gt.Error(t, err)

	_, err = parseDuaID("abc")
	gt.Error(t, err)
}

func TestResolveTopicStyle(t *testing.T) {
	// Flags win over file defaults
	topic, style, err := resolveTopicStyle("Hoffnung", "kurz", &fileConfig{Topic: "Familie", Style: "poetisch"})
	gt.NoError(t, err)
	gt.Equal(t, topic, model.TopicHoffnung)
	gt.Equal(t, style, model.StyleKurz)

	// File defaults fill unset flags
	topic, style, err = resolveTopicStyle("", "", &fileConfig{Topic: "Familie", Style: "poetisch"})
	gt.NoError(t, err)
	gt.Equal(t, topic, model.TopicFamilie)
	gt.Equal(t, style, model.StylePoetisch)

	// Built-in defaults when nothing is set
	topic, style, err = resolveTopicStyle("", "", &fileConfig{})
	gt.NoError(t, err)
	gt.Equal(t, topic, model.TopicDankbarkeit)
	gt.Equal(t, style, model.StyleMittel)

	// Values outside the fixed sets are rejected
	_, _, err = resolveTopicStyle("Politik", "", &fileConfig{})
	gt.Error(t, err)
	_, _, err = resolveTopicStyle("", "episch", &fileConfig{})
	gt.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "server: http://example.com:9000\nstorage: /tmp/duamind\ntopic: Hoffnung\nstyle: kurz\n"
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := config{configPath: path}
	fc, err := cfg.loadFile()
	gt.NoError(t, err)

	gt.Equal(t, cfg.serverURL, "http://example.com:9000")
	gt.Equal(t, cfg.storageDir, "/tmp/duamind")
	gt.Equal(t, fc.Topic, "Hoffnung")
	gt.Equal(t, fc.Style, "kurz")

	// Explicit values are not overridden by the file
	cfg = config{configPath: path, serverURL: "http://localhost:8080"}
	_, err = cfg.loadFile()
	gt.NoError(t, err)
	gt.Equal(t, cfg.serverURL, "http://localhost:8080")
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg := config{configPath: filepath.Join(t.TempDir(), "missing.yml")}
	fc, err := cfg.loadFile()
	gt.NoError(t, err)
	gt.Equal(t, fc.Topic, "")
}

func TestPreview(t *testing.T) {
	gt.Equal(t, preview("kurz"), "kurz")
	gt.Equal(t, preview("zwei\nZeilen"), "zwei Zeilen")

	long := ""
	for i := 0; i < 130; i++ {
		long += "ä"
	}
	shortened := preview(long)
	gt.Equal(t, len([]rune(shortened)), 121)
}
