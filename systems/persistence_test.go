package systems

import (
	"testing"

	"github.com/quasilyte/gdata"
)

func withTestStorage(t *testing.T) {
	m, err := gdata.Open(gdata.Config{AppName: "moondust-test"})
	if err != nil {
		t.Skipf("no data dir available: %v", err)
	}
	gdataManager = m
	gdataInitialized = true
	t.Cleanup(func() {
		gdataManager = nil
		gdataInitialized = false
	})
}

func TestUpdateSettingsPreservesOtherFields(t *testing.T) {
	withTestStorage(t)

	if err := SaveSettings(&SavedSettings{EpisodeIndex: 1, SelectedTool: 3}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	if err := UpdateSettings(func(s *SavedSettings) { s.EpisodeIndex = 2 }); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	saved, err := LoadSettings()
	if err != nil || saved == nil {
		t.Fatalf("LoadSettings: saved=%v err=%v", saved, err)
	}
	if saved.EpisodeIndex != 2 {
		t.Fatalf("EpisodeIndex = %d, want 2", saved.EpisodeIndex)
	}
	if saved.SelectedTool != 3 {
		t.Fatalf("SelectedTool = %d, want 3 (untouched fields must survive)", saved.SelectedTool)
	}
}

func TestUpdateSettingsWithoutStorageIsNoOp(t *testing.T) {
	if gdataInitialized {
		t.Fatal("test expects uninitialized persistence")
	}
	if err := UpdateSettings(func(s *SavedSettings) { s.EpisodeIndex = 5 }); err != nil {
		t.Fatalf("UpdateSettings without storage: %v", err)
	}
}
