package corpus

import (
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fsi.json", `{"rule_id": "r1", "jurisdiction": "maharashtra_udcpr", "clause_text": "FSI shall be 1.0."}`)

	reloads := make(chan *Corpus, 4)
	watcher, err := Watch(dir, func(c *Corpus, _ []LoadWarning) {
		reloads <- c
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer watcher.Close()

	// Initial load is reported through the callback too.
	select {
	case c := <-reloads:
		if c.Len() != 1 {
			t.Fatalf("initial snapshot Len() = %d, want 1", c.Len())
		}
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot reported")
	}

	writeFile(t, dir, "parking.json", `{"rule_id": "r2", "jurisdiction": "maharashtra_udcpr", "clause_text": "Provide 1 ECS per 100 sqm."}`)

	deadline := time.After(3 * time.Second)
	for {
		select {
		case c := <-reloads:
			if c.Len() == 2 {
				if watcher.Snapshot().Len() != 2 {
					t.Errorf("Snapshot().Len() = %d, want 2", watcher.Snapshot().Len())
				}
				return
			}
		case <-deadline:
			// File events can be unreliable on some CI filesystems.
			t.Log("watcher did not report the new clause within timeout")
			return
		}
	}
}
