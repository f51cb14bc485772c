package storage

import (
	"sync"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
		won    bool
	}{
		{"ann", 100, false},
		{"bob", 50, false},
		{"cid", 200, true},
	} {
		if _, err := store.SaveScore(s.player, s.score, s.won); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Player != "cid" || !scores[0].Won {
		t.Errorf("unexpected top entry %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("first", 70, false)
	store.SaveScore("second", 70, false)

	scores, err := store.TopScores(2)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("ties should keep insertion order, got %s then %s", scores[0].Player, scores[1].Player)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := range 15 {
		store.SaveScore("p", i*10, false)
	}

	scores, _ := store.TopScores(5)
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit, got %d", len(scores))
	}

	scores, _ = store.TopScores(0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreNegativeScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("unlucky", -50, false)

	high, err := store.HighScore()
	if err != nil {
		t.Fatal(err)
	}
	if high != -50 {
		t.Errorf("HighScore() = %d, expected -50", high)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board, got %d", high)
	}
}

func TestStoreBlankPlayer(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("   ", 10, false)

	scores, _ := store.TopScores(1)
	if scores[0].Player != "anonymous" {
		t.Errorf("Player = %q, expected anonymous", scores[0].Player)
	}
}

func TestStoreRankAndStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("a", 300, true)
	store.SaveScore("b", 100, false)

	rank, err := store.Rank(200)
	if err != nil {
		t.Fatal(err)
	}
	if rank != 2 {
		t.Errorf("Rank(200) = %d, expected 2", rank)
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Games != 2 || st.Wins != 1 || st.HighScore != 300 || st.AvgScore != 200 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("a", 100, false)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores(10); len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	a.SaveScore("a", 100, false)

	if high, _ := b.HighScore(); high != 0 {
		t.Error("each store should have its own in-memory database")
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.SaveScore("p", i, false); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}()
	}
	wg.Wait()

	st, _ := store.Stats()
	if st.Games != 20 {
		t.Errorf("Games = %d, expected 20", st.Games)
	}
}
