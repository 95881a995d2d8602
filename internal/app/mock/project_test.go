package mock_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/echoboard/echoboard/internal/app/mock"
	"github.com/echoboard/echoboard/internal/domain/models"
)

func TestConfigSetOptimisticConcurrency(t *testing.T) {
	s := newTestServer(t)
	cfg, err := s.Admin().ConfigGet("board")
	if err == nil {
		t.Fatal("ConfigGet on unknown project should 404")
	}
	wantStatus(t, err, http.StatusNotFound)

	cfg, err = s.Admin().ProjectCreate("board", models.Config{ProjectID: "board", Name: "Board"})
	if err != nil {
		t.Fatalf("ProjectCreate: %v", err)
	}

	next := cfg.Config
	next.Name = "Renamed"
	set, err := s.Admin().ConfigSet("board", next, cfg.Version)
	if err != nil {
		t.Fatalf("ConfigSet: %v", err)
	}
	if set.Version == cfg.Version {
		t.Errorf("version not rotated on set")
	}
	if set.Config.Name != "Renamed" {
		t.Errorf("config not replaced: %+v", set.Config)
	}

	// Writing against the stale version conflicts and changes nothing.
	stale := cfg.Version
	next.Name = "Stale write"
	_, err = s.Admin().ConfigSet("board", next, stale)
	wantStatus(t, err, http.StatusPreconditionFailed)

	got, err := s.Admin().ConfigGet("board")
	if err != nil {
		t.Fatalf("ConfigGet: %v", err)
	}
	if got.Config.Name != "Renamed" {
		t.Errorf("stale write mutated config: %+v", got.Config)
	}
}

func TestProjectDeleteDropsAllState(t *testing.T) {
	s := newTestServer(t)
	u := createUser(t, s, "u1")
	createIdea(t, s, u.UserID, "gone soon")

	if err := s.Admin().ProjectDelete(testProject); err != nil {
		t.Fatalf("ProjectDelete: %v", err)
	}

	res, err := s.Client().IdeaSearch(testProject, models.IdeaSearch{}, "")
	if err != nil {
		t.Fatalf("IdeaSearch after delete: %v", err)
	}
	if len(res.Results) != 0 {
		t.Fatalf("ideas survived project delete: %+v", res.Results)
	}
}

func TestConfigGetAllRequiresAccountSession(t *testing.T) {
	s := newTestServer(t)
	_, err := s.Admin().ConfigGetAll()
	wantStatus(t, err, http.StatusForbidden)

	signupAccount(t, s)
	s.Store().GetOrCreate("a")
	s.Store().GetOrCreate("b")

	configs, err := s.Admin().ConfigGetAll()
	if err != nil {
		t.Fatalf("ConfigGetAll: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("configs = %d, want 2", len(configs))
	}
}

func TestResponsesAreDetachedCopies(t *testing.T) {
	s := newTestServer(t)
	u := createUser(t, s, "u1")
	idea := createIdea(t, s, u.UserID, "immutable outside")

	// Mutating a returned value must not leak into the store.
	idea.Title = "caller scribble"
	got, err := s.Client().IdeaGet(testProject, idea.IdeaID)
	if err != nil {
		t.Fatalf("IdeaGet: %v", err)
	}
	if got.Title != "immutable outside" {
		t.Fatalf("caller mutation reached the store: %q", got.Title)
	}

	// And later server-side changes must not show through earlier
	// returned values.
	title := "server change"
	if _, err := s.Client().IdeaUpdate(testProject, idea.IdeaID, models.IdeaUpdate{Title: &title}); err != nil {
		t.Fatalf("IdeaUpdate: %v", err)
	}
	if got.Title != "immutable outside" {
		t.Fatalf("server mutation reached caller copy: %q", got.Title)
	}
}

func TestLatencySimulation(t *testing.T) {
	s := mock.NewServer(mock.WithLatency(10 * time.Millisecond))

	start := time.Now()
	if _, err := s.Admin().PlansGet(); err != nil {
		t.Fatalf("PlansGet: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("latency not applied: %v", elapsed)
	}

	s.SetLatency(false)
	start = time.Now()
	if _, err := s.Admin().PlansGet(); err != nil {
		t.Fatalf("PlansGet: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Millisecond {
		t.Errorf("latency applied while disabled: %v", elapsed)
	}
}
