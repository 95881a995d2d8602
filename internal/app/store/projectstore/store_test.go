package projectstore_test

import (
	"testing"

	"github.com/echoboard/echoboard/internal/app/store/projectstore"
	"github.com/echoboard/echoboard/internal/domain/models"
)

func TestGetOrCreate_Lazy(t *testing.T) {
	store := projectstore.New()

	p := store.GetOrCreate("demo")
	if p == nil {
		t.Fatal("expected project to be created")
	}
	if p.Config.Config.ProjectID != "demo" {
		t.Errorf("config project id: got %q, want %q", p.Config.Config.ProjectID, "demo")
	}
	if p.Config.Version == "" {
		t.Error("expected a version token to be minted")
	}
	if len(p.Config.Config.Content.Categories) == 0 {
		t.Fatal("expected a default category")
	}
	if p.Config.Config.Content.Categories[0].Workflow.EntryStatus == "" {
		t.Error("expected a workflow entry status")
	}
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	store := projectstore.New()

	p1 := store.GetOrCreate("demo")
	p1.Users = append(p1.Users, models.User{UserID: "u1"})
	version := p1.Config.Version

	p2 := store.GetOrCreate("demo")
	if p1 != p2 {
		t.Error("expected the same project on repeat access")
	}
	if len(p2.Users) != 1 {
		t.Errorf("repeat access should not reset state, got %d users", len(p2.Users))
	}
	if p2.Config.Version != version {
		t.Error("repeat access should not mint a new version")
	}
}

func TestDelete_NoResurrection(t *testing.T) {
	store := projectstore.New()

	p := store.GetOrCreate("demo")
	p.Users = append(p.Users, models.User{UserID: "u1"})

	store.Delete("demo")
	if _, ok := store.Get("demo"); ok {
		t.Fatal("expected project to be gone")
	}

	fresh := store.GetOrCreate("demo")
	if len(fresh.Users) != 0 {
		t.Error("recreated project must start empty")
	}
}

func TestNextCommentID_LexicographicOrder(t *testing.T) {
	store := projectstore.New()

	prev := store.NextCommentID()
	for i := 0; i < 100; i++ {
		next := store.NextCommentID()
		if !(next > prev) {
			t.Fatalf("ids must grow lexicographically: %q then %q", prev, next)
		}
		prev = next
	}
	if len(prev) != 8 {
		t.Errorf("ids are zero-padded to 8 digits, got %q", prev)
	}
}

func TestIdeaVoteOrCreate(t *testing.T) {
	store := projectstore.New()
	p := store.GetOrCreate("demo")

	v := p.IdeaVoteOrCreate("u1", "i1")
	if v.Vote != "" || v.FundAmount != 0 || len(v.Expression) != 0 {
		t.Errorf("implicit vote record should be empty, got %+v", v)
	}
	v.Vote = models.VoteUpvote

	again := p.IdeaVoteOrCreate("u1", "i1")
	if again.Vote != models.VoteUpvote {
		t.Error("expected the same record on repeat access")
	}
	if len(p.IdeaVotes) != 1 {
		t.Errorf("expected exactly one record, got %d", len(p.IdeaVotes))
	}
}
