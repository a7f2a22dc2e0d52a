package records

import (
	"context"
	"testing"
)

type fakeRepo struct {
	created    []Record
	lastLimit  int
	historyArg int64
}

func (f *fakeRepo) Create(_ context.Context, rec Record) (int64, error) {
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) History(_ context.Context, chatID int64, limit int) ([]Record, error) {
	f.historyArg = chatID
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, limit int) ([]Record, error) {
	f.lastLimit = limit
	return nil, nil
}

func TestService_NilRepoIsNoop(t *testing.T) {
	s := NewService(nil)

	if s.Enabled() {
		t.Error("service without repo should be disabled")
	}

	id, err := s.Add(context.Background(), Record{RuText: "привет"})
	if err != nil || id != 0 {
		t.Errorf("Add on disabled service: id=%d err=%v", id, err)
	}

	recs, err := s.History(context.Background(), 1, 10)
	if err != nil || recs != nil {
		t.Errorf("History on disabled service: %v %v", recs, err)
	}
}

func TestService_Add(t *testing.T) {
	f := &fakeRepo{}
	s := NewService(f)

	id, err := s.Add(context.Background(), Record{ChatID: 42, Source: "voice", RuText: "привет", JgText: "монони"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 1 || len(f.created) != 1 {
		t.Errorf("Add: id=%d created=%d", id, len(f.created))
	}
	if f.created[0].ChatID != 42 || f.created[0].JgText != "монони" {
		t.Errorf("record mangled: %+v", f.created[0])
	}
}

func TestService_LimitClamped(t *testing.T) {
	f := &fakeRepo{}
	s := NewService(f)

	_, _ = s.History(context.Background(), 7, 0)
	if f.lastLimit != 50 {
		t.Errorf("limit 0 should clamp to 50, got %d", f.lastLimit)
	}
	if f.historyArg != 7 {
		t.Errorf("chatID = %d, want 7", f.historyArg)
	}

	_, _ = s.ListRecent(context.Background(), 10000)
	if f.lastLimit != 50 {
		t.Errorf("limit 10000 should clamp to 50, got %d", f.lastLimit)
	}

	_, _ = s.ListRecent(context.Background(), 25)
	if f.lastLimit != 25 {
		t.Errorf("limit 25 should pass through, got %d", f.lastLimit)
	}
}
