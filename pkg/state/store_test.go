package state

import (
	"context"
	"sync"
	"testing"
)

func TestLoadReturnsFreshSessionWhenMissing(t *testing.T) {
	store := NewStore(NewMemoryBackend())

	session, err := store.Load(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", session.UserID)
	}
	if session.Stage != StageInitial {
		t.Fatalf("expected initial stage, got %s", session.Stage)
	}
	if session.Language != "" {
		t.Fatalf("expected unset language, got %s", session.Language)
	}
	if len(session.Answers) != 0 {
		t.Fatalf("expected empty answers, got %v", session.Answers)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	ctx := context.Background()

	session := NewSession(42)
	session.Language = "ru"
	session.Stage = StageSlotOffered
	session.SetAnswer(AnswerName, "Alice")
	session.SetAnswer(AnswerSurname, "Smith")
	session.SetAnswer(AnswerPhone, "+123")
	session.PendingOffer = &PendingOffer{
		EventType: "event1",
		Slots:     []string{"2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z"},
	}

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := store.Load(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Stage != StageSlotOffered || loaded.Language != "ru" {
		t.Fatalf("round trip lost stage/language: %+v", loaded)
	}
	if loaded.Answer(AnswerName) != "Alice" || loaded.Answer(AnswerPhone) != "+123" {
		t.Fatalf("round trip lost answers: %v", loaded.Answers)
	}
	if loaded.PendingOffer == nil || !loaded.PendingOffer.Contains("2024-01-01T11:00:00Z") {
		t.Fatalf("round trip lost pending offer: %+v", loaded.PendingOffer)
	}
}

func TestMemoryBackendIsolatesCallers(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	ctx := context.Background()

	session := NewSession(1)
	session.SetAnswer(AnswerName, "Bob")
	if err := store.Save(ctx, session); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's copy must not leak into stored state.
	session.SetAnswer(AnswerName, "Mallory")

	loaded, err := store.Load(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Answer(AnswerName) != "Bob" {
		t.Fatalf("stored session mutated through caller reference: %v", loaded.Answers)
	}
}

func TestRestartKeepsLanguage(t *testing.T) {
	session := NewSession(1)
	session.Language = "uz"
	session.Stage = StageCollectingPhone
	session.SetAnswer(AnswerName, "A")
	session.PendingOffer = &PendingOffer{EventType: "e", Slots: []string{"s"}}

	session.Restart()

	if session.Stage != StageInitial {
		t.Fatalf("expected initial stage, got %s", session.Stage)
	}
	if len(session.Answers) != 0 {
		t.Fatalf("expected cleared answers, got %v", session.Answers)
	}
	if session.PendingOffer != nil {
		t.Fatalf("expected cleared offer")
	}
	if session.Language != "uz" {
		t.Fatalf("language should survive restart, got %q", session.Language)
	}
}

func TestLockSerializesPerUser(t *testing.T) {
	store := NewStore(NewMemoryBackend())
	ctx := context.Background()

	const iterations = 50
	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock(1)
			defer unlock()

			session, err := store.Load(ctx, 1)
			if err != nil {
				t.Error(err)
				return
			}
			// Read-modify-write under the lock; counts must not be lost.
			session.SetAnswer(AnswerName, session.Answer(AnswerName)+"x")
			if err := store.Save(ctx, session); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	loaded, err := store.Load(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(loaded.Answer(AnswerName)); got != iterations {
		t.Fatalf("lost updates: expected %d writes, got %d", iterations, got)
	}
}

func TestSessionEncodeDecode(t *testing.T) {
	session := NewSession(9)
	session.SetAnswer(AnswerName, "Zoe")
	session.PendingOffer = &PendingOffer{EventType: "e1", Slots: []string{"a", "b"}}

	if err := session.encode(); err != nil {
		t.Fatal(err)
	}
	if session.AnswersRaw == "" || session.OfferRaw == "" {
		t.Fatalf("expected raw columns populated: %+v", session)
	}

	restored := &Session{UserID: 9, AnswersRaw: session.AnswersRaw, OfferRaw: session.OfferRaw}
	if err := restored.decode(); err != nil {
		t.Fatal(err)
	}
	if restored.Answer(AnswerName) != "Zoe" {
		t.Fatalf("answers lost in decode: %v", restored.Answers)
	}
	if restored.PendingOffer == nil || restored.PendingOffer.EventType != "e1" {
		t.Fatalf("offer lost in decode: %+v", restored.PendingOffer)
	}

	// No offer means an empty column, decoded back to nil.
	empty := NewSession(10)
	if err := empty.encode(); err != nil {
		t.Fatal(err)
	}
	if empty.OfferRaw != "" {
		t.Fatalf("expected empty offer column, got %q", empty.OfferRaw)
	}
}
