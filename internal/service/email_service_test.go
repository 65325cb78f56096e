package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"kanjiquest/internal/catalog"
	"kanjiquest/internal/models"
	"kanjiquest/internal/repository"
)

type fakeSES struct {
	mu     sync.Mutex
	inputs []*sesv2.SendEmailInput
	fail   map[string]bool
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[in.Destination.ToAddresses[0]] {
		return nil, errors.New("message rejected")
	}
	f.inputs = append(f.inputs, in)
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSendWeeklyReport(t *testing.T) {
	ses := &fakeSES{}
	svc := newEmailService(ses, "noreply@example.com", "KanjiQuest", nullLogger())

	summary := models.LearningSummary{PlayerName: "<Hana>", TotalGamesPlayed: 4, AverageAccuracy: 85, LoginStreak: 3}
	week := []models.GameResult{
		{Mode: models.ModeReading, StageID: "grade_1_slow", Score: 90, MaxScore: 100, Rank: models.RankS, Cleared: true},
		{Mode: models.ModeWriting, StageID: "set_001", Score: 300, MaxScore: 600, Rank: models.RankD},
	}

	if err := svc.SendWeeklyReport(context.Background(), "parent@example.com", summary, week); err != nil {
		t.Fatalf("SendWeeklyReport() error = %v", err)
	}
	if len(ses.inputs) != 1 {
		t.Fatalf("sent %d emails, want 1", len(ses.inputs))
	}

	in := ses.inputs[0]
	if got := aws.ToString(in.FromEmailAddress); got != "KanjiQuest <noreply@example.com>" {
		t.Errorf("from = %q", got)
	}
	msg := in.Content.Simple
	text := aws.ToString(msg.Body.Text.Data)
	if !strings.Contains(text, "Games this week: 2 (1 cleared)") || !strings.Contains(text, "Login streak: 3 days") {
		t.Errorf("text body = %q", text)
	}
	htmlBody := aws.ToString(msg.Body.Html.Data)
	if strings.Contains(htmlBody, "<Hana>") || !strings.Contains(htmlBody, "&lt;Hana&gt;") {
		t.Error("player name not escaped in html body")
	}
}

func TestDisabledEmailService(t *testing.T) {
	svc, err := NewEmailService(context.Background(), "us-east-1", "", "", nullLogger())
	if err != nil {
		t.Fatal(err)
	}
	if svc.IsEnabled() {
		t.Fatal("service without sender should be disabled")
	}
	err = svc.SendWeeklyReport(context.Background(), "parent@example.com", models.LearningSummary{}, nil)
	if !errors.Is(err, ErrEmailDisabled) {
		t.Errorf("error = %v, want ErrEmailDisabled", err)
	}
}

func TestWeeklyReporter(t *testing.T) {
	db := setupTestDB(t)
	createPlayer(t, db, "happy-fox", "one@example.com")
	createPlayer(t, db, "quiet-bear", "")
	createPlayer(t, db, "brave-cat", "two@example.com")

	players := repository.NewPlayerRepository(db)
	progress := NewProgressService(catalog.Default(), players, repository.NewResultRepository(db), repository.NewInventoryRepository(db))

	ses := &fakeSES{fail: map[string]bool{"two@example.com": true}}
	reporter := NewWeeklyReporter(players, progress, newEmailService(ses, "noreply@example.com", "", nullLogger()), nullLogger())

	sent, err := reporter.Run(context.Background())
	if sent != 1 {
		t.Errorf("sent = %d, want 1", sent)
	}
	if err == nil {
		t.Error("expected the failed send to be reported")
	}
	if len(ses.inputs) != 1 || ses.inputs[0].Destination.ToAddresses[0] != "one@example.com" {
		t.Errorf("inputs = %+v", ses.inputs)
	}
}

func TestSendFor(t *testing.T) {
	db := setupTestDB(t)
	withEmail := createPlayer(t, db, "happy-fox", "one@example.com")
	without := createPlayer(t, db, "quiet-bear", "")

	players := repository.NewPlayerRepository(db)
	progress := NewProgressService(catalog.Default(), players, repository.NewResultRepository(db), repository.NewInventoryRepository(db))
	ses := &fakeSES{}
	reporter := NewWeeklyReporter(players, progress, newEmailService(ses, "noreply@example.com", "", nullLogger()), nullLogger())

	tests := []struct {
		name     string
		playerID int64
		wantErr  error
	}{
		{name: "parent email set", playerID: withEmail.ID},
		{name: "no parent email", playerID: without.ID, wantErr: ErrNoParentEmail},
		{name: "unknown player", playerID: 999, wantErr: ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reporter.SendFor(context.Background(), tt.playerID)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("SendFor() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("SendFor() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if len(ses.inputs) != 1 {
		t.Errorf("sent %d emails, want 1", len(ses.inputs))
	}
}
