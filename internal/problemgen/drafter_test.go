package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathstudio/internal/llm"
	"github.com/abhisek/mathstudio/internal/problem"
)

func validDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"problem_text": "y は x に比例し、x = 4 のとき y = 20 です。y を x の式で表しなさい。",
		"correct_answer": "y=5x",
		"answer_variants": ["y = 5x", "y=5*x"],
		"hints": ["y = ax とおきます。", "20 = a × 4 から a = 5"],
		"chips": ["4", "5", "20", "x", "y", "="]
	}`)
}

func TestDraft_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validDraftJSON()})
	d := NewDrafter(mock, DefaultConfig())

	p, err := d.Draft(context.Background(), DraftInput{
		Genre: problem.GenreDirectProportion,
		Tier:  problem.TierNormal,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answer != "y=5x" {
		t.Errorf("answer = %q", p.Answer)
	}
	if p.Unit != "比例" {
		t.Errorf("unit = %q, want genre display name", p.Unit)
	}
	if p.Source != problem.SourceExtension {
		t.Errorf("source = %q", p.Source)
	}
	if !problem.IsCorrect(*p, "y = 5 × x") {
		t.Error("drafted variants should be accepted")
	}

	reqs := mock.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 call, got %d", len(reqs))
	}
	req := reqs[0]
	if req.Schema != DraftSchema {
		t.Error("expected draft schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Tier: normal") {
		t.Errorf("prompt missing tier: %s", req.Messages[0].Content)
	}
}

func TestDraft_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.Error{Kind: llm.KindRateLimited}})
	d := NewDrafter(mock, DefaultConfig())

	_, err := d.Draft(context.Background(), DraftInput{Genre: problem.GenreSector, Tier: problem.TierEasy})
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected wrapped rate limit error, got %v", err)
	}
	if !strings.Contains(err.Error(), "draft sector/easy") {
		t.Errorf("error should name the target: %v", err)
	}
}

func TestDraft_InvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	d := NewDrafter(mock, DefaultConfig())

	_, err := d.Draft(context.Background(), DraftInput{Genre: problem.GenreSector, Tier: problem.TierEasy})
	if !errors.Is(err, llm.ErrInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestDraft_ValidationFailure(t *testing.T) {
	bad := llm.MockResponse{Content: json.RawMessage(`{
		"problem_text": "問題",
		"correct_answer": "10日",
		"answer_variants": [],
		"hints": ["ヒント"],
		"chips": []
	}`)}
	mock := llm.NewMockProvider(bad, bad)
	d := NewDrafter(mock, DefaultConfig())

	_, err := d.Draft(context.Background(), DraftInput{Genre: problem.GenrePlaneGeometry, Tier: problem.TierHard})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "answer-form" {
		t.Errorf("validator = %q", verr.Validator)
	}

	reqs := mock.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected a second attempt, got %d requests", len(reqs))
	}
	if strings.Contains(reqs[0].Messages[0].Content, "rejected") {
		t.Error("first request should not quote a rejection")
	}
	if !strings.Contains(reqs[1].Messages[0].Content, "Your previous draft was rejected (answer-form)") {
		t.Errorf("retry should quote the failure:\n%s", reqs[1].Messages[0].Content)
	}
}

func TestDraft_RetryRecovers(t *testing.T) {
	dup := llm.MockResponse{Content: json.RawMessage(`{
		"problem_text": "y は x に比例し、x = 2 のとき y = 6 です。y を x の式で表しなさい。",
		"correct_answer": "y=3x",
		"answer_variants": [],
		"hints": ["y = ax とおきます。"],
		"chips": ["y", "=", "3", "x"]
	}`)}
	mock := llm.NewMockProvider(dup, llm.MockResponse{Content: validDraftJSON()})
	d := NewDrafter(mock, DefaultConfig())

	p, err := d.Draft(context.Background(), DraftInput{
		Genre:      problem.GenreDirectProportion,
		Tier:       problem.TierNormal,
		PriorTexts: []string{"y は x に比例し、 x = 2 のとき y = 6 です。 y を x の式で表しなさい。"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answer != "y=5x" {
		t.Errorf("answer = %q, want the second draft", p.Answer)
	}
	if !strings.Contains(mock.Requests()[1].Messages[0].Content, "(duplicate)") {
		t.Error("retry should name the duplicate check")
	}
}

func TestDraft_SingleAttempt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"problem_text": "   ",
		"correct_answer": "3",
		"answer_variants": [],
		"hints": ["ヒント"],
		"chips": []
	}`)})
	cfg := DefaultConfig()
	cfg.Attempts = 1
	d := NewDrafter(mock, cfg)

	_, err := d.Draft(context.Background(), DraftInput{Genre: problem.GenreSector, Tier: problem.TierEasy})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(mock.Requests()) != 1 {
		t.Fatalf("expected 1 request, got %d", len(mock.Requests()))
	}
}

func TestDuplicateValidator(t *testing.T) {
	v := NewDuplicateValidator([]string{"3x = 21 を解きなさい。", "Solve 2X+1=5"})
	for text, dup := range map[string]bool{
		"3x=21 を解きなさい。":    true,
		"solve 2x + 1 = 5": true,
		"3x = 24 を解きなさい。":  false,
	} {
		verr := v.Validate(&problem.Problem{Text: text})
		if (verr != nil) != dup {
			t.Errorf("Validate(%q) = %v, want duplicate=%v", text, verr, dup)
		}
	}
}

func TestDraft_InvalidInput(t *testing.T) {
	d := NewDrafter(llm.NewMockProvider(), DefaultConfig())
	_, err := d.Draft(context.Background(), DraftInput{Genre: "calculus", Tier: problem.TierEasy})
	if !errors.Is(err, problem.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildUserMessage(t *testing.T) {
	input := DraftInput{
		Genre:      problem.GenreInverseProportion,
		Tier:       problem.TierExpert,
		PriorTexts: []string{"Q1", "Q2\nline", "Q3"},
		Examples: []problem.Problem{{
			Text: "y = 12/x のとき…", Answer: "4", Hints: []string{"a", "b"},
		}},
	}
	cfg := DefaultConfig()
	cfg.MaxPriorTexts = 2
	msg := buildUserMessage(input, cfg)

	for _, want := range []string{
		"Genre: inverse",
		"Unit: 反比例",
		"Tier: expert",
		"Points: 400",
		"1. Q2 line",
		"2. Q3",
		"answer: 4",
		"hints: a / b",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Q1") {
		t.Error("oldest prior text should be dropped")
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("got %q", got)
	}
}
