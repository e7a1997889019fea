package advice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/honeycarbs/resume-assistant/internal/domain/advice"
	"github.com/honeycarbs/resume-assistant/internal/mocks"
	"github.com/honeycarbs/resume-assistant/pkg/llm"
)

const contactResume = `Jane Doe
jane.doe@example.com | 555-123-4567
Summary: backend engineer with Go experience`

func TestExtractContact(t *testing.T) {
	got := advice.ExtractContact(contactResume)
	want := advice.Contact{Name: "Jane Doe", Email: "jane.doe@example.com", Phone: "555-123-4567"}
	if got != want {
		t.Fatalf("ExtractContact = %+v, want %+v", got, want)
	}
}

func TestExtractContactLabelledName(t *testing.T) {
	got := advice.ExtractContact("Curriculum Vitae of a person\nName: Sam Lee\n+44 20 7946 0958")
	if got.Name != "Sam Lee" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.Email != "" {
		t.Fatalf("email = %q, want empty", got.Email)
	}
	if got.Phone == "" {
		t.Fatal("expected an international phone number")
	}
}

func TestCoverLetterUsesResumeContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req llm.Request) (string, error) {
		if req.Temperature != 0.7 || req.MaxTokens != 2000 {
			t.Errorf("unexpected sampling params %+v", req)
		}
		for _, want := range []string{"Candidate Name: Jane Doe", "Email: jane.doe@example.com", "Company Name: Acme", "Job Title: Extract from job description"} {
			if !strings.Contains(req.UserPrompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
		return "  Dear Hiring Manager,\n...\n", nil
	})

	letter, err := advice.NewService(completer, nil).CoverLetter(context.Background(), advice.CoverLetterRequest{
		Resume:   contactResume,
		JobOffer: "Go engineer wanted",
		Company:  "Acme",
	})
	if err != nil {
		t.Fatalf("CoverLetter: %v", err)
	}
	if !strings.HasPrefix(letter, "Dear Hiring Manager") {
		t.Fatalf("letter = %q", letter)
	}
}

func TestCoverLetterValidation(t *testing.T) {
	svc := advice.NewService(mocks.NewMockCompleter(gomock.NewController(t)), nil)

	if _, err := svc.CoverLetter(context.Background(), advice.CoverLetterRequest{JobOffer: "x"}); !errors.Is(err, advice.ErrEmptyResume) {
		t.Fatalf("err = %v, want ErrEmptyResume", err)
	}
	if _, err := svc.CoverLetter(context.Background(), advice.CoverLetterRequest{Resume: "x"}); !errors.Is(err, advice.ErrEmptyJobOffer) {
		t.Fatalf("err = %v, want ErrEmptyJobOffer", err)
	}
}

func TestCoverLetterCompletionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mocks.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("quota"))

	_, err := advice.NewService(completer, nil).CoverLetter(context.Background(), advice.CoverLetterRequest{Resume: "r", JobOffer: "o"})
	if err == nil {
		t.Fatal("expected error")
	}
}
