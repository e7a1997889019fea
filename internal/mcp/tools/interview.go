package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/resume-assistant/internal/domain/interview"
	"github.com/honeycarbs/resume-assistant/pkg/logging"
)

// InterviewService runs mock interview sessions
type InterviewService interface {
	Start(ctx context.Context, p interview.StartParams) (interview.Session, error)
	Reply(ctx context.Context, id, text string) (interview.Turn, error)
	Advance(ctx context.Context, id string, ev interview.Event) (interview.Session, error)
	End(ctx context.Context, id string) (interview.Session, error)
}

// InterviewStartParams defines the arguments for interview_start
type InterviewStartParams struct {
	Kind         string `json:"kind,omitempty" jsonschema:"technical, behavioral, general or custom"`
	Position     string `json:"position,omitempty" jsonschema:"Target position, e.g. Software Engineer"`
	ResumeText   string `json:"resume_text,omitempty" jsonschema:"Resume text used as interviewer context"`
	ResumeBase64 string `json:"resume_base64,omitempty" jsonschema:"Base64 encoded resume document"`
	MimeType     string `json:"mime_type,omitempty" jsonschema:"MIME type of resume_base64"`
}

// InterviewReplyParams defines the arguments for interview_reply
type InterviewReplyParams struct {
	SessionID string `json:"session_id" jsonschema:"Session returned by interview_start"`
	Text      string `json:"text" jsonschema:"Candidate answer"`
}

// InterviewAdvanceParams defines the arguments for interview_advance
type InterviewAdvanceParams struct {
	SessionID string `json:"session_id" jsonschema:"Session returned by interview_start"`
	Event     string `json:"event" jsonschema:"heard, heard_nothing, replied, spoken or stop"`
	Text      string `json:"text,omitempty" jsonschema:"Heard or replied text"`
}

// InterviewEndParams defines the arguments for interview_end
type InterviewEndParams struct {
	SessionID string `json:"session_id" jsonschema:"Session returned by interview_start"`
}

// InterviewEndResult is the structured output of interview_end
type InterviewEndResult struct {
	Session    interview.Session `json:"session"`
	Transcript string            `json:"transcript" jsonschema:"Plain text transcript for download"`
}

type interviewTool struct {
	svc    InterviewService
	logger *logging.Logger
}

// WithInterview registers the mock interview tools
func WithInterview(svc InterviewService) Option {
	return func(reg *registry) {
		t := interviewTool{svc: svc, logger: reg.logger}
		addTool(reg, &sdkmcp.Tool{
			Name:        "interview_start",
			Description: "Start a mock interview and return the interviewer's opening question",
		}, t.start)
		addTool(reg, &sdkmcp.Tool{
			Name:        "interview_reply",
			Description: "Answer the current interview question and receive the next one",
		}, t.reply)
		addTool(reg, &sdkmcp.Tool{
			Name:        "interview_advance",
			Description: "Drive one hands-free interview transition from an external speech loop",
		}, t.advance)
		addTool(reg, &sdkmcp.Tool{
			Name:        "interview_end",
			Description: "End a mock interview and return feedback with the full transcript",
		}, t.end)
	}
}

func (t interviewTool) start(ctx context.Context, _ *sdkmcp.CallToolRequest, params InterviewStartParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("interview service not configured")
	}

	kind, err := interview.ParseKind(params.Kind)
	if err != nil {
		return nil, nil, err
	}

	var resume string
	if params.ResumeText != "" || params.ResumeBase64 != "" {
		if resume, err = resumeText(params.ResumeText, params.ResumeBase64, params.MimeType, ""); err != nil {
			return nil, nil, err
		}
	}

	sess, err := t.svc.Start(ctx, interview.StartParams{Kind: kind, Position: params.Position, ResumeText: resume})
	if err != nil {
		t.logger.Error("interview_start failed", "err", err)
		return nil, nil, err
	}

	opening, _ := sess.LastTurn(interview.RoleInterviewer)
	return textResult(fmt.Sprintf("Session %s\n\n%s", sess.ID, opening.Text)), sess, nil
}

func (t interviewTool) reply(ctx context.Context, _ *sdkmcp.CallToolRequest, params InterviewReplyParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("interview service not configured")
	}

	turn, err := t.svc.Reply(ctx, params.SessionID, params.Text)
	if err != nil {
		return nil, nil, err
	}
	return textResult(turn.Text), turn, nil
}

func (t interviewTool) advance(ctx context.Context, _ *sdkmcp.CallToolRequest, params InterviewAdvanceParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("interview service not configured")
	}

	ev := interview.Event{Kind: interview.EventKind(params.Event), Text: params.Text}
	sess, err := t.svc.Advance(ctx, params.SessionID, ev)
	if err != nil {
		return nil, nil, err
	}
	return textResult(fmt.Sprintf("Session %s is %s", sess.ID, sess.State)), sess, nil
}

func (t interviewTool) end(ctx context.Context, _ *sdkmcp.CallToolRequest, params InterviewEndParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		return nil, nil, fmt.Errorf("interview service not configured")
	}

	sess, err := t.svc.End(ctx, params.SessionID)
	if err != nil {
		return nil, nil, err
	}

	result := InterviewEndResult{Session: sess, Transcript: sess.TranscriptText()}
	msg := "Interview ended."
	if summary, ok := sess.LastTurn(interview.RoleSummary); ok {
		msg += "\n\nFeedback:\n" + summary.Text
	}
	return textResult(msg), result, nil
}
