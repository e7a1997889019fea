package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const sampleResume = `Jane Doe
jane.doe@example.com | 555-123-4567
5 years building services in Go and Python. PostgreSQL, Redis, Docker, Kubernetes, AWS.
Led migration of a monolith to gRPC microservices.`

type smokeCall struct {
	tool string
	args map[string]any
	// next derives follow-up calls from the result, e.g. an interview session id
	next func(res *mcp.CallToolResult) []smokeCall
}

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	resumePath := flag.String("resume", "", "optional resume file (pdf, docx, txt) sent as base64")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "resume-assistant-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: *endpoint}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)", session.ID())

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("list tools failed: %v", err)
	}
	for _, tool := range tools.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}

	resumeArgs, err := resumeArguments(*resumePath)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}

	failed := run(ctx, session, smokeCalls(resumeArgs))
	if failed > 0 {
		fmt.Printf("\n%d call(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("\nAll calls completed")
}

func smokeCalls(resumeArgs map[string]any) []smokeCall {
	withResume := func(extra map[string]any) map[string]any {
		args := make(map[string]any, len(resumeArgs)+len(extra))
		for k, v := range resumeArgs {
			args[k] = v
		}
		for k, v := range extra {
			args[k] = v
		}
		return args
	}

	return []smokeCall{
		{tool: "job_search", args: map[string]any{"query": "software engineer", "location": "Portland", "count": 5, "job_type": "Full-time"}},
		{tool: "extract_skills", args: withResume(nil)},
		{tool: "job_search_by_resume", args: withResume(map[string]any{"count": 5})},
		{tool: "job_recommendations", args: withResume(map[string]any{"target_role": "Staff Engineer"})},
		{
			tool: "interview_start",
			args: withResume(map[string]any{"kind": "Technical Interview", "position": "Backend Engineer"}),
			next: func(res *mcp.CallToolResult) []smokeCall {
				id := sessionID(res)
				if id == "" {
					return nil
				}
				return []smokeCall{
					{tool: "interview_reply", args: map[string]any{"session_id": id, "text": "I would shard the write path by tenant."}},
					{tool: "interview_end", args: map[string]any{"session_id": id}},
				}
			},
		},
	}
}

func run(ctx context.Context, session *mcp.ClientSession, calls []smokeCall) int {
	failed := 0
	for _, c := range calls {
		fmt.Printf("\nCALL: %s\n", c.tool)

		res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: c.tool, Arguments: c.args})
		if err != nil {
			log.Printf("%s failed: %v", c.tool, err)
			failed++
			continue
		}
		fmt.Println(text(res))
		if res.IsError {
			failed++
			continue
		}

		if c.next != nil {
			failed += run(ctx, session, c.next(res))
		}
	}
	return failed
}

func resumeArguments(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{"resume_text": sampleResume}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"resume_base64": base64.StdEncoding.EncodeToString(data),
		"file_name":     filepath.Base(path),
	}, nil
}

func text(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, txt.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// sessionID reads the id from interview_start output ("Session <id>\n\n...")
func sessionID(res *mcp.CallToolResult) string {
	first, _, _ := strings.Cut(text(res), "\n")
	return strings.TrimSpace(strings.TrimPrefix(first, "Session "))
}
