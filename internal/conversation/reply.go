package conversation

import (
	"fmt"
	"strings"
)

// PanelRequest names a side panel the reply wants activated, or empty when
// the reply is plain conversation.
type PanelRequest string

const (
	PanelNone  PanelRequest = ""
	PanelCode  PanelRequest = "code"
	PanelGraph PanelRequest = "graph"
	PanelFiles PanelRequest = "files"
)

// Reply is the derived assistant turn for a submitted message. Code replies
// may also update the running code buffer and request a panel.
type Reply struct {
	Content  string
	Type     MessageType
	Language string
	Panel    PanelRequest

	// newCode, when non-empty, replaces the store's running code buffer
	// once the reply resolves.
	newCode string
}

// fallbackPreviewLen is how many characters of the user's message the
// generic fallback reply echoes back.
const fallbackPreviewLen = 30

// LandingPageHTML is the canned landing page returned for HTML requests.
// It seeds the code buffer so CSS extraction has something to work with.
const LandingPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Simple Landing Page</title>
  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    }

    body {
      background-color: #f8fafc;
      color: #334155;
      line-height: 1.6;
    }

    .hero {
      background: linear-gradient(135deg, #4f46e5 0%, #7c3aed 100%);
      color: white;
      padding: 6rem 2rem;
      text-align: center;
    }

    .container {
      max-width: 1200px;
      margin: 0 auto;
      padding: 0 2rem;
    }

    .hero h1 {
      font-size: 3rem;
      margin-bottom: 1rem;
    }

    .hero p {
      font-size: 1.2rem;
      max-width: 600px;
      margin: 0 auto 2rem;
      opacity: 0.9;
    }

    .btn {
      display: inline-block;
      background-color: white;
      color: #4f46e5;
      padding: 0.8rem 1.5rem;
      border-radius: 0.5rem;
      text-decoration: none;
      font-weight: 600;
      transition: all 0.3s ease;
    }

    .btn:hover {
      transform: translateY(-3px);
      box-shadow: 0 10px 20px rgba(0, 0, 0, 0.1);
    }
  </style>
</head>
<body>
  <section class="hero">
    <div class="container">
      <h1>Welcome to Our Platform</h1>
      <p>The easiest way to build beautiful, responsive websites without writing a single line of code.</p>
      <a href="#" class="btn">Get Started</a>
    </div>
  </section>
</body>
</html>`

// sampleScript is the canned JavaScript snippet returned for code requests.
const sampleScript = `// Smooth scroll to an element by selector
function smoothScrollTo(selector) {
  const target = document.querySelector(selector);
  if (!target) return;
  target.scrollIntoView({ behavior: 'smooth', block: 'start' });
}

// Wire up every nav link that points at an anchor
document.querySelectorAll('a[href^="#"]').forEach((link) => {
  link.addEventListener('click', (event) => {
    event.preventDefault();
    smoothScrollTo(link.getAttribute('href'));
  });
});`

// DeriveReply classifies the submitted text and returns the simulated
// assistant reply. It is a total function: every input maps to exactly one
// reply and there is no failure path. codeBuffer is the current running code
// buffer (used for CSS extraction).
func DeriveReply(text, codeBuffer string) Reply {
	lower := strings.ToLower(text)
	contains := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("html", "website", "landing page"):
		return Reply{
			Content:  LandingPageHTML,
			Type:     TypeCode,
			Language: "html",
			Panel:    PanelCode,
			newCode:  LandingPageHTML,
		}

	case contains("css", "style", "design"):
		if css, ok := extractStyleBlock(codeBuffer); ok {
			return Reply{
				Content:  css,
				Type:     TypeCode,
				Language: "css",
				Panel:    PanelCode,
			}
		}
		return Reply{
			Content: "There's no stylesheet in the current code yet. Ask me for an HTML page first and I'll include one you can restyle.",
			Type:    TypeText,
		}

	case contains("code", "function", "program"):
		return Reply{
			Content:  sampleScript,
			Type:     TypeCode,
			Language: "javascript",
			Panel:    PanelCode,
			newCode:  sampleScript,
		}

	case contains("graph", "visualize"):
		return Reply{
			Content: "I've opened the knowledge graph so you can see how this answer was retrieved: queries link to the document chunks that scored highest, and chunks link back to their source documents.",
			Type:    TypeText,
			Panel:   PanelGraph,
		}

	case contains("file", "document"):
		return Reply{
			Content: "I've opened the document viewer. The sample knowledge base currently holds one document: project-overview.pdf.",
			Type:    TypeText,
			Panel:   PanelFiles,
		}

	case contains("help"):
		return Reply{
			Content: "I'm here to assist you. What specific help do you need?",
			Type:    TypeText,
		}

	case contains("project", "planning"):
		return Reply{
			Content: "For project planning, I can help break down tasks, estimate timelines, and suggest best practices.",
			Type:    TypeText,
		}

	case contains("data", "analysis"):
		return Reply{
			Content: "I can help you analyze data, create visualizations, and provide insights.",
			Type:    TypeText,
		}

	default:
		preview := text
		ellipsis := ""
		if runes := []rune(preview); len(runes) > fallbackPreviewLen {
			preview = string(runes[:fallbackPreviewLen])
			ellipsis = "..."
		}
		return Reply{
			Content: fmt.Sprintf("I'm processing your request about: \"%s%s\"", preview, ellipsis),
			Type:    TypeText,
		}
	}
}

// extractStyleBlock returns the content between the first <style> and
// </style> tags in src.
func extractStyleBlock(src string) (string, bool) {
	const open, close = "<style>", "</style>"
	start := strings.Index(src, open)
	if start < 0 {
		return "", false
	}
	rest := src[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return strings.Trim(rest[:end], "\n"), true
}
