package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/aholstenson/cors-inspector/pkg/network"
)

// RenderRequest renders the request line, headers and body of req.
func RenderRequest(req *network.Request) string {
	var b strings.Builder
	b.WriteString(methodStyle(req.Method).Render(string(req.Method)))
	b.WriteString(" " + styleURL.Render(req.URL) + "\n")
	b.WriteString(renderFields(req.Headers))
	if req.HasBody() {
		b.WriteString("\n" + *req.Body + "\n")
	}
	return b.String()
}

// RenderResult renders a result the way the response panel shows it. A
// transport error is rendered as an alert instead of a response.
func RenderResult(res network.Result) string {
	switch res := res.(type) {
	case *network.HTTPResult:
		return renderHTTPResult(res)
	case *network.TransportError:
		return styleAlert.Render("Error: "+res.Message) + "\n" +
			styleFaint.Render("The request did not complete ("+string(res.Kind)+")") + "\n"
	}
	return ""
}

func renderHTTPResult(res *network.HTTPResult) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Status:") + " ")
	b.WriteString(statusStyle(res.StatusCode).Render(res.Status()))
	b.WriteString(styleFaint.Render(" in "+res.Duration.Round(time.Millisecond).String()) + "\n\n")

	b.WriteString(styleTitle.Render("Request Headers") + "\n")
	b.WriteString(renderFields(res.RequestHeaders))

	b.WriteString("\n" + styleTitle.Render("Response Headers") + "\n")
	b.WriteString(renderFields(res.ResponseHeaders))

	b.WriteString("\n" + styleTitle.Render("Body"))
	b.WriteString(styleFaint.Render(" ("+string(res.Body.Format)+", "+strconv.Itoa(res.Body.Size)+" bytes)") + "\n")
	b.WriteString(res.Body.Content)
	if !strings.HasSuffix(res.Body.Content, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

func renderFields(fields network.Fields) string {
	if len(fields) == 0 {
		return styleFaint.Render("(none)") + "\n"
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(styleTitle.Render(f.Name+":") + " " + f.Value + "\n")
	}
	return b.String()
}
