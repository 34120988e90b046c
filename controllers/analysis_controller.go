package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"ralph-ai/backend/config"
	"ralph-ai/backend/llm"
	"ralph-ai/backend/mailer"
	"ralph-ai/backend/models"
	"ralph-ai/backend/prompt"
	"ralph-ai/backend/report"
	"ralph-ai/backend/transcript"
)

// Deps is everything the analysis endpoints need, built once at startup and
// handed in explicitly so tests can swap in fakes.
type Deps struct {
	Cfg     config.Config
	LLM     llm.Completer // nil when no API key is configured
	Mailer  *mailer.Mailer
	Reports *report.Store
	Log     zerolog.Logger
}

const (
	summaryMaxTokens = 1000
	reportMaxTokens  = 3000
	summaryTimeout   = 60 * time.Second
	reportTimeout    = 90 * time.Second
	temperature      = 0.7
)

const summarySignature = "\n\n---\nAnalysis generated by Ralph AI\nReal Estate Business Consultant"

// Analyze returns the short interactive summary for the chat widget.
// Upstream failures come back as a user-safe message with status "error" and
// HTTP 200; only validation problems produce a 400.
func Analyze(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindAnalysisRequest(c)
		if !ok {
			return
		}

		text, err := generateAnalysis(c.Request.Context(), d, req, prompt.ModeSummary)
		if err != nil {
			d.Log.Error().Err(err).Str("user", req.UserName).Msg("summary analysis failed")
			c.JSON(http.StatusOK, models.AnalyzeResponse{
				AnalysisText: llm.UserMessage(err),
				Status:       "error",
				PDFReady:     false,
			})
			return
		}

		c.JSON(http.StatusOK, models.AnalyzeResponse{
			AnalysisText: text + summarySignature,
			Status:       "success",
			PDFReady:     true,
		})
	}
}

// GeneratePDF runs the full report pipeline and streams the PDF back as an
// attachment download.
func GeneratePDF(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindAnalysisRequest(c)
		if !ok {
			return
		}

		path, filename, err := buildReport(c.Request.Context(), d, req)
		if err != nil {
			d.Log.Error().Err(err).Str("user", req.UserName).Msg("pdf generation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate PDF report"})
			return
		}

		// Best-effort internal copy; never blocks or fails the download.
		go d.Mailer.SendInternalCopy(req.UserName, req.Profile, path)

		c.Header("Content-Type", "application/pdf")
		c.FileAttachment(path, filename)
	}
}

// SubmitEmail acknowledges immediately and generates + emails the report in
// the background. Background failures are logged, never surfaced: the client
// already has its 200.
func SubmitEmail(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		if len(req.ChatHistory) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chat history is empty"})
			return
		}
		if !mailer.ValidAddress(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
			return
		}
		applyDefaults(&req.AnalysisRequest)

		// Hand the goroutine its own copy of the request; nothing
		// request-scoped is shared past this point.
		job := req
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
			defer cancel()

			path, _, err := buildReport(ctx, d, job.AnalysisRequest)
			if err != nil {
				d.Log.Error().Err(err).Str("email", job.Email).Msg("background report failed")
				return
			}
			subject := "Your Ralph Business Analysis Report"
			body := "Hi " + job.UserName + ",\n\nYour detailed business analysis report is attached.\n\nRalph AI\nReal Estate Business Consultant"
			if err := d.Mailer.Send(job.Email, subject, body, path); err != nil {
				d.Log.Error().Err(err).Str("email", job.Email).Msg("report delivery failed")
				return
			}
			d.Mailer.SendInternalCopy(job.UserName, job.Profile, path)
		}()

		c.JSON(http.StatusOK, gin.H{
			"status":  "processing",
			"message": "Your detailed report is being prepared and will be emailed shortly.",
		})
	}
}

func Health(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"gemini_configured": d.LLM != nil,
			"email_configured":  d.Cfg.EmailConfigured(),
		})
	}
}

// -------------------- Pipeline helpers --------------------

func bindAnalysisRequest(c *gin.Context) (models.AnalysisRequest, bool) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return req, false
	}
	if len(req.ChatHistory) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat history is empty"})
		return req, false
	}
	applyDefaults(&req)
	return req, true
}

func applyDefaults(req *models.AnalysisRequest) {
	if strings.TrimSpace(req.UserName) == "" {
		req.UserName = "User"
	}
	if strings.TrimSpace(req.Profile) == "" {
		req.Profile = "unknown"
	}
}

// generateAnalysis runs transcript -> prompt -> completion for either mode.
func generateAnalysis(ctx context.Context, d Deps, req models.AnalysisRequest, mode prompt.Mode) (string, error) {
	if d.LLM == nil {
		return "", &llm.Error{Kind: llm.KindUnavailable}
	}

	text := transcript.Format(req.ChatHistory, req.UserName, req.Profile, transcript.DefaultMaxMessages)
	creq := llm.CompletionRequest{
		System:      prompt.System(req.Profile),
		Prompt:      prompt.Build(text, req.UserName, req.Profile, mode),
		MaxTokens:   summaryMaxTokens,
		Temperature: temperature,
		Timeout:     summaryTimeout,
	}
	if mode == prompt.ModeReport {
		creq.MaxTokens = reportMaxTokens
		creq.Timeout = reportTimeout
	}
	return d.LLM.Complete(ctx, creq)
}

// buildReport runs the full pipeline: completion, section parsing, PDF
// layout, artifact save. The returned path lives in the report store until
// the TTL janitor collects it.
func buildReport(ctx context.Context, d Deps, req models.AnalysisRequest) (path, filename string, err error) {
	narrative, err := generateAnalysis(ctx, d, req, prompt.ModeReport)
	if err != nil {
		return "", "", err
	}

	sections, missing := report.ParseSections(narrative)
	if len(missing) > 0 {
		d.Log.Warn().Strs("sections", missing).Str("user", req.UserName).Msg("expected report sections not found in narrative")
	}

	pdf, err := report.RenderPDF(report.ClientInfo{
		Name:         req.UserName,
		ProfileTitle: prompt.ProfileTitle(req.Profile),
		Date:         time.Now(),
	}, sections)
	if err != nil {
		return "", "", err
	}

	return d.Reports.Save(req.UserName, pdf)
}
