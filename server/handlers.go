package server

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"content_variation_generator/generator"
	"content_variation_generator/metrics"
	"content_variation_generator/presenter"
	"content_variation_generator/tracer"
)

type optionsResp struct {
	Platforms []string `json:"platforms"`
	Audiences []string `json:"audiences"`
	Languages []string `json:"languages"`
	Tones     []string `json:"tones"`
}

type variationResp struct {
	generator.Variation
	HTML string `json:"html"`
}

type sessionResp struct {
	SessionID    string               `json:"session_id"`
	Form         generator.Selections `json:"form"`
	Ready        bool                 `json:"ready"`
	Busy         bool                 `json:"busy"`
	CanGenerate  bool                 `json:"can_generate"`
	Variations   []variationResp      `json:"variations"`
	DownloadName string               `json:"download_name,omitempty"`
	GeneratedAt  *time.Time           `json:"generated_at,omitempty"`
}

type fieldUpdateReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func options() optionsResp {
	return optionsResp{
		Platforms: generator.Platforms,
		Audiences: generator.Audiences,
		Languages: generator.Languages,
		Tones:     generator.Tones,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", options())
}

func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, options())
}

// handleSessionCreate accepts an optional map of initial field values.
func (s *Server) handleSessionCreate(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, &AppError{Code: CodeInvalidParam, Message: "invalid request body", HTTPStatus: http.StatusBadRequest, Err: err})
		return
	}
	sess := generator.NewSession(uuid.NewString())
	for field, value := range fields {
		if err := sess.Set(field, value); err != nil {
			writeError(c, asAppError(err))
			return
		}
	}
	if err := s.store.create(sess); err != nil {
		writeError(c, asAppError(err))
		return
	}
	s.log.Debug("session created", "session_id", sess.ID)
	s.writeSession(c, http.StatusCreated, sess)
}

func (s *Server) handleSessionGet(c *gin.Context) {
	sess, err := s.store.get(c.Param("id"))
	if err != nil {
		writeError(c, asAppError(err))
		return
	}
	s.writeSession(c, http.StatusOK, sess)
}

func (s *Server) handleSessionUpdate(c *gin.Context) {
	var req fieldUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, &AppError{Code: CodeInvalidParam, Message: "field is required", HTTPStatus: http.StatusBadRequest, Err: err})
		return
	}
	sess, err := s.store.update(c.Param("id"), func(sess *generator.Session) error {
		return sess.Set(req.Field, req.Value)
	})
	if err != nil {
		writeError(c, asAppError(err))
		return
	}
	s.writeSession(c, http.StatusOK, sess)
}

// handleGenerate flips the busy flag and schedules the batch. With
// ?wait=true the response is held until the batch is published.
func (s *Server) handleGenerate(c *gin.Context) {
	id := c.Param("id")
	var sel generator.Selections
	sess, err := s.store.update(id, func(sess *generator.Session) error {
		var err error
		sel, err = sess.Begin()
		return err
	})
	if err != nil {
		appErr := asAppError(err)
		if appErr.Code == CodeBusy || appErr.Code == CodeNotReady {
			metrics.RecordGeneration(metrics.NoPlatform, "rejected")
		}
		writeError(c, appErr)
		return
	}

	_, span := tracer.Start(c.Request.Context(), "generator.start", trace.WithAttributes(
		attribute.String("session.id", id),
		attribute.String("form.platform", sel.Platform),
	))
	metrics.RecordGeneration(sel.Platform, "started")
	if fallbacks := generator.Fallbacks(sel); len(fallbacks) > 0 {
		metrics.RecordFallbacks(fallbacks)
		s.log.Debug("lookup defaults in use", "session_id", id, "tables", fallbacks)
	}
	done := s.startGeneration(id, s.agent.Start(sel))
	span.End()

	if c.Query("wait") != "true" {
		s.writeSession(c, http.StatusAccepted, sess)
		return
	}
	select {
	case <-done:
	case <-c.Request.Context().Done():
		return
	}
	sess, err = s.store.get(id)
	if err != nil {
		writeError(c, asAppError(err))
		return
	}
	s.writeSession(c, http.StatusOK, sess)
}

// startGeneration publishes the pending batch into the session once it is
// ready. The returned channel closes after the session has been written.
func (s *Server) startGeneration(id string, p *generator.Pending) <-chan struct{} {
	started := time.Now()
	done := make(chan struct{})
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer close(done)

		batch, err := p.Wait(context.Background())
		if err != nil {
			return
		}
		_, span := tracer.Start(context.Background(), "generator.publish", trace.WithAttributes(
			attribute.String("session.id", id),
		))
		defer span.End()

		platform := batch.Selections.Platform
		if _, err := s.store.update(id, func(sess *generator.Session) error {
			sess.Finish(batch)
			return nil
		}); err != nil {
			span.RecordError(err)
			metrics.RecordGeneration(platform, "lost")
			s.log.Warn("batch dropped", "session_id", id, "error", err)
			return
		}
		metrics.GenerationDuration.Observe(time.Since(started).Seconds())
		metrics.RecordGeneration(platform, "completed")
		s.log.Info("variations generated", "session_id", id, "platform", platform, "count", len(batch.Variations))
	}()
	return done
}

func (s *Server) handleVariationText(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		writeError(c, newAppError(CodeInvalidParam, "variation number must be an integer"))
		return
	}
	sess, err := s.store.get(c.Param("id"))
	if err != nil {
		writeError(c, asAppError(err))
		return
	}
	v, ok := sess.Variation(n)
	if !ok {
		writeError(c, newAppError(CodeNotFound, "variation not found"))
		return
	}
	metrics.CopiesTotal.Inc()
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(v.Content))
}

func (s *Server) handleDownload(c *gin.Context) {
	sess, err := s.store.get(c.Param("id"))
	if err != nil {
		writeError(c, asAppError(err))
		return
	}
	if len(sess.Variations) == 0 {
		writeError(c, newAppError(CodeNotFound, "no variations generated yet"))
		return
	}
	name := presenter.FileName(sess.Form.BrandName)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	metrics.DownloadsTotal.Inc()
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(presenter.ExportText(sess.Variations)))
}

func (s *Server) writeSession(c *gin.Context, status int, sess *generator.Session) {
	resp := sessionResp{
		SessionID:   sess.ID,
		Form:        sess.Form,
		Ready:       sess.Ready(),
		Busy:        sess.Busy,
		CanGenerate: sess.CanGenerate(),
		Variations:  make([]variationResp, 0, len(sess.Variations)),
	}
	for _, v := range sess.Variations {
		html, err := presenter.RenderHTML(v.Content)
		if err != nil {
			s.log.Warn("render variation", "session_id", sess.ID, "variation", v.ID, "error", err)
		}
		resp.Variations = append(resp.Variations, variationResp{Variation: v, HTML: html})
	}
	if len(sess.Variations) > 0 {
		resp.DownloadName = presenter.FileName(sess.Form.BrandName)
		generatedAt := sess.GeneratedAt
		resp.GeneratedAt = &generatedAt
	}
	c.JSON(status, resp)
}

func writeError(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(err.HTTPStatus, err)
}
