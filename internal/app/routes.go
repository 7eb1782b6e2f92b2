package app

import (
	"github.com/gin-gonic/gin"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/pdf"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/processing/insights"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/processing/ocr"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/storage/extracted"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/modules/system/core/health"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	health.RegisterRoutes(r)

	ocrSvc := ocr.NewService(a.clients.OCR(), a.logger)
	insightsSvc := insights.NewGenerator(a.clients.LLM(), a.cfg.SystemPrompt, a.cfg.Model, a.logger)

	var store pdf.ContentStore
	if a.cfg.SaveExtractedContent {
		var archiver extracted.Archiver
		if a.cfg.Archive.Enabled() {
			archiver = extracted.NewS3Archiver(a.cfg.Archive)
			a.logger.Info("archiving extracted content to S3")
		}
		store = extracted.NewStore(a.cfg.OutputDir, archiver, a.logger)
	}

	api := r.Group("/api")
	pdf.NewHandler(ocrSvc, insightsSvc, store, a.cfg.MaxFileSize, a.logger).RegisterRoutes(api)
}
