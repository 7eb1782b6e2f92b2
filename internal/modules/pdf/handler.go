package pdf

import (
	"github.com/gin-gonic/gin"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/apperr"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/fsutil"
	"github.com/pkoloveas/InsightGUIDE-ICTAI25/internal/pkg/response"
	"go.uber.org/zap"
)

const (
	detailProcessFailed = "An unexpected error occurred while processing the PDF"
	detailExtractFailed = "An unexpected error occurred while extracting text from the PDF"
)

// Handler serves the PDF pipeline endpoints.
type Handler struct {
	ocr         Extractor
	insights    InsightsGenerator
	store       ContentStore
	maxFileSize int64
	log         *zap.Logger
}

// NewHandler wires the pipeline. store may be nil to disable persistence.
func NewHandler(ocr Extractor, insights InsightsGenerator, store ContentStore, maxFileSize int64, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		ocr:         ocr,
		insights:    insights,
		store:       store,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/process-pdf/", h.processPDF)
	rg.POST("/extract-text/", h.extractText)
}

// POST /api/process-pdf/
func (h *Handler) processPDF(c *gin.Context) {
	up, ok := h.readUpload(c)
	if !ok {
		return
	}
	h.log.Info("processing PDF",
		zap.String("filename", up.filename),
		zap.String("size", fsutil.FormatFileSize(int64(len(up.data)))),
	)

	ctx := c.Request.Context()
	extracted, err := h.ocr.ProcessPDF(ctx, up.filename, up.data)
	if err != nil {
		h.fail(c, err, detailProcessFailed)
		return
	}
	if !h.persist(c, extracted, up.filename, detailProcessFailed) {
		return
	}

	insights, err := h.insights.Generate(ctx, extracted)
	if err != nil {
		h.fail(c, err, detailProcessFailed)
		return
	}

	response.OK(c, ProcessResponse{Insights: insights, Filename: up.filename})
}

// POST /api/extract-text/
func (h *Handler) extractText(c *gin.Context) {
	up, ok := h.readUpload(c)
	if !ok {
		return
	}
	h.log.Info("extracting text from PDF",
		zap.String("filename", up.filename),
		zap.String("size", fsutil.FormatFileSize(int64(len(up.data)))),
	)

	extracted, err := h.ocr.ProcessPDF(c.Request.Context(), up.filename, up.data)
	if err != nil {
		h.fail(c, err, detailExtractFailed)
		return
	}
	if !h.persist(c, extracted, up.filename, detailExtractFailed) {
		return
	}

	response.OK(c, ExtractResponse{ExtractedContent: extracted, Filename: up.filename})
}

func (h *Handler) persist(c *gin.Context, content, filename, detail string) bool {
	if h.store == nil {
		return true
	}
	if _, err := h.store.Save(c.Request.Context(), content, filename); err != nil {
		response.InternalError(c, h.log, detail, err)
		return false
	}
	return true
}

// fail passes OCR and insights errors to the shared mapping; anything else
// is reported with the endpoint's generic detail.
func (h *Handler) fail(c *gin.Context, err error, detail string) {
	switch apperr.KindOf(err) {
	case apperr.KindOCRProcessing, apperr.KindAIInsights:
		response.Error(c, h.log, err)
	default:
		response.InternalError(c, h.log, detail, err)
	}
}
