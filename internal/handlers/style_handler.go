package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/style"
)

// ======================================================
// HANDLER
// ======================================================

type StyleHandler struct {
	previews *style.Service
}

func NewStyleHandler(previews *style.Service) *StyleHandler {
	return &StyleHandler{previews: previews}
}

// ======================================================
// REQUESTS
// ======================================================

type AnalyzeFaceRequest struct {
	Image string `json:"image"`
}

type GenerateHairstyleRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
}

type ModifyHairstyleRequest struct {
	Image              string `json:"image"`
	ModificationPrompt string `json:"modification_prompt"`
	Format             string `json:"format"`
}

// ======================================================
// HEALTH
// ======================================================

func (h *StyleHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"status":                  "healthy",
		"face_analysis_available": style.FaceModelLoaded,
		"style_model_available":   style.StyleModelLoaded,
		"message":                 style.HealthMessage,
	})
}

// ======================================================
// ANALYSIS
// ======================================================

func (h *StyleHandler) AnalyzeFace(c *gin.Context) {
	var req AnalyzeFaceRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		httperr.Respond(c, httperr.ErrRequired("image"))
		return
	}

	httpresp.OK(c, gin.H{
		"analysis": style.MockAnalysis(),
		"note":     style.AnalysisNote,
	})
}

// ======================================================
// PREVIEWS
// ======================================================

func (h *StyleHandler) GenerateHairstyle(c *gin.Context) {
	var req GenerateHairstyleRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		httperr.Respond(c, httperr.ErrRequired("image"))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		httperr.Respond(c, httperr.ErrRequired("prompt"))
		return
	}

	p, err := h.previews.Render(c.Request.Context(), req.Image, req.Format)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := gin.H{
		"generated_image": p.DataURL,
		"note":            style.GenerateNote,
		"prompt_used":     req.Prompt,
	}
	if p.URL != "" {
		out["image_url"] = p.URL
	}
	httpresp.OK(c, out)
}

func (h *StyleHandler) ModifyHairstyle(c *gin.Context) {
	var req ModifyHairstyleRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		httperr.Respond(c, httperr.ErrRequired("image"))
		return
	}
	if strings.TrimSpace(req.ModificationPrompt) == "" {
		httperr.Respond(c, httperr.ErrRequired("modification_prompt"))
		return
	}

	p, err := h.previews.Render(c.Request.Context(), req.Image, req.Format)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := gin.H{
		"modified_image":    p.DataURL,
		"note":              style.ModifyNote,
		"modification_used": req.ModificationPrompt,
	}
	if p.URL != "" {
		out["image_url"] = p.URL
	}
	httpresp.OK(c, out)
}
