package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/domain/report"
	"github.com/mzakyi/viral-clip-generator/internal/types"
)

var validate = validator.New()

type transcriptRequest struct {
	Segments []types.Segment `json:"segments" validate:"required,min=1"`
	TopN     int             `json:"top_n" validate:"gte=0"`
	MinClip  float64         `json:"min_clip_sec" validate:"gte=0"`
	MaxClip  float64         `json:"max_clip_sec" validate:"gte=0"`
}

type analyzeResponse struct {
	Status string      `json:"status"`
	Data   analyzeData `json:"data"`
}

type analyzeData struct {
	Source  types.Source   `json:"source"`
	Moments []types.Moment `json:"moments"`
	Report  string         `json:"report"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (s *Server) analyzeTranscript(c *fiber.Ctx) error {
	req := new(transcriptRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, fmt.Sprintf("invalid request body: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, fmt.Sprintf("validation failed: %v", err))
	}

	topN, minClip, maxClip := s.bounds(req.TopN, req.MinClip, req.MaxClip)

	all := s.opts.Detector.Analyze(types.Transcript{Segments: req.Segments})
	top := moments.TopMoments(all, topN, minClip, maxClip)

	return c.Status(fiber.StatusOK).JSON(analyzeResponse{
		Status: "ok",
		Data: analyzeData{
			Source:  types.SourceLinguistic,
			Moments: nonNil(top),
			Report:  report.GenerateReport(top),
		},
	})
}

func (s *Server) analyzeAudio(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "multipart field 'file' is required")
	}

	tmp := filepath.Join(os.TempDir(), "vclip-"+uuid.NewString()+".wav")
	if err := c.SaveFile(fh, tmp); err != nil {
		s.opts.Log.Error().Err(err).Msg("save uploaded audio")
		return serverError(c, "could not store uploaded file")
	}
	defer os.Remove(tmp)

	w, err := s.opts.Audio.Decode(c.Context(), tmp)
	if err != nil {
		return badRequest(c, fmt.Sprintf("audio decode failed: %v", err))
	}

	cfg := s.opts.Energy
	if v := c.Query("strategy"); v != "" {
		cfg.Strategy = audioenergy.Strategy(v)
	}
	found := audioenergy.Detect(w, cfg)
	if len(found) > s.opts.TopN {
		found = found[:s.opts.TopN]
	}

	return c.Status(fiber.StatusOK).JSON(analyzeResponse{
		Status: "ok",
		Data: analyzeData{
			Source:  types.SourceAudioEnergy,
			Moments: nonNil(found),
			Report:  report.GenerateReport(found),
		},
	})
}

func (s *Server) bounds(topN int, minClip, maxClip float64) (int, float64, float64) {
	if topN <= 0 {
		topN = s.opts.TopN
	}
	if minClip <= 0 {
		minClip = s.opts.MinClip
	}
	if maxClip <= 0 {
		maxClip = s.opts.MaxClip
	}
	return topN, minClip, maxClip
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
}

func serverError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": msg})
}

// nonNil keeps empty results rendering as [] instead of null.
func nonNil(ms []types.Moment) []types.Moment {
	if ms == nil {
		return []types.Moment{}
	}
	return ms
}
