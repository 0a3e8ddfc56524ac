// Package server exposes the moment detection engine over HTTP for
// callers that keep transcripts or audio on their side of the wire.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/mzakyi/viral-clip-generator/internal/domain/audioenergy"
	"github.com/mzakyi/viral-clip-generator/internal/domain/moments"
	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/ports/adapters/wavfile"
)

type Options struct {
	Detector *moments.Detector
	Energy   audioenergy.Config
	TopN     int
	MinClip  float64 // seconds
	MaxClip  float64 // seconds
	Audio    ports.AudioDecoder
	Log      zerolog.Logger
}

type Server struct {
	app  *fiber.App
	opts Options
}

func New(opts Options) *Server {
	if opts.Detector == nil {
		opts.Detector = moments.NewDetector()
	}
	if opts.Audio == nil {
		opts.Audio = wavfile.New()
	}
	if opts.TopN <= 0 {
		opts.TopN = moments.DefaultTopN
	}
	if opts.MinClip <= 0 {
		opts.MinClip = moments.DefaultMinClipSec
	}
	if opts.MaxClip <= 0 {
		opts.MaxClip = moments.DefaultMaxClipSec
	}

	s := &Server{opts: opts}

	app := fiber.New(fiber.Config{
		AppName:               "vclip",
		DisableStartupMessage: true,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestLogger(opts.Log))

	app.Get("/health", s.health)

	apiV1 := app.Group("/api/v1")
	apiV1.Post("/analyze/transcript", s.analyzeTranscript)
	apiV1.Post("/analyze/audio", s.analyzeAudio)

	s.app = app
	return s
}

func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App { return s.app }
