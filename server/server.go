// =======================
// server/server.go
// =======================

// Package server is the web viewer: PNG and JSON frames over HTTP and a
// websocket that turns gesture messages into frames.
package server

import (
	"bytes"
	"fmt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"plot3d/config"
	"plot3d/logging"
	"plot3d/plot"
	"plot3d/raster"
)

// Server holds the fiber app and what each frame needs.
type Server struct {
	app     *fiber.App
	scene   plot.Scene
	camera  plot.CameraState
	maxSize int
	log     logging.Logger
}

// New builds the app and registers every route.
func New(cfg *config.Config, log logging.Logger) *Server {
	s := &Server{
		scene:   cfg.Scene(),
		camera:  cfg.Camera,
		maxSize: cfg.Server.MaxFrameSize,
		log:     log,
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "plot3d",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	s.app.Use(recover.New())

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/frame.png", s.handleFramePNG)
	api.Get("/frame", s.handleFrameJSON)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws", websocket.New(s.gestureSocket))

	return s
}

func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on port.
func (s *Server) Listen(port int) error {
	s.log.Infof("web viewer listening on :%d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown stops the listener.
func (s *Server) Shutdown() error { return s.app.Shutdown() }

// frameRequest reads the camera and canvas size from the query string. Camera
// values are normalized, sizes must fit maxSize.
func (s *Server) frameRequest(c *fiber.Ctx, minSize int) (plot.CameraState, int, int, error) {
	cam := plot.CameraState{
		RotationX:   c.QueryFloat("rx", s.camera.RotationX),
		RotationY:   c.QueryFloat("ry", s.camera.RotationY),
		ScaleFactor: c.QueryFloat("scale", s.camera.ScaleFactor),
	}.Normalized()
	w, h := c.QueryInt("width", 512), c.QueryInt("height", 512)
	if w < minSize || h < minSize || w > s.maxSize || h > s.maxSize {
		return cam, 0, 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("frame size %dx%d outside [%d, %d]", w, h, minSize, s.maxSize))
	}
	return cam, w, h, nil
}

func (s *Server) handleFramePNG(c *fiber.Ctx) error {
	cam, w, h, err := s.frameRequest(c, 1)
	if err != nil {
		return err
	}
	canvas, n := raster.Snapshot(s.scene, cam, w, h)

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		s.log.Errorf("frame encode failed: %v", err)
		return err
	}
	s.log.Debugf("png frame %dx%d, %d lines, camera %+v", w, h, n, cam)
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// frameResponse is the JSON form of one frame.
type frameResponse struct {
	Camera   plot.CameraState   `json:"camera"`
	Width    int                `json:"width"`
	Height   int                `json:"height"`
	Commands []plot.DrawCommand `json:"commands"`
}

func (s *Server) frame(cam plot.CameraState, w, h int) frameResponse {
	rec := plot.Recorder{Commands: []plot.DrawCommand{}}
	s.scene.Render(cam, float64(w), float64(h), &rec)
	return frameResponse{Camera: cam, Width: w, Height: h, Commands: rec.Commands}
}

func (s *Server) handleFrameJSON(c *fiber.Ctx) error {
	cam, w, h, err := s.frameRequest(c, 0)
	if err != nil {
		return err
	}
	return c.JSON(s.frame(cam, w, h))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
