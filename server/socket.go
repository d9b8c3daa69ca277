// =======================
// server/socket.go
// =======================

package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/contrib/websocket"

	"plot3d/plot"
)

// gestureMessage is what a websocket client sends for every input update. The
// canvas size travels with it so a resize is just another message.
type gestureMessage struct {
	plot.Gesture
	Width  int `json:"width"`
	Height int `json:"height"`
}

type errorMessage struct {
	Error string `json:"error"`
}

// gestureSocket gives every connection its own camera. Reading, applying and
// rendering happen in one loop, so a connection never renders a half-applied
// gesture.
func (s *Server) gestureSocket(conn *websocket.Conn) {
	log := s.log.WithField("remote", conn.RemoteAddr().String())
	log.Infof("gesture socket connected")
	cam := s.camera

	for {
		// a message without "zoom" is a pure pan
		msg := gestureMessage{Gesture: plot.Gesture{Zoom: 1}}
		err := conn.ReadJSON(&msg)
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			log.Debugf("malformed gesture message: %v", err)
			if err := conn.WriteJSON(errorMessage{Error: err.Error()}); err != nil {
				break
			}
			continue
		}
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("gesture socket read error: %v", err)
			}
			break
		}

		var reply interface{}
		if msg.Width < 0 || msg.Height < 0 || msg.Width > s.maxSize || msg.Height > s.maxSize {
			reply = errorMessage{Error: fmt.Sprintf("frame size %dx%d outside [0, %d]", msg.Width, msg.Height, s.maxSize)}
		} else {
			cam = cam.ApplyGesture(msg.Gesture)
			reply = s.frame(cam, msg.Width, msg.Height)
		}
		if err := conn.WriteJSON(reply); err != nil {
			log.Warnf("gesture socket write error: %v", err)
			break
		}
	}
	log.Infof("gesture socket disconnected")
}
