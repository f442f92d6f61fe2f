package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected driver session
type WebSocketClient struct {
	DriverID string
	Conn     *websocket.Conn
}

// WebSocketClaims represents the JWT claims used in WebSocket authentication
type WebSocketClaims struct {
	jwt.RegisteredClaims
	DriverID string `json:"driver_id"`
}

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
