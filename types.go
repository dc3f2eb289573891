package main

import (
	"time"

	"github.com/NikolaTosic-sudo/chess-marks/internal/annotations"
	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
	"github.com/NikolaTosic-sudo/chess-marks/internal/hub"
)

type appConfig struct {
	annotations *annotations.Service
	hub         *hub.Hub
	palette     highlight.Palette
	secret      string
	tokenTTL    time.Duration
}
