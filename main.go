package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bellanote/backend/internal/ai"
	v1 "github.com/bellanote/backend/internal/controllers/v1"
	"github.com/bellanote/backend/internal/models"
	"github.com/bellanote/backend/internal/router"
	"github.com/bellanote/backend/internal/store"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and load the planning document
	if err := models.Connect(filepath.Join(dataDir, "bellanote.db")); err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := store.Open()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	assistant := ai.NewAssistant(ai.NewGemini(os.Getenv("GEMINI_API_KEY")))

	r, _, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{Store: s, Assistant: assistant}, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
