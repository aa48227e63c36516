package main

import (
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	store, err := repository.NewLocalStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("storage setup failed: %v", err)
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	viewer := infra.NewPDFViewer()

	preview := usecase.NewPreviewEngine(renderer, viewer, store, cfg.PreviewDebounce)
	autosave := usecase.NewAutosave(store, cfg.AutosaveDebounce)

	session := usecase.NewSession(store, autosave, preview)
	defer session.Close()

	app := fiber.New()
	h := httpadapter.NewHandler(session, preview)
	h.Register(app)

	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
