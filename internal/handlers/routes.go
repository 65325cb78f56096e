package handlers

import "net/http"

// Handlers groups everything the router serves
type Handlers struct {
	Player  *PlayerHandler
	Play    *PlayHandler
	Daily   *DailyHandler
	Parent  *ParentHandler
	Startup *StartupStatus
}

// Routes builds the API router
func Routes(h Handlers, m *Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.Startup.ShowStartupStatus)

	// Public
	mux.HandleFunc("POST /api/players", m.RateLimit(h.Player.Register))
	mux.HandleFunc("GET /api/catalog/stages", h.Player.Stages)
	mux.HandleFunc("GET /api/catalog/strokesets", h.Player.StrokeSets)
	mux.HandleFunc("GET /api/catalog/characters", h.Player.Characters)
	mux.HandleFunc("GET /api/catalog/characters/{id}/chain", h.Player.EvolutionChain)

	// Player
	mux.HandleFunc("GET /api/me", m.RequirePlayer(h.Player.Me))

	mux.HandleFunc("POST /api/play/reading", m.RequirePlayer(h.Play.NewReading))
	mux.HandleFunc("POST /api/play/reading/{id}/start", m.RequirePlayer(h.Play.Start))
	mux.HandleFunc("POST /api/play/reading/{id}/tick", m.RequirePlayer(h.Play.Tick))
	mux.HandleFunc("POST /api/play/reading/{id}/answer", m.RequirePlayer(h.Play.Answer))
	mux.HandleFunc("POST /api/play/reading/{id}/miss", m.RequirePlayer(h.Play.Miss))
	mux.HandleFunc("POST /api/play/reading/{id}/retry", m.RequirePlayer(h.Play.Retry))

	mux.HandleFunc("POST /api/play/writing", m.RequirePlayer(h.Play.NewWriting))
	mux.HandleFunc("POST /api/play/writing/{id}/start", m.RequirePlayer(h.Play.Start))
	mux.HandleFunc("POST /api/play/writing/{id}/mode", m.RequirePlayer(h.Play.Mode))
	mux.HandleFunc("POST /api/play/writing/{id}/stroke", m.RequirePlayer(h.Play.Stroke))
	mux.HandleFunc("POST /api/play/writing/{id}/trace", m.RequirePlayer(h.Play.Trace))
	mux.HandleFunc("POST /api/play/writing/{id}/report", m.RequirePlayer(h.Play.Report))
	mux.HandleFunc("POST /api/play/writing/{id}/advance", m.RequirePlayer(h.Play.Advance))
	mux.HandleFunc("POST /api/play/writing/{id}/retry", m.RequirePlayer(h.Play.Retry))

	mux.HandleFunc("GET /api/play/{id}", m.RequirePlayer(h.Play.Get))

	mux.HandleFunc("POST /api/daily/login", m.RequirePlayer(h.Daily.Login))
	mux.HandleFunc("GET /api/daily/missions", m.RequirePlayer(h.Daily.Missions))
	mux.HandleFunc("POST /api/daily/missions/{id}/claim", m.RequirePlayer(h.Daily.Claim))
	mux.HandleFunc("GET /api/inventory", m.RequirePlayer(h.Daily.Inventory))
	mux.HandleFunc("POST /api/characters/{id}/feed", m.RequirePlayer(h.Daily.Feed))
	mux.HandleFunc("POST /api/characters/{id}/evolve", m.RequirePlayer(h.Daily.Evolve))

	// Parent gate
	mux.HandleFunc("POST /api/parent/pin", m.RequirePlayer(h.Parent.SetPIN))
	mux.HandleFunc("POST /api/parent/verify", m.RateLimit(m.RequirePlayer(h.Parent.Verify)))
	mux.HandleFunc("POST /api/parent/email", m.RequireParent(h.Parent.SetEmail))
	mux.HandleFunc("GET /api/parent/summary", m.RequireParent(h.Parent.Summary))
	mux.HandleFunc("GET /api/parent/history", m.RequireParent(h.Parent.History))
	mux.HandleFunc("GET /api/parent/report.xlsx", m.RequireParent(h.Parent.Workbook))
	mux.HandleFunc("POST /api/parent/report/send", m.RequireParent(h.Parent.SendReport))

	return m.Logging(h.Startup.RequireReady(mux))
}
