package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"chatline/internal/account"
	"chatline/internal/auth"
	"chatline/internal/config"
	"chatline/internal/handlers"
	"chatline/internal/middleware"
	"chatline/internal/store/sqlstore"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	s, err := sqlstore.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("open store", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	tokens := &auth.Tokens{Secret: []byte(cfg.JWTSecret), TTL: cfg.TokenTTL}
	accounts := &account.Service{Store: s, Tokens: tokens, Log: log}

	authH := &handlers.AuthHandler{Accounts: accounts}
	accountH := &handlers.AccountHandler{Accounts: accounts, Log: log}
	chatH := &handlers.ChatHandler{Store: s}

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	r.HandleFunc("/api/users", authH.Register).Methods("POST")
	r.HandleFunc("/api/users/login", authH.Login).Methods("POST")

	authed := r.NewRoute().Subrouter()
	authed.Use(middleware.Auth(tokens))
	authed.HandleFunc("/api/users", authH.SearchUsers).Methods("GET")
	authed.HandleFunc("/api/users/{id}", accountH.DeleteAccount).Methods("DELETE")
	authed.HandleFunc("/api/chats", chatH.CreateChat).Methods("POST")
	authed.HandleFunc("/api/chats", chatH.GetChats).Methods("GET")
	authed.HandleFunc("/api/chats/{id}/messages", chatH.GetChatMessages).Methods("GET")
	authed.HandleFunc("/api/chats/{id}/messages", chatH.SendMessage).Methods("POST")

	log.Info("starting server", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
